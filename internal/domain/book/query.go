package book

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

// Sort 按书名排序的方向
type Sort string

const (
	SortAsc  Sort = "ASC"
	SortDesc Sort = "DESC"
)

// ParseSort 解析排序方向,空串视为ASC
func ParseSort(s string) (Sort, error) {
	switch Sort(strings.ToUpper(strings.TrimSpace(s))) {
	case "", SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", ErrInvalidSort
	}
}

// Filter 过滤条件
// nil表示"未提供",不施加约束;InStock=false表示只要无库存的书
type Filter struct {
	AuthorID    *uint
	PublisherID *uint
	Genre       *catalog.Genre
	InStock     *bool
}

// Match 是否满足全部已提供的条件(AND语义)
func (f Filter) Match(b *catalog.Book) bool {
	if f.AuthorID != nil && !b.HasAuthor(*f.AuthorID) {
		return false
	}
	if f.PublisherID != nil && !b.PublishedBy(*f.PublisherID) {
		return false
	}
	if f.Genre != nil && !b.HasGenre(*f.Genre) {
		return false
	}
	if f.InStock != nil && b.InStock != *f.InStock {
		return false
	}
	return true
}

// ListParams 列表查询参数
type ListParams struct {
	Filter   Filter
	Sort     Sort // 空值按ASC处理
	Page     int  // 从1开始,0表示默认第1页
	PageSize int  // 0表示默认每页数量
}

// CacheKey 参数的规范化表示,用作结果缓存的key
// 调用前应先经过Normalize,保证等价参数得到同一个key
func (p ListParams) CacheKey() string {
	var sb strings.Builder
	sb.WriteString("a=")
	if p.Filter.AuthorID != nil {
		fmt.Fprintf(&sb, "%d", *p.Filter.AuthorID)
	}
	sb.WriteString(":p=")
	if p.Filter.PublisherID != nil {
		fmt.Fprintf(&sb, "%d", *p.Filter.PublisherID)
	}
	sb.WriteString(":g=")
	if p.Filter.Genre != nil {
		sb.WriteString(string(*p.Filter.Genre))
	}
	sb.WriteString(":s=")
	if p.Filter.InStock != nil {
		fmt.Fprintf(&sb, "%t", *p.Filter.InStock)
	}
	fmt.Fprintf(&sb, ":sort=%s:page=%d:size=%d", p.Sort, p.Page, p.PageSize)
	return sb.String()
}

// PageSizePolicy 允许的每页数量(封闭集合)
type PageSizePolicy struct {
	Allowed []int
	Default int
}

// DefaultPageSizePolicy 默认策略
func DefaultPageSizePolicy() PageSizePolicy {
	return PageSizePolicy{Allowed: []int{5, 30, 60, 120}, Default: 5}
}

func (p PageSizePolicy) allows(size int) bool {
	return slices.Contains(p.Allowed, size)
}

// QueryEngine 图书查询引擎
// 纯函数:结果只取决于Store内容和参数,可被任意多个goroutine同时调用
type QueryEngine struct {
	store    catalog.Store
	locale   language.Tag
	pageSize PageSizePolicy
}

// NewQueryEngine 创建查询引擎
func NewQueryEngine(store catalog.Store, locale language.Tag, pageSize PageSizePolicy) *QueryEngine {
	return &QueryEngine{
		store:    store,
		locale:   locale,
		pageSize: pageSize,
	}
}

// Normalize 填充默认值并校验参数
func (e *QueryEngine) Normalize(params ListParams) (ListParams, error) {
	sort, err := ParseSort(string(params.Sort))
	if err != nil {
		return params, err
	}
	params.Sort = sort

	if params.Page < 0 {
		return params, ErrInvalidPage
	}
	if params.Page == 0 {
		params.Page = 1
	}

	if params.PageSize == 0 {
		params.PageSize = e.pageSize.Default
	}
	if !e.pageSize.allows(params.PageSize) {
		return params, ErrInvalidPageSize
	}
	return params, nil
}

// ListBooks 过滤、排序、分页
// 页码超出范围返回空切片而不是错误
func (e *QueryEngine) ListBooks(params ListParams) ([]*catalog.Book, error) {
	params, err := e.Normalize(params)
	if err != nil {
		return nil, err
	}

	matched := make([]*catalog.Book, 0)
	for _, b := range e.store.Books() {
		if params.Filter.Match(b) {
			matched = append(matched, b)
		}
	}

	// collate.Collator不是并发安全的,每次查询单独创建
	col := collate.New(e.locale)
	slices.SortStableFunc(matched, func(a, b *catalog.Book) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return compareID(a.ID, b.ID)
	})
	if params.Sort == SortDesc {
		slices.Reverse(matched)
	}

	// 先按页数判断越界,页码很大时(page-1)*pageSize会溢出
	pages := (len(matched) + params.PageSize - 1) / params.PageSize
	if params.Page > pages {
		return []*catalog.Book{}, nil
	}
	start := (params.Page - 1) * params.PageSize
	end := min(start+params.PageSize, len(matched))
	return matched[start:end], nil
}

func compareID(a, b uint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
