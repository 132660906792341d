package dto

import (
	appbook "github.com/xiebiao/bookcart/internal/application/book"
	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
)

// IDUri 路径中的实体ID
// 不加required:ID为0是合法的"空标识",按查不到处理
type IDUri struct {
	ID uint `uri:"id" example:"1"`
}

// GetBookRequest HTTP图书详情请求
type GetBookRequest struct {
	CommentsLimit *int `form:"comments_limit" example:"10"` // 不传表示返回全部评论
}

// GetCommentsRequest HTTP评论列表请求
type GetCommentsRequest struct {
	Limit *int `form:"limit" example:"10"`
}

// ListBooksRequest HTTP图书列表请求
// 页码、每页数量、排序方向的合法性由查询引擎校验,这里只做类型绑定
type ListBooksRequest struct {
	AuthorID      *uint  `form:"author_id" example:"2"`
	PublisherID   *uint  `form:"publisher_id" example:"1"`
	Genre         string `form:"genre" example:"fantasy"`
	InStock       *bool  `form:"in_stock" example:"true"`
	Page          int    `form:"page" example:"1"`
	PageSize      int    `form:"page_size" example:"5"`
	Sort          string `form:"sort" example:"ASC"`
	CommentsLimit *int   `form:"comments_limit" example:"3"`
}

// ToUseCase 转换为应用层请求
func (r *ListBooksRequest) ToUseCase() (appbook.ListBooksRequest, error) {
	req := appbook.ListBooksRequest{
		Filter: book.Filter{
			AuthorID:    r.AuthorID,
			PublisherID: r.PublisherID,
			InStock:     r.InStock,
		},
		Sort:          book.Sort(r.Sort),
		Page:          r.Page,
		PageSize:      r.PageSize,
		CommentsLimit: r.CommentsLimit,
	}
	if r.Genre != "" {
		g, err := catalog.ParseGenre(r.Genre)
		if err != nil {
			return req, err
		}
		req.Filter.Genre = &g
	}
	return req, nil
}
