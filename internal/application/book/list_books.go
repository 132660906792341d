package book

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/metrics"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 过滤、排序、分页都由QueryEngine完成,这里只负责缓存和组装
// 2. 缓存(可选)只保存图书ID,Redis故障时直接走QueryEngine,不影响结果
// 3. 参数非法时不查询也不组装任何数据
type ListBooksUseCase struct {
	engine    *book.QueryEngine
	store     catalog.Store
	assembler *Assembler
	cache     book.ResultCache // 可以为nil
	logger    *zap.Logger
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(
	engine *book.QueryEngine,
	store catalog.Store,
	assembler *Assembler,
	cache book.ResultCache,
	logger *zap.Logger,
) *ListBooksUseCase {
	return &ListBooksUseCase{
		engine:    engine,
		store:     store,
		assembler: assembler,
		cache:     cache,
		logger:    logger,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Filter        book.Filter
	Sort          book.Sort
	Page          int  // 0表示第1页
	PageSize      int  // 0表示默认每页数量
	CommentsLimit *int // 每本书返回的评论数
}

// ListBooksResponse 列表查询响应DTO
// Page/PageSize是规范化之后的值
type ListBooksResponse struct {
	List     []BookView `json:"list"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (resp *ListBooksResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "bookcart/book", "ListBooks")
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	defer func() { metrics.RecordBookQuery(time.Since(start).Seconds(), err) }()

	// 1. 参数校验(先于任何查询)
	if req.CommentsLimit != nil && *req.CommentsLimit < 0 {
		return nil, book.ErrInvalidLimit
	}
	params, err := uc.engine.Normalize(book.ListParams{
		Filter:   req.Filter,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("sort", string(params.Sort)),
		attribute.Int("page", params.Page),
		attribute.Int("page_size", params.PageSize),
	)

	// 2. 查询(Cache-Aside)
	books, err := uc.query(ctx, params)
	if err != nil {
		return nil, err
	}

	// 3. 组装
	views, err := uc.assembler.BookViews(books, req.CommentsLimit)
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:     views,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

func (uc *ListBooksUseCase) query(ctx context.Context, params book.ListParams) ([]*catalog.Book, error) {
	if uc.cache == nil {
		return uc.engine.ListBooks(params)
	}

	log := logger.FromContext(ctx, uc.logger)
	key := params.CacheKey()

	ids, hit, err := uc.cache.GetBookIDs(ctx, key)
	if err != nil {
		log.Warn("读取列表缓存失败,降级查询目录", zap.String("key", key), zap.Error(err))
	}
	if hit {
		books := make([]*catalog.Book, 0, len(ids))
		for _, id := range ids {
			if b := uc.store.FindBook(id); b != nil {
				books = append(books, b)
			}
		}
		return books, nil
	}

	books, err := uc.engine.ListBooks(params)
	if err != nil {
		return nil, err
	}

	ids = make([]uint, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	if err := uc.cache.SetBookIDs(ctx, key, ids); err != nil {
		log.Warn("写入列表缓存失败", zap.String("key", key), zap.Error(err))
	}
	return books, nil
}
