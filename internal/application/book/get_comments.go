package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// GetCommentsUseCase 图书评论用例
type GetCommentsUseCase struct {
	store    catalog.Store
	resolver *book.Resolver
}

// NewGetCommentsUseCase 创建评论用例
func NewGetCommentsUseCase(store catalog.Store, resolver *book.Resolver) *GetCommentsUseCase {
	return &GetCommentsUseCase{
		store:    store,
		resolver: resolver,
	}
}

// GetCommentsRequest 评论请求DTO
type GetCommentsRequest struct {
	BookID uint
	Limit  *int
}

// Execute 负数limit返回InvalidArgument;图书不存在返回空列表
func (uc *GetCommentsUseCase) Execute(ctx context.Context, req GetCommentsRequest) (views []CommentView, err error) {
	_, span := tracing.StartSpan(ctx, "bookcart/book", "GetComments")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book_id", int(req.BookID)))

	if req.Limit != nil && *req.Limit < 0 {
		return nil, book.ErrInvalidLimit
	}

	b := uc.store.FindBook(req.BookID)
	if b == nil {
		return []CommentView{}, nil
	}

	comments, err := uc.resolver.Comments(b, req.Limit)
	if err != nil {
		return nil, err
	}
	return NewCommentViews(comments), nil
}
