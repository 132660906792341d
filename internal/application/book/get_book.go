package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	store     catalog.Store
	assembler *Assembler
	logger    *zap.Logger
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(store catalog.Store, assembler *Assembler, logger *zap.Logger) *GetBookUseCase {
	return &GetBookUseCase{
		store:     store,
		assembler: assembler,
		logger:    logger,
	}
}

// GetBookRequest 图书详情请求DTO
type GetBookRequest struct {
	ID            uint
	CommentsLimit *int // nil表示返回全部评论
}

// Execute 图书不存在返回(nil, nil);评论数量限制为负数返回错误
func (uc *GetBookUseCase) Execute(ctx context.Context, req GetBookRequest) (view *BookView, err error) {
	ctx, span := tracing.StartSpan(ctx, "bookcart/book", "GetBook")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int("book_id", int(req.ID)))

	if req.CommentsLimit != nil && *req.CommentsLimit < 0 {
		return nil, book.ErrInvalidLimit
	}

	b := uc.store.FindBook(req.ID)
	if b == nil {
		logger.FromContext(ctx, uc.logger).Debug("图书不存在", zap.Uint("book_id", req.ID))
		return nil, nil
	}
	return uc.assembler.BookView(b, req.CommentsLimit)
}
