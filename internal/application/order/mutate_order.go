package order

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/domain/order"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// AddBookUseCase 加入购物车用例
type AddBookUseCase struct {
	cart      *order.Cart
	publisher order.EventPublisher
	logger    *zap.Logger
}

// NewAddBookUseCase 创建加入购物车用例
func NewAddBookUseCase(cart *order.Cart, publisher order.EventPublisher, logger *zap.Logger) *AddBookUseCase {
	return &AddBookUseCase{
		cart:      cart,
		publisher: publisher,
		logger:    logger,
	}
}

// AddBookRequest 加入购物车请求DTO
type AddBookRequest struct {
	BookID uint
}

// Execute 图书不存在(或ID为0)时返回Success=false,购物车不变
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) *MutationResponse {
	ctx, span := tracing.StartSpan(ctx, "bookcart/order", "AddBook")
	defer span.End()
	span.SetAttributes(attribute.Int("book_id", int(req.BookID)))

	event, ok := uc.cart.Add(req.BookID)
	span.SetAttributes(attribute.Bool("success", ok))
	afterMutation(ctx, uc.publisher, uc.logger, "add", event, ok)
	return &MutationResponse{Success: ok}
}

// RemoveBookUseCase 移出购物车用例
type RemoveBookUseCase struct {
	cart      *order.Cart
	publisher order.EventPublisher
	logger    *zap.Logger
}

// NewRemoveBookUseCase 创建移出购物车用例
func NewRemoveBookUseCase(cart *order.Cart, publisher order.EventPublisher, logger *zap.Logger) *RemoveBookUseCase {
	return &RemoveBookUseCase{
		cart:      cart,
		publisher: publisher,
		logger:    logger,
	}
}

// RemoveBookRequest 移出购物车请求DTO
type RemoveBookRequest struct {
	BookID    uint
	RemoveAll bool // true删除整行,false数量减1
}

// Execute 购物车里没有该书时返回Success=false
func (uc *RemoveBookUseCase) Execute(ctx context.Context, req RemoveBookRequest) *MutationResponse {
	ctx, span := tracing.StartSpan(ctx, "bookcart/order", "RemoveBook")
	defer span.End()
	span.SetAttributes(
		attribute.Int("book_id", int(req.BookID)),
		attribute.Bool("remove_all", req.RemoveAll),
	)

	event, ok := uc.cart.Remove(req.BookID, req.RemoveAll)
	span.SetAttributes(attribute.Bool("success", ok))
	afterMutation(ctx, uc.publisher, uc.logger, "remove", event, ok)
	return &MutationResponse{Success: ok}
}

// ClearOrderUseCase 清空购物车用例
type ClearOrderUseCase struct {
	cart      *order.Cart
	publisher order.EventPublisher
	logger    *zap.Logger
}

// NewClearOrderUseCase 创建清空购物车用例
func NewClearOrderUseCase(cart *order.Cart, publisher order.EventPublisher, logger *zap.Logger) *ClearOrderUseCase {
	return &ClearOrderUseCase{
		cart:      cart,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 总是成功,空购物车也一样
func (uc *ClearOrderUseCase) Execute(ctx context.Context) *MutationResponse {
	ctx, span := tracing.StartSpan(ctx, "bookcart/order", "ClearOrder")
	defer span.End()

	event := uc.cart.Reset()
	afterMutation(ctx, uc.publisher, uc.logger, "clear", event, true)
	return &MutationResponse{Success: true}
}
