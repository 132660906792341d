package messaging

import (
	"context"

	"github.com/xiebiao/bookcart/internal/domain/order"
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
)

// MessagePublisher pkg/mq.Publisher满足该接口
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// CartEventPublisher 把购物车事件发到RabbitMQ,routing key为事件类型
type CartEventPublisher struct {
	pub MessagePublisher
}

var _ order.EventPublisher = (*CartEventPublisher)(nil)

// NewCartEventPublisher 创建事件发布器
func NewCartEventPublisher(pub MessagePublisher) *CartEventPublisher {
	return &CartEventPublisher{pub: pub}
}

// Publish 发布事件
func (p *CartEventPublisher) Publish(ctx context.Context, event order.Event) error {
	switch event.Type {
	case order.EventBookAdded, order.EventBookRemoved, order.EventCleared:
	default:
		return order.ErrUnknownEventType
	}

	if err := p.pub.Publish(ctx, string(event.Type), event); err != nil {
		return &apperrors.AppError{
			Code:    order.ErrEventPublish.Code,
			Message: order.ErrEventPublish.Message,
			Err:     err,
		}
	}
	return nil
}
