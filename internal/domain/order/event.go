package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=mocks/publisher_mock.go -package=mocks

// EventType 购物车事件类型,同时用作MQ的routing key
type EventType string

const (
	EventBookAdded   EventType = "order.book_added"
	EventBookRemoved EventType = "order.book_removed"
	EventCleared     EventType = "order.cleared"
)

// Event 购物车变更事件
// 只在变更成功后产生,携带变更后的派生字段
type Event struct {
	Type                   EventType       `json:"type"`
	BookID                 uint            `json:"book_id,omitempty"`
	Quantity               int             `json:"quantity"` // 变更后该书的数量,删除整行时为0
	Entries                int             `json:"entries"`  // 变更后购物车的行数
	PriceAll               decimal.Decimal `json:"price_all"`
	DiscountPercentForUser decimal.Decimal `json:"discount_percent_for_user"`
	OccurredAt             time.Time       `json:"occurred_at"`
}

// EventPublisher 事件发布接口
// 由infrastructure层实现(RabbitMQ),未启用MQ时用NopPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher 丢弃所有事件
type NopPublisher struct{}

// Publish 什么都不做
func (NopPublisher) Publish(context.Context, Event) error { return nil }
