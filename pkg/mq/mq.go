// Package mq RabbitMQ消息发布
//
// 使用topic类型的Exchange,routing key即事件类型(如order.book_added),
// 下游按通配符绑定队列(order.*)。消息体为JSON,投递模式为持久化。
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/pkg/metrics"
)

// Channel Publisher依赖的amqp.Channel方法子集
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher 消息发布者
// amqp.Channel不是并发安全的,PublishWithContext内部已加锁,可以被多个goroutine共用
type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	logger   *zap.Logger
	now      func() time.Time
}

// Dial 连接RabbitMQ并声明Exchange(Durable)
func Dial(url, exchange, exchangeType string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	logger.Info("消息发布者已创建", zap.String("exchange", exchange), zap.String("type", exchangeType))

	p := NewPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisher 基于已有Channel创建发布者
func NewPublisher(ch Channel, exchange string, logger *zap.Logger) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish 以JSON发布消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.now(),
		},
	)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, prometheus.Labels{
		"exchange":    p.exchange,
		"routing_key": routingKey,
		"result":      result,
	})
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	p.logger.Debug("消息已发布", zap.String("routing_key", routingKey), zap.ByteString("body", body))
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
