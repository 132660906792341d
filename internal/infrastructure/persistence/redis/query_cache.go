package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/infrastructure/config"
	"github.com/xiebiao/bookcart/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
	"github.com/xiebiao/bookcart/pkg/metrics"
)

// cacheName 指标里的cache标签
const cacheName = "book_list"

// QueryCache 图书列表查询结果缓存(Cache-Aside)
//
// 1. 目录运行期只读,缓存不需要因写操作失效;只在启动加载目录后整体清空
// 2. 值是图书ID的JSON数组,key格式:{prefix}:books:list:{规范化参数}
// 3. 所有Redis调用都经过熔断器,Redis不可用时调用方直接查内存目录
type QueryCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
	logger  *zap.Logger
}

var _ book.ResultCache = (*QueryCache)(nil)

// NewQueryCache 创建查询缓存
func NewQueryCache(client *redis.Client, prefix string, ttl time.Duration, breaker *circuitbreaker.CircuitBreaker, logger *zap.Logger) *QueryCache {
	return &QueryCache{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		breaker: breaker,
		logger:  logger,
	}
}

// NewBreaker 按配置创建缓存熔断器,状态变化同步到metrics和日志
// redis.Nil(未命中)不计为失败
func NewBreaker(cfg config.BreakerConfig, logger *zap.Logger) *circuitbreaker.CircuitBreaker {
	threshold := cfg.FailureThreshold
	return circuitbreaker.NewCircuitBreaker("redis_"+cacheName, circuitbreaker.Config{
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetGaugeVec(metrics.CircuitBreakerState, prometheus.Labels{"name": name}, float64(to))
			logger.Warn("熔断器状态变化",
				zap.String("name", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})
}

// GetBookIDs 查询缓存
func (c *QueryCache) GetBookIDs(ctx context.Context, key string) ([]uint, bool, error) {
	var val string
	err := c.execute(func() error {
		var err error
		val, err = c.client.Get(ctx, c.listKey(key)).Result()
		return err
	})
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(cacheName, "miss")
		return nil, false, nil
	}
	if err != nil {
		metrics.RecordCacheLookup(cacheName, "error")
		return nil, false, c.wrap(err, "获取缓存失败")
	}

	var ids []uint
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		// 坏数据按未命中处理,下次写入会覆盖
		metrics.RecordCacheLookup(cacheName, "miss")
		c.logger.Warn("缓存数据无法解析", zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}

	metrics.RecordCacheLookup(cacheName, "hit")
	return ids, true, nil
}

// SetBookIDs 写入缓存
func (c *QueryCache) SetBookIDs(ctx context.Context, key string, ids []uint) error {
	if ids == nil {
		ids = []uint{}
	}
	val, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	err = c.execute(func() error {
		return c.client.Set(ctx, c.listKey(key), val, c.ttl).Err()
	})
	if err != nil {
		return c.wrap(err, "设置缓存失败")
	}
	return nil
}

// Invalidate 删除全部列表缓存
// SCAN遍历匹配的key,UNLINK异步删除
func (c *QueryCache) Invalidate(ctx context.Context) error {
	err := c.execute(func() error {
		iter := c.client.Scan(ctx, 0, c.listKey("*"), 100).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}

		if len(keys) == 0 {
			return nil
		}
		return c.client.Unlink(ctx, keys...).Err()
	})
	if err != nil {
		return c.wrap(err, "清空列表缓存失败")
	}
	return nil
}

func (c *QueryCache) execute(req func() error) error {
	err := c.breaker.Execute(req)

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil && !errors.Is(err, redis.Nil):
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, prometheus.Labels{
		"name":   c.breaker.Name(),
		"result": result,
	})
	return err
}

func (c *QueryCache) wrap(err error, message string) error {
	return &apperrors.AppError{
		Code:    apperrors.ErrCodeRedisError,
		Message: message,
		Err:     err,
	}
}

// listKey 格式:{prefix}:books:list:{key}
func (c *QueryCache) listKey(key string) string {
	return fmt.Sprintf("%s:books:list:%s", c.prefix, key)
}
