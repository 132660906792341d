package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/infrastructure/config"
	"github.com/xiebiao/bookcart/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
)

func newTestCache(t *testing.T) (*QueryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	breaker := NewBreaker(config.BreakerConfig{
		MaxRequests:      1,
		Timeout:          time.Minute,
		FailureThreshold: 2,
	}, zap.NewNop())
	return NewQueryCache(client, "bookcart", 5*time.Minute, breaker, zap.NewNop()), mr
}

func TestQueryCache_GetSet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	key := "a=:p=:g=:s=:sort=ASC:page=1:size=5"

	t.Run("未命中", func(t *testing.T) {
		ids, ok, err := cache.GetBookIDs(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, ids)
	})

	t.Run("写入后命中", func(t *testing.T) {
		require.NoError(t, cache.SetBookIDs(ctx, key, []uint{1, 2, 5, 4, 3}))

		ids, ok, err := cache.GetBookIDs(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []uint{1, 2, 5, 4, 3}, ids)

		raw, err := mr.Get("bookcart:books:list:" + key)
		require.NoError(t, err)
		assert.Equal(t, "[1,2,5,4,3]", raw)
		assert.Equal(t, 5*time.Minute, mr.TTL("bookcart:books:list:"+key))
	})

	t.Run("空结果也缓存", func(t *testing.T) {
		require.NoError(t, cache.SetBookIDs(ctx, "empty", nil))
		ids, ok, err := cache.GetBookIDs(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, ids)
	})

	t.Run("坏数据按未命中处理", func(t *testing.T) {
		require.NoError(t, mr.Set("bookcart:books:list:broken", "not json"))
		_, ok, err := cache.GetBookIDs(ctx, "broken")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("过期", func(t *testing.T) {
		require.NoError(t, cache.SetBookIDs(ctx, "ttl", []uint{1}))
		mr.FastForward(6 * time.Minute)
		_, ok, err := cache.GetBookIDs(ctx, "ttl")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestQueryCache_Invalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetBookIDs(ctx, "k1", []uint{1}))
	require.NoError(t, cache.SetBookIDs(ctx, "k2", []uint{2}))
	require.NoError(t, mr.Set("other:key", "keep"))

	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists("bookcart:books:list:k1"))
	assert.False(t, mr.Exists("bookcart:books:list:k2"))
	assert.True(t, mr.Exists("other:key"), "只删除列表缓存")

	require.NoError(t, cache.Invalidate(ctx), "没有key时也成功")
}

func TestQueryCache_Breaker(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	// 多次未命中不会触发熔断
	for i := 0; i < 5; i++ {
		_, _, err := cache.GetBookIDs(ctx, "miss")
		require.NoError(t, err)
	}
	assert.Equal(t, circuitbreaker.StateClosed, cache.breaker.State())

	mr.Close()

	_, _, err := cache.GetBookIDs(ctx, "k")
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeRedisError, appErr.Code)

	_ = cache.SetBookIDs(ctx, "k", []uint{1})
	assert.Equal(t, circuitbreaker.StateOpen, cache.breaker.State())

	_, _, err = cache.GetBookIDs(ctx, "k")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState, "熔断后不再访问Redis")
}
