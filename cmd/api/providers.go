package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/internal/domain/order"
	"github.com/xiebiao/bookcart/internal/infrastructure/config"
	"github.com/xiebiao/bookcart/internal/infrastructure/messaging"
	"github.com/xiebiao/bookcart/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcart/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcart/internal/interface/http/handler"
	"github.com/xiebiao/bookcart/internal/interface/http/router"
	"github.com/xiebiao/bookcart/pkg/mq"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
	Stats  memory.Stats
}

// newApp Wire的最终产物
func newApp(engine *gin.Engine, store *memory.CatalogStore) *App {
	return &App{
		Engine: engine,
		Stats:  store.Stats(),
	}
}

// provideCatalogStore 加载目录;seed_file为空时用内置种子数据
func provideCatalogStore(cfg *config.Config) (*memory.CatalogStore, error) {
	if cfg.Catalog.SeedFile == "" {
		return memory.NewCatalogStore(memory.DefaultSeed())
	}
	return memory.LoadCatalogStore(cfg.Catalog.SeedFile)
}

func provideLocale(cfg *config.Config) language.Tag {
	return cfg.Catalog.Language()
}

func providePageSizePolicy(cfg *config.Config) book.PageSizePolicy {
	return book.PageSizePolicy{
		Allowed: cfg.Catalog.PageSizes,
		Default: cfg.Catalog.DefaultPageSize,
	}
}

// provideCart 整个进程共用一个购物车
func provideCart(store catalog.Store) *order.Cart {
	return order.NewCart(store)
}

// provideResultCache 未启用Redis时返回nil,列表查询直接走查询引擎
// 启动时清空旧的列表缓存:种子数据可能已经变了
func provideResultCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (book.ResultCache, func(), error) {
	logger = logger.Named("redis")
	if !cfg.Redis.Enabled {
		logger.Info("未启用Redis,列表查询不使用缓存")
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("关闭Redis连接失败", zap.Error(err))
		}
	}

	breaker := redis.NewBreaker(cfg.Redis.Breaker, logger)
	cache := redis.NewQueryCache(client, cfg.Redis.KeyPrefix, cfg.Redis.ListTTL, breaker, logger)
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("清空列表缓存失败", zap.Error(err))
	}
	return cache, cleanup, nil
}

// provideEventPublisher 未启用MQ时丢弃事件
func provideEventPublisher(cfg *config.Config, logger *zap.Logger) (order.EventPublisher, func(), error) {
	logger = logger.Named("mq")
	if !cfg.MQ.Enabled {
		logger.Info("未启用RabbitMQ,购物车事件不投递")
		return order.NopPublisher{}, func() {}, nil
	}

	pub, err := mq.Dial(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := pub.Close(); err != nil {
			logger.Warn("关闭RabbitMQ连接失败", zap.Error(err))
		}
	}
	return messaging.NewCartEventPublisher(pub), cleanup, nil
}

func provideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
) *gin.Engine {
	return router.New(cfg.Server.Mode, logger.Named("http"), router.Handlers{
		Author: authorHandler,
		Book:   bookHandler,
		Order:  orderHandler,
	})
}
