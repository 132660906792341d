//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookcart/internal/application/author"
	appbook "github.com/xiebiao/bookcart/internal/application/book"
	apporder "github.com/xiebiao/bookcart/internal/application/order"
	"github.com/xiebiao/bookcart/internal/domain/book"
	"github.com/xiebiao/bookcart/internal/domain/catalog"
	"github.com/xiebiao/bookcart/internal/infrastructure/config"
	"github.com/xiebiao/bookcart/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcart/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖:目录、缓存、消息
var infrastructureSet = wire.NewSet(
	provideCatalogStore,
	wire.Bind(new(catalog.Store), new(*memory.CatalogStore)),
	provideResultCache,
	provideEventPublisher,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	provideLocale,
	providePageSizePolicy,
	book.NewQueryEngine,
	book.NewResolver,
	provideCart,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewAssembler,
	appauthor.NewGetAuthorUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetCommentsUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewAddBookUseCase,
	apporder.NewRemoveBookUseCase,
	apporder.NewClearOrderUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
	provideRouter,
)

// InitializeApp 初始化整个应用
// cleanup按创建的逆序关闭Redis、RabbitMQ连接
func InitializeApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
