package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookcart/docs"
	"github.com/xiebiao/bookcart/internal/interface/http/handler"
	"github.com/xiebiao/bookcart/internal/interface/http/middleware"
	"github.com/xiebiao/bookcart/pkg/response"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Author *handler.AuthorHandler
	Book   *handler.BookHandler
	Order  *handler.OrderHandler
}

// New 创建Gin引擎并注册路由
// 中间件顺序:Recovery → Logger → Metrics → Handler
func New(mode string, log *zap.Logger, h Handlers) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/authors/:id", h.Author.GetAuthor)

		books := v1.Group("/books")
		{
			books.GET("", h.Book.ListBooks)
			books.GET("/:id", h.Book.GetBook)
			books.GET("/:id/comments", h.Book.GetComments)
		}

		order := v1.Group("/order")
		{
			order.GET("", h.Order.GetOrder)
			order.DELETE("", h.Order.ClearOrder)
			order.POST("/books/:id", h.Order.AddBook)
			order.DELETE("/books/:id", h.Order.RemoveBook)
		}
	}

	return r
}
