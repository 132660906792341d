package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

const (
	// RequestIDKey 请求ID在gin上下文中的key
	RequestIDKey = "request_id"
	// RequestIDHeader 请求ID的响应头,请求里带了就沿用
	RequestIDHeader = "X-Request-ID"

	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
// 1. 生成请求ID,写入响应头
// 2. 把带request_id的logger放进request context,下游用logger.FromContext取
// 3. 请求结束后输出一条结构化访问日志
func Logger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLogger := base.With(zap.String("request_id", requestID))
		ctx := c.Request.Context()
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			reqLogger = reqLogger.With(zap.String("trace_id", traceID))
		}
		c.Request = c.Request.WithContext(logger.WithContext(ctx, reqLogger))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			reqLogger.Error("request", fields...)
		case latency > slowRequestThreshold:
			reqLogger.Warn("slow request", fields...)
		default:
			reqLogger.Info("request", fields...)
		}
	}
}
