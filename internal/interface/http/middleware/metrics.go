package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xiebiao/bookcart/pkg/metrics"
	"github.com/xiebiao/bookcart/pkg/response"
)

// Metrics HTTP请求指标
// path用路由模板(/api/v1/books/:id),未匹配的路由统一记为unmatched
// 业务错误的响应码固定200,status标签取错误码对应的HTTP语义
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		if v, ok := c.Get(response.ErrorStatusKey); ok {
			if s, ok := v.(int); ok {
				status = s
			}
		}

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(status),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
