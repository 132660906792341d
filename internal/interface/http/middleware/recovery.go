package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcart/pkg/errors"
	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/response"
)

// Recovery panic恢复,记录日志后返回统一的内部错误响应
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context(), base).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		c.Set(response.ErrorStatusKey, http.StatusInternalServerError)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Code:    apperrors.ErrCodeInternal,
			Message: apperrors.ErrInternal.Message,
		})
	})
}
