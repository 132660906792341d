package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcart/pkg/errors"
	"github.com/xiebiao/bookcart/pkg/response"
)

// bindError 参数类型不对(如page=abc),与业务参数违约区分开
func bindError(c *gin.Context, err error) {
	response.Error(c, &apperrors.AppError{
		Code:    apperrors.ErrBindError.Code,
		Message: apperrors.ErrBindError.Message + ": " + err.Error(),
		Err:     err,
	})
}
