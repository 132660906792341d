package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcart/pkg/errors"
	"github.com/xiebiao/bookcart/pkg/logger"
)

// Response 统一响应结构
// 设计说明:
// 1. Code是业务错误码(非HTTP状态码),0表示成功
// 2. Message是用户友好的提示信息
// 3. Data是业务数据,查不到的实体和失败时都为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应(Code=0表示成功)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应(自动处理AppError)
// HTTP状态码固定200,业务码对应的HTTP语义记在gin上下文里给access log和metrics用
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志,不返回给客户端
	if appErr.Err != nil {
		logger.FromContext(c.Request.Context(), nil).Error("request failed",
			zap.Int("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}

	c.Set(ErrorStatusKey, appErr.HTTPStatus())
	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    nil,
	})
}

// ErrorStatusKey 错误对应的HTTP语义状态码在gin上下文中的key
const ErrorStatusKey = "error_status"

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
// 图书列表不返回总数(与查询引擎一致),只回显规范化后的页码和每页数量
type PageData struct {
	List     interface{} `json:"list"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, page, pageSize int) {
	Success(c, &PageData{
		List:     list,
		Page:     page,
		PageSize: pageSize,
	})
}
