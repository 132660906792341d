package errors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError 应用错误
// Code给客户端判断错误类型，Message是可以直接展示的提示，Err只进日志不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"-"` // 参数错误对应的字段名(可选)
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidArgument 创建参数错误并记录出错字段
// code应在409xx区间内
func NewInvalidArgument(code int, field, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// Wrap 包装系统错误,隐藏底层实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// IsInvalidArgument 是否为调用方参数违约(contract violation)
func (e *AppError) IsInvalidArgument() bool {
	return e.Code >= ErrCodeInvalidParams && e.Code < 41000
}

// HTTPStatus 错误码到HTTP状态码的映射
// 统一响应体里仍返回200 + 业务码,这个值只用于access log和metrics
func (e *AppError) HTTPStatus() int {
	switch {
	case e.IsInvalidArgument():
		return http.StatusBadRequest
	case e.Code >= ErrCodeNotFound && e.Code < 40500:
		return http.StatusNotFound
	case e.Code >= ErrCodeBusinessError && e.Code < ErrCodeInternal:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GRPCStatus 让status.FromError能识别AppError
// 参数错误附带errdetails.BadRequest,方便客户端定位字段
func (e *AppError) GRPCStatus() *status.Status {
	var code codes.Code
	switch {
	case e.IsInvalidArgument():
		code = codes.InvalidArgument
	case e.Code >= ErrCodeNotFound && e.Code < 40500:
		code = codes.NotFound
	case e.Code >= ErrCodeBusinessError && e.Code < ErrCodeInternal:
		code = codes.FailedPrecondition
	default:
		code = codes.Internal
	}

	st := status.New(code, e.Message)
	if code != codes.InvalidArgument || e.Field == "" {
		return st
	}

	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: e.Field, Description: e.Message},
		},
	})
	if err != nil {
		return st
	}
	return detailed
}

// =========================================
// 错误码定义
// =========================================
// - 4xxxx: 客户端错误
// - 5xxxx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal   = 50000 // 内部错误
	ErrCodeRedisError = 50002 // Redis错误
	ErrCodeMQError    = 50003 // 消息队列错误
	ErrCodeSeedError  = 50004 // 目录种子数据错误

	// 资源错误（40400-40499）
	// 查询不到的作者/图书按约定返回code 0 + 空data,不走这个区间
	ErrCodeNotFound = 40400 // 资源不存在(通用)

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError = 40000 // 业务错误(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams   = 40900 // 参数错误
	ErrCodeBindError       = 40901 // 参数绑定失败
	ErrCodeInvalidPage     = 40902 // 页码非法
	ErrCodeInvalidPageSize = 40903 // 每页数量不在允许范围
	ErrCodeInvalidLimit    = 40904 // 评论数量限制非法
	ErrCodeInvalidGenre    = 40905 // 未知体裁
	ErrCodeInvalidSort     = 40906 // 未知排序方向
)

// 预定义错误
var (
	ErrInternal  = New(ErrCodeInternal, "系统内部错误")
	ErrBindError = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// IsInvalidArgument 判断err链上是否有参数违约错误
func IsInvalidArgument(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.IsInvalidArgument()
}
