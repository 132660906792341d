package order

import (
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
)

// 购物车领域错误定义
// 加书/删书失败只返回false,不属于错误;这里只有事件投递相关的错误
var (
	// ErrEventPublish 购物车事件投递失败
	ErrEventPublish = apperrors.New(apperrors.ErrCodeMQError, "购物车事件投递失败")

	// ErrUnknownEventType 未知事件类型
	ErrUnknownEventType = apperrors.New(apperrors.ErrCodeInternal, "未知的购物车事件类型")
)
