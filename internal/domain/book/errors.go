package book

import (
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
)

// 图书查询错误定义(均为调用方参数违约)
var (
	// ErrInvalidPage 页码为负数
	ErrInvalidPage = apperrors.NewInvalidArgument(apperrors.ErrCodeInvalidPage, "page", "页码必须为正整数")

	// ErrInvalidPageSize 每页数量不在允许的集合内
	ErrInvalidPageSize = apperrors.NewInvalidArgument(apperrors.ErrCodeInvalidPageSize, "page_size", "每页数量不在允许范围内")

	// ErrInvalidSort 未知的排序方向
	ErrInvalidSort = apperrors.NewInvalidArgument(apperrors.ErrCodeInvalidSort, "sort", "排序方向只能是ASC或DESC")

	// ErrInvalidLimit 评论数量限制为负数
	ErrInvalidLimit = apperrors.NewInvalidArgument(apperrors.ErrCodeInvalidLimit, "limit", "`limit`必须是非负整数")
)
