package catalog

import (
	apperrors "github.com/xiebiao/bookcart/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrUnknownGenre 未知体裁
	ErrUnknownGenre = apperrors.NewInvalidArgument(apperrors.ErrCodeInvalidGenre, "genre", "未知的图书体裁")

	// ErrInvalidSeed 种子数据不合法
	ErrInvalidSeed = apperrors.New(apperrors.ErrCodeSeedError, "目录种子数据不合法")
)
