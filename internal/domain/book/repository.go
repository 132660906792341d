package book

import (
	"context"
)

// ResultCache 列表查询结果缓存接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(Redis)
// 2. 只缓存命中的图书ID,命中后再到Store取实体,缓存里不会出现过期的图书字段
// 3. key来自规范化后的ListParams.CacheKey()
type ResultCache interface {
	// GetBookIDs 查询缓存,未命中返回(nil, false, nil)
	GetBookIDs(ctx context.Context, key string) ([]uint, bool, error)

	// SetBookIDs 写入缓存(空结果也缓存)
	SetBookIDs(ctx context.Context, key string, ids []uint) error

	// Invalidate 删除全部列表缓存(目录重新加载后调用)
	Invalidate(ctx context.Context) error
}
