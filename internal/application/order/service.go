package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcart/internal/domain/order"
	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/metrics"
)

// MutationResponse 变更类用例的响应
// 失败不是错误:未知图书、不在购物车里的图书都只返回Success=false
type MutationResponse struct {
	Success bool `json:"success"`
}

// afterMutation 变更完成后的收尾:记录指标、投递事件
// 事件投递失败只记日志,不影响已经生效的变更
func afterMutation(
	ctx context.Context,
	publisher order.EventPublisher,
	log *zap.Logger,
	op string,
	event order.Event,
	ok bool,
) {
	// 总额和行数取自事件,事件在购物车锁内生成,不会混入其他请求的变更
	metrics.RecordCartMutation(op, ok, event.PriceAll.InexactFloat64(), event.Entries)
	if !ok {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx, log).Warn("购物车事件投递失败",
			zap.String("type", string(event.Type)),
			zap.Uint("book_id", event.BookID),
			zap.Error(err),
		)
	}
}
