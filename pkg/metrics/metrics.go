// Package metrics 基于Prometheus的指标收集
//
// 指标分三类:
//   - HTTP: 请求总数、耗时、处理中的请求数
//   - 业务: 购物车变更、购物车总价、图书查询、查询结果缓存
//   - 基础设施: 熔断器状态、MQ消息发布
//
// InitMetrics必须在启动时调用一次;未初始化时所有Record*/Inc*函数都是空操作,
// 单元测试不需要注册全局Registry。
//
// 常见指标命名规范:
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾(`_seconds`)
//  3. 避免高基数标签:不要用book_id作为标签
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签:method、path(路由模板,不是原始URL)、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CartMutationsTotal 购物车变更次数
	// 标签:op(add/remove/clear)、result(ok/rejected)
	CartMutationsTotal *prometheus.CounterVec

	// CartPriceAll 购物车当前总价
	CartPriceAll prometheus.Gauge

	// CartEntries 购物车当前行数
	CartEntries prometheus.Gauge

	// BookQueriesTotal 图书列表查询次数
	// 标签:result(ok/invalid)
	BookQueriesTotal *prometheus.CounterVec

	// BookQueryDuration 图书列表查询耗时
	BookQueryDuration prometheus.Histogram

	// CacheLookupsTotal 缓存查询次数
	// 标签:cache、result(hit/miss/error)
	CacheLookupsTotal *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态,0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签:name、result(success/failure/rejected)
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数
	// 标签:exchange、routing_key、result(ok/error)
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标并注册到默认Registry
// 多次调用只生效一次
func InitMetrics() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时(秒)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "购物车变更次数",
		},
		[]string{"op", "result"},
	)

	CartPriceAll = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_price_all",
			Help: "购物车当前总价",
		},
	)

	CartEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_entries",
			Help: "购物车当前行数",
		},
	)

	BookQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_queries_total",
			Help: "图书列表查询次数",
		},
		[]string{"result"},
	)

	BookQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "book_query_duration_seconds",
			Help: "图书列表查询耗时(秒)",
			// 纯内存查询,桶从0.1ms开始
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "缓存查询次数",
		},
		[]string{"cache", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态(0=CLOSED, 1=OPEN, 2=HALF_OPEN)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
}

// IncCounterVec 递增CounterVec(带标签),未初始化时忽略
func IncCounterVec(counter *prometheus.CounterVec, labels prometheus.Labels) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// SetGaugeVec 设置GaugeVec值(带标签)
func SetGaugeVec(gauge *prometheus.GaugeVec, labels prometheus.Labels, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram == nil {
		return
	}
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值(带标签)
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels prometheus.Labels, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}

// RecordCartMutation 记录一次购物车变更及变更后的状态
func RecordCartMutation(op string, ok bool, priceAll float64, entries int) {
	result := "ok"
	if !ok {
		result = "rejected"
	}
	IncCounterVec(CartMutationsTotal, prometheus.Labels{"op": op, "result": result})
	if ok {
		SetGauge(CartPriceAll, priceAll)
		SetGauge(CartEntries, float64(entries))
	}
}

// RecordBookQuery 记录一次图书列表查询
func RecordBookQuery(seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "invalid"
	}
	IncCounterVec(BookQueriesTotal, prometheus.Labels{"result": result})
	ObserveHistogram(BookQueryDuration, seconds)
}

// RecordCacheLookup 记录一次缓存查询,result取hit/miss/error
func RecordCacheLookup(cache, result string) {
	IncCounterVec(CacheLookupsTotal, prometheus.Labels{"cache": cache, "result": result})
}
