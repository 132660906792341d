package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不能panic(重复注册)

	require.NotNil(t, HTTPRequestsTotal)
	require.NotNil(t, HTTPRequestDuration)
	require.NotNil(t, HTTPRequestsInProgress)
	require.NotNil(t, CartMutationsTotal)
	require.NotNil(t, CacheLookupsTotal)
}

func TestRecordCartMutation(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(CartMutationsTotal.With(prometheus.Labels{"op": "add", "result": "ok"}))
	RecordCartMutation("add", true, 438.9, 2)
	RecordCartMutation("add", true, 637.9, 2)
	RecordCartMutation("add", false, 0, 0)

	assert.Equal(t, before+2, testutil.ToFloat64(CartMutationsTotal.With(prometheus.Labels{"op": "add", "result": "ok"})))
	assert.Equal(t, 637.9, testutil.ToFloat64(CartPriceAll), "失败的变更不更新总价")
	assert.Equal(t, 2.0, testutil.ToFloat64(CartEntries))
}

func TestRecordBookQuery(t *testing.T) {
	InitMetrics()

	ok := testutil.ToFloat64(BookQueriesTotal.With(prometheus.Labels{"result": "ok"}))
	invalid := testutil.ToFloat64(BookQueriesTotal.With(prometheus.Labels{"result": "invalid"}))

	RecordBookQuery(0.0002, nil)
	RecordBookQuery(0.0001, errors.New("bad page"))

	assert.Equal(t, ok+1, testutil.ToFloat64(BookQueriesTotal.With(prometheus.Labels{"result": "ok"})))
	assert.Equal(t, invalid+1, testutil.ToFloat64(BookQueriesTotal.With(prometheus.Labels{"result": "invalid"})))
}

func TestRecordCacheLookup(t *testing.T) {
	InitMetrics()

	labels := prometheus.Labels{"cache": "book_list", "result": "hit"}
	before := testutil.ToFloat64(CacheLookupsTotal.With(labels))
	RecordCacheLookup("book_list", "hit")
	RecordCacheLookup("book_list", "miss")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheLookupsTotal.With(labels)))
}

func TestHelpers_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		IncCounterVec(nil, prometheus.Labels{"a": "b"})
		IncGauge(nil)
		DecGauge(nil)
		SetGauge(nil, 1)
		SetGaugeVec(nil, nil, 1)
		ObserveHistogram(nil, 1)
		ObserveHistogramVec(nil, nil, 1)
	})
}
