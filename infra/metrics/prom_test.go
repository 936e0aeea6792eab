package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/omerfdk/sunsizer/core/metrics"
)

func TestPromSinkRegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordEstimate(coremetrics.EstimateEvent{
		RequestID:      "r1",
		SolarWp:        2000,
		DailyOffsetKWh: 5,
		TierID:         "tier_2",
		Duration:       12 * time.Millisecond,
	}))
	require.NoError(t, sink.RecordEstimate(coremetrics.EstimateEvent{RequestID: "r2"}))
	require.NoError(t, sink.RecordRejection(coremetrics.RejectionEvent{RequestID: "r3", Field: "city"}))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, n := range []string{
		"estimates_total",
		"estimate_rejections_total",
		"estimate_duration_seconds",
		"recommended_tier_total",
		"last_daily_offset_kwh",
	} {
		assert.True(t, names[n], "metric %s not registered", n)
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	// Registering again must reuse the existing collectors.
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	assert.NoError(t, sink.RecordEstimate(coremetrics.EstimateEvent{}))
}

func TestMultiSinkFansOut(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	multi := NewMultiSink(prom, coremetrics.NopSink{})
	assert.NoError(t, multi.RecordEstimate(coremetrics.EstimateEvent{TierID: "tier_1"}))
	assert.NoError(t, multi.RecordRejection(coremetrics.RejectionEvent{Field: "packs"}))
}
