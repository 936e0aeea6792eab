package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/omerfdk/sunsizer/core/metrics"
)

// PromSink records estimate events in Prometheus metrics.
type PromSink struct {
	estimates  *prometheus.CounterVec
	rejections *prometheus.CounterVec
	duration   prometheus.Histogram
	tiers      *prometheus.CounterVec
	lastOffset prometheus.Gauge
}

// NewPromSink registers estimate metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estimates_total",
		Help: "Total number of computed estimates",
	}, []string{"expert_mode", "has_solar"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estimate_rejections_total",
		Help: "Requests rejected during validation, by offending field",
	}, []string{"field"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "estimate_duration_seconds",
		Help:    "Time spent computing one estimate",
		Buckets: prometheus.DefBuckets,
	})
	tiers := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommended_tier_total",
		Help: "Recommendations by tier, with \"none\" when no tier fits",
	}, []string{"tier_id"})
	lastOffset := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_daily_offset_kwh",
		Help: "Daily grid offset of the most recent estimate with solar",
	})

	collectors := []prometheus.Collector{estimates, rejections, duration, tiers, lastOffset}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				collectors[i] = are.ExistingCollector
			} else {
				return nil, err
			}
		}
	}
	estimates = collectors[0].(*prometheus.CounterVec)
	rejections = collectors[1].(*prometheus.CounterVec)
	duration = collectors[2].(prometheus.Histogram)
	tiers = collectors[3].(*prometheus.CounterVec)
	lastOffset = collectors[4].(prometheus.Gauge)

	return &PromSink{
		estimates:  estimates,
		rejections: rejections,
		duration:   duration,
		tiers:      tiers,
		lastOffset: lastOffset,
	}, nil
}

// RecordEstimate increments the estimate counters and observes the duration.
func (s *PromSink) RecordEstimate(ev coremetrics.EstimateEvent) error {
	s.estimates.WithLabelValues(strconv.FormatBool(ev.ExpertMode), strconv.FormatBool(ev.SolarWp > 0)).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	tier := ev.TierID
	if tier == "" {
		tier = "none"
	}
	s.tiers.WithLabelValues(tier).Inc()
	if ev.SolarWp > 0 {
		s.lastOffset.Set(ev.DailyOffsetKWh)
	}
	return nil
}

// RecordRejection counts a validation rejection by field.
func (s *PromSink) RecordRejection(ev coremetrics.RejectionEvent) error {
	s.rejections.WithLabelValues(ev.Field).Inc()
	return nil
}
