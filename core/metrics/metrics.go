package metrics

import "time"

// EstimateEvent captures one computed estimate for observability purposes.
type EstimateEvent struct {
	RequestID       string
	ArchetypeID     string
	ExpertMode      bool
	City            string
	SolarWp         float64
	PackCount       int
	TypicalDailyKWh float64
	TypicalPeakW    float64
	DailyOffsetKWh  float64
	TierID          string
	Duration        time.Duration
	Time            time.Time
}

// RejectionEvent captures a request rejected during validation.
type RejectionEvent struct {
	RequestID string
	Field     string
	Time      time.Time
}

// MetricsSink records estimate events.
type MetricsSink interface {
	RecordEstimate(ev EstimateEvent) error
}

// RejectionRecorder records validation rejections. Sinks that do not care
// about rejections simply do not implement it.
type RejectionRecorder interface {
	RecordRejection(ev RejectionEvent) error
}

// NopSink discards all events.
type NopSink struct{}

// RecordEstimate implements MetricsSink doing nothing.
func (NopSink) RecordEstimate(EstimateEvent) error { return nil }

// RecordRejection implements RejectionRecorder doing nothing.
func (NopSink) RecordRejection(RejectionEvent) error { return nil }
