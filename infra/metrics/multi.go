package metrics

import coremetrics "github.com/omerfdk/sunsizer/core/metrics"

// MultiSink fans estimate events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordEstimate forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordEstimate(ev coremetrics.EstimateEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordEstimate(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRejection forwards rejection events to sinks that record them.
func (m *MultiSink) RecordRejection(ev coremetrics.RejectionEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.RejectionRecorder); ok {
			if err := rec.RecordRejection(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
