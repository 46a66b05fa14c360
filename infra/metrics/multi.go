package metrics

import coremetrics "github.com/timegridhq/timegrid/core/metrics"

// MultiSink fans edit events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.EditSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.EditSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordEdit forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordEdit(ev coremetrics.EditEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordEdit(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordConflictWarning forwards conflict warnings.
func (m *MultiSink) RecordConflictWarning(ev coremetrics.ConflictEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordConflictWarning(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordQuotaWarning forwards quota warnings.
func (m *MultiSink) RecordQuotaWarning(ev coremetrics.QuotaEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordQuotaWarning(ev); err != nil {
			return err
		}
	}
	return nil
}
