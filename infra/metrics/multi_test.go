package metrics

import (
	"testing"

	coremetrics "github.com/timegridhq/timegrid/core/metrics"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordEdit(coremetrics.EditEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordConflictWarning(coremetrics.ConflictEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordQuotaWarning(coremetrics.QuotaEvent) error {
	r.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordEdit(coremetrics.EditEvent{}); err != nil {
		t.Fatalf("record edit: %v", err)
	}
	if err := m.RecordConflictWarning(coremetrics.ConflictEvent{}); err != nil {
		t.Fatalf("record conflict: %v", err)
	}
	if err := m.RecordQuotaWarning(coremetrics.QuotaEvent{}); err != nil {
		t.Fatalf("record quota: %v", err)
	}
	if s1.count != 3 || s2.count != 3 {
		t.Fatalf("events not forwarded")
	}
}
