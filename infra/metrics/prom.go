package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/timegridhq/timegrid/core/metrics"
)

// PromSink records edit activity in Prometheus metrics.
type PromSink struct {
	edits     *prometheus.CounterVec
	conflicts *prometheus.CounterVec
	quota     *prometheus.CounterVec
}

// NewPromSink registers edit metrics on the default Prometheus registerer.
// The Prometheus server should be started separately on cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	edits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_edits_total",
		Help: "Total number of edit transactions by kind and outcome",
	}, []string{"kind", "slot_type", "accepted"})
	conflicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_conflict_warnings_total",
		Help: "Advisory faculty-conflict warnings attached to placements",
	}, []string{"schedule_id"})
	quota := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_quota_warnings_total",
		Help: "Advisory quota-overflow warnings attached to placements",
	}, []string{"schedule_id", "slot_type"})

	if err := reg.Register(edits); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			edits = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(conflicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			conflicts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(quota); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			quota = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{edits: edits, conflicts: conflicts, quota: quota}, nil
}

// RecordEdit increments the edit counter.
func (s *PromSink) RecordEdit(ev coremetrics.EditEvent) error {
	s.edits.WithLabelValues(string(ev.Kind), ev.SlotType, strconv.FormatBool(ev.Accepted)).Inc()
	return nil
}

// RecordConflictWarning increments the conflict-warning counter.
func (s *PromSink) RecordConflictWarning(ev coremetrics.ConflictEvent) error {
	s.conflicts.WithLabelValues(ev.ScheduleID).Inc()
	return nil
}

// RecordQuotaWarning increments the quota-warning counter.
func (s *PromSink) RecordQuotaWarning(ev coremetrics.QuotaEvent) error {
	s.quota.WithLabelValues(ev.ScheduleID, ev.SlotType).Inc()
	return nil
}
