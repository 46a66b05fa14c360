package metrics

import "time"

// EditKind names the mutating operations the planner records.
type EditKind string

const (
	EditPlace         EditKind = "place"
	EditRemove        EditKind = "remove"
	EditPeriodAdd     EditKind = "period_add"
	EditPeriodUpdate  EditKind = "period_update"
	EditPeriodDelete  EditKind = "period_delete"
	EditScheduleAdded EditKind = "schedule_add"
)

// EditEvent describes one edit transaction, successful or rejected.
type EditEvent struct {
	Kind       EditKind
	ScheduleID string
	SlotType   string
	Accepted   bool
	Time       time.Time
}

// ConflictEvent describes an advisory faculty-conflict warning attached to
// a successful placement.
type ConflictEvent struct {
	ScheduleID      string
	OtherScheduleID string
	FacultyID       string
	Time            time.Time
}

// QuotaEvent describes an advisory quota warning attached to a successful
// placement.
type QuotaEvent struct {
	ScheduleID string
	SubjectID  string
	SlotType   string
	Used       int
	Quota      int
	Time       time.Time
}

// EditSink records planner activity for observability purposes.
type EditSink interface {
	RecordEdit(ev EditEvent) error
	RecordConflictWarning(ev ConflictEvent) error
	RecordQuotaWarning(ev QuotaEvent) error
}

// NopSink implements EditSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordEdit(EditEvent) error { return nil }

func (NopSink) RecordConflictWarning(ConflictEvent) error { return nil }

func (NopSink) RecordQuotaWarning(QuotaEvent) error { return nil }
