package model

import "errors"

// SlotType distinguishes what a placed session counts for.
type SlotType string

const (
	// Theory sessions count against the subject's theory quota.
	Theory SlotType = "theory"
	// Practical sessions count against the subject's practical quota.
	Practical SlotType = "practical"
	// Busy marks an externally booked faculty block. It carries no subject
	// and is used only for conflict bookkeeping, never for quotas.
	Busy SlotType = "busy"
)

// String returns the lowercase type name.
func (t SlotType) String() string { return string(t) }

// Valid reports whether the type is one of the known kinds.
func (t SlotType) Valid() bool {
	return t == Theory || t == Practical || t == Busy
}

// ErrEmptyAssignment is returned when a slot is saved without the subject or
// faculty it needs. Busy slots require only a faculty.
var ErrEmptyAssignment = errors.New("slot has no subject or faculty assigned")

// ErrDuplicateFaculty is returned when the same faculty id appears twice in
// one slot.
var ErrDuplicateFaculty = errors.New("duplicate faculty id in slot")

// TimeSlot is a placed session: an occupation of one or more consecutive
// non-break periods on one day. Period is the id of the starting period;
// Duration counts the non-break periods the session covers, including the
// start.
type TimeSlot struct {
	ID         string   `json:"id"`
	Day        Day      `json:"day"`
	Period     int      `json:"period"`
	SubjectID  string   `json:"subject_id,omitempty"`
	FacultyIDs []string `json:"faculty_ids"`
	Type       SlotType `json:"type"`
	Duration   int      `json:"duration"`
}

// Validate checks the slot's own invariants: a known type, a positive
// duration, unique faculty ids, and a non-empty assignment. Busy slots need
// at least one faculty but no subject; every other slot needs both.
func (s TimeSlot) Validate() error {
	if !s.Type.Valid() {
		return errors.New("unknown slot type")
	}
	if !s.Day.Valid() {
		return errors.New("unknown day")
	}
	if s.Duration < 1 {
		return errors.New("duration must be at least one period")
	}
	seen := make(map[string]struct{}, len(s.FacultyIDs))
	for _, id := range s.FacultyIDs {
		if _, ok := seen[id]; ok {
			return ErrDuplicateFaculty
		}
		seen[id] = struct{}{}
	}
	if len(s.FacultyIDs) == 0 {
		return ErrEmptyAssignment
	}
	if s.Type != Busy && s.SubjectID == "" {
		return ErrEmptyAssignment
	}
	return nil
}

// HasFaculty reports whether the slot involves the given faculty.
func (s TimeSlot) HasFaculty(facultyID string) bool {
	for _, id := range s.FacultyIDs {
		if id == facultyID {
			return true
		}
	}
	return false
}
