package timetable

import "github.com/timegridhq/timegrid/core/model"

// Usage sums the placed hours of one subject in one schedule.
type Usage struct {
	Theory    int `json:"theory"`
	Practical int `json:"practical"`
}

// SubjectUsage computes the hours already committed for a subject,
// excluding the session identified by excludeSlotID so an edit of an
// existing session is not counted against itself. Busy blocks never count.
func SubjectUsage(s model.Schedule, subjectID, excludeSlotID string) Usage {
	var u Usage
	for _, slot := range s.TimeSlots {
		if slot.SubjectID != subjectID || slot.ID == excludeSlotID {
			continue
		}
		switch slot.Type {
		case model.Theory:
			u.Theory += slot.Duration
		case model.Practical:
			u.Practical += slot.Duration
		}
	}
	return u
}

// Remaining returns the unplaced hours for the slot type, floored at zero.
func (u Usage) Remaining(sub model.Subject, t model.SlotType) int {
	var left int
	switch t {
	case model.Theory:
		left = sub.TheoryCount - u.Theory
	case model.Practical:
		left = sub.PracticalCount - u.Practical
	}
	if left < 0 {
		return 0
	}
	return left
}

// IsFull reports whether the subject's quota for the slot type is already
// met or exceeded. Quota state is advisory: the planner reports it alongside
// successful placements and never blocks on it.
func (u Usage) IsFull(sub model.Subject, t model.SlotType) bool {
	switch t {
	case model.Theory:
		return u.Theory >= sub.TheoryCount
	case model.Practical:
		return u.Practical >= sub.PracticalCount
	}
	return false
}
