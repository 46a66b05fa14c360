package timetable

import "errors"

// Validation rejections returned by the planner. All of them leave prior
// state untouched; callers surface them to the user and retry.
var (
	// ErrInvalidSpan is returned when a requested span cannot be satisfied
	// before the period table ends, or when it would touch a break under the
	// strict break policy.
	ErrInvalidSpan = errors.New("span cannot be satisfied")
	// ErrUnknownPeriod is returned when the referenced period id is not part
	// of the table.
	ErrUnknownPeriod = errors.New("period not found in table")
	// ErrUnknownFaculty is returned when a faculty id is not part of the
	// owning schedule.
	ErrUnknownFaculty = errors.New("faculty not found in schedule")
	// ErrUnknownSubject is returned when the subject id is not part of the
	// owning schedule.
	ErrUnknownSubject = errors.New("subject not found in schedule")
	// ErrUnknownSchedule is returned when the schedule id is not managed by
	// the planner.
	ErrUnknownSchedule = errors.New("schedule not found")
	// ErrUnknownSlot is returned when the referenced session does not exist.
	ErrUnknownSlot = errors.New("slot not found")
	// ErrOccupied is returned when the requested position or span collides
	// with a session already placed on the same day.
	ErrOccupied = errors.New("period already occupied")
)
