package timetable

import "github.com/timegridhq/timegrid/core/model"

// Conflict identifies where a faculty is already committed at a given day
// and period.
type Conflict struct {
	ScheduleID    string `json:"schedule_id"`
	ScheduleLabel string `json:"schedule_label"`
	SlotID        string `json:"slot_id"`
	FacultyID     string `json:"faculty_id"`
}

// FindConflict reports the first schedule other than exceptScheduleID whose
// session occupies (day, periodID) with the given faculty, or nil when the
// faculty is free. The lookup is coverage-aware: a faculty held by a
// multi-period session is committed at every period the span covers, not
// only at its start. When the faculty is double-booked in several other
// schedules only the first match in iteration order is reported.
func FindConflict(schedules []model.Schedule, exceptScheduleID string, day model.Day, periodID int, facultyID string, allowBreakSkip bool) *Conflict {
	for _, s := range schedules {
		if s.ID == exceptScheduleID {
			continue
		}
		grid := NewGrid(s, allowBreakSkip)
		slot, ok := grid.Covering(day, periodID)
		if !ok || !slot.HasFaculty(facultyID) {
			continue
		}
		return &Conflict{
			ScheduleID:    s.ID,
			ScheduleLabel: s.Label(),
			SlotID:        slot.ID,
			FacultyID:     facultyID,
		}
	}
	return nil
}
