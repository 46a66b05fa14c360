package model

import "time"

// ScheduleDetails carries the display identity of a class timetable.
type ScheduleDetails struct {
	ClassName string `json:"class_name"`
	Section   string `json:"section"`
	Session   string `json:"session"`
	Semester  string `json:"semester"`
}

// Schedule is one weekly class timetable. It owns its subjects and slots
// exclusively; faculties are references into the shared registry and the
// period table may start out shared across a department view.
type Schedule struct {
	ID           string          `json:"id"`
	Details      ScheduleDetails `json:"details"`
	Subjects     []Subject       `json:"subjects"`
	Faculties    []Faculty       `json:"faculties"`
	Periods      []Period        `json:"periods"`
	TimeSlots    []TimeSlot      `json:"time_slots"`
	LastModified time.Time       `json:"last_modified"`
}

// Clone returns a deep copy of the schedule. Edits are applied to a clone
// and the whole object is swapped in, so readers never observe a partially
// applied edit.
func (s Schedule) Clone() Schedule {
	out := s
	out.Subjects = append([]Subject(nil), s.Subjects...)
	out.Faculties = append([]Faculty(nil), s.Faculties...)
	out.Periods = append([]Period(nil), s.Periods...)
	out.TimeSlots = make([]TimeSlot, len(s.TimeSlots))
	for i, ts := range s.TimeSlots {
		ts.FacultyIDs = append([]string(nil), ts.FacultyIDs...)
		out.TimeSlots[i] = ts
	}
	return out
}

// Touch updates the modification stamp.
func (s *Schedule) Touch() { s.LastModified = time.Now().UTC() }

// SubjectByID resolves a subject owned by the schedule.
func (s Schedule) SubjectByID(id string) (Subject, bool) {
	for _, sub := range s.Subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return Subject{}, false
}

// FacultyByID resolves a faculty referenced by the schedule.
func (s Schedule) FacultyByID(id string) (Faculty, bool) {
	for _, f := range s.Faculties {
		if f.ID == id {
			return f, true
		}
	}
	return Faculty{}, false
}

// SlotByID resolves a placed session.
func (s Schedule) SlotByID(id string) (TimeSlot, bool) {
	for _, ts := range s.TimeSlots {
		if ts.ID == id {
			return ts, true
		}
	}
	return TimeSlot{}, false
}

// Label is the human identity used when reporting conflicts.
func (s Schedule) Label() string {
	if s.Details.Section == "" {
		return s.Details.ClassName
	}
	return s.Details.ClassName + " " + s.Details.Section
}
