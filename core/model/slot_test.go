package model

import (
	"errors"
	"testing"
)

func TestTimeSlotValidate(t *testing.T) {
	s := TimeSlot{ID: "s1", Day: Monday, Period: 1, SubjectID: "sub1", FacultyIDs: []string{"f1"}, Type: Theory, Duration: 1}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimeSlotValidateDuplicateFaculty(t *testing.T) {
	s := TimeSlot{ID: "s1", Day: Monday, Period: 1, SubjectID: "sub1", FacultyIDs: []string{"f1", "f1"}, Type: Theory, Duration: 1}
	if err := s.Validate(); !errors.Is(err, ErrDuplicateFaculty) {
		t.Fatalf("expected ErrDuplicateFaculty got %v", err)
	}
}

func TestTimeSlotValidateEmptyAssignment(t *testing.T) {
	s := TimeSlot{ID: "s1", Day: Monday, Period: 1, FacultyIDs: []string{"f1"}, Type: Theory, Duration: 1}
	if err := s.Validate(); !errors.Is(err, ErrEmptyAssignment) {
		t.Fatalf("expected ErrEmptyAssignment got %v", err)
	}
	// Busy blocks carry no subject but still need a faculty.
	busy := TimeSlot{ID: "s2", Day: Monday, Period: 1, FacultyIDs: []string{"f1"}, Type: Busy, Duration: 1}
	if err := busy.Validate(); err != nil {
		t.Fatalf("busy slot should be valid: %v", err)
	}
	busy.FacultyIDs = nil
	if err := busy.Validate(); !errors.Is(err, ErrEmptyAssignment) {
		t.Fatalf("expected ErrEmptyAssignment got %v", err)
	}
}

func TestScheduleClone(t *testing.T) {
	s := Schedule{
		ID:        "sch1",
		Subjects:  []Subject{{ID: "sub1", TheoryCount: 2}},
		TimeSlots: []TimeSlot{{ID: "s1", Day: Monday, Period: 1, SubjectID: "sub1", FacultyIDs: []string{"f1"}, Type: Theory, Duration: 1}},
	}
	c := s.Clone()
	c.TimeSlots[0].FacultyIDs[0] = "f2"
	c.Subjects[0].TheoryCount = 9
	if s.TimeSlots[0].FacultyIDs[0] != "f1" {
		t.Fatalf("clone shares faculty slice")
	}
	if s.Subjects[0].TheoryCount != 2 {
		t.Fatalf("clone shares subject slice")
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("wednesday")
	if err != nil || d != Wednesday {
		t.Fatalf("expected wednesday got %v %v", d, err)
	}
	if _, err := ParseDay("sunday"); err == nil {
		t.Fatalf("sunday is not part of the teaching week")
	}
}

func TestPeriodValidate(t *testing.T) {
	p := Period{ID: 1, Label: "I", StartMinutes: 8 * 60, EndMinutes: 9 * 60}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.EndMinutes = p.StartMinutes
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for empty interval")
	}
	p = Period{ID: SentinelPeriodID, StartMinutes: 0, EndMinutes: 60}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for reserved id")
	}
}
