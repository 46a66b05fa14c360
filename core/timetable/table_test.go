package timetable

import (
	"errors"
	"testing"

	"github.com/timegridhq/timegrid/core/model"
)

func rmTable() Table {
	return Table{
		{ID: 1, Label: "I", StartMinutes: 8 * 60, EndMinutes: 9 * 60},
		{ID: 2, Label: "Recess", StartMinutes: 9 * 60, EndMinutes: 9*60 + 30, IsBreak: true},
		{ID: 3, Label: "II", StartMinutes: 9*60 + 30, EndMinutes: 10*60 + 30},
		{ID: 4, Label: "III", StartMinutes: 10*60 + 30, EndMinutes: 11*60 + 30},
	}
}

func TestTableAdd(t *testing.T) {
	table := rmTable()
	p, err := table.Add("IV", 11*60+30, 12*60+30, false)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.ID != 5 {
		t.Fatalf("expected fresh id 5 got %d", p.ID)
	}
	if len(table) != 5 || table[4].ID != 5 {
		t.Fatalf("period not appended")
	}
}

func TestTableAddRejectsOutOfOrder(t *testing.T) {
	table := rmTable()
	if _, err := table.Add("early", 7*60, 8*60, false); err == nil {
		t.Fatalf("expected ordering rejection")
	}
}

func TestTableUpdate(t *testing.T) {
	table := rmTable()
	label := "Lunch"
	brk := true
	p, err := table.Update(3, PeriodPatch{Label: &label, IsBreak: &brk})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Label != "Lunch" || !p.IsBreak {
		t.Fatalf("patch not applied: %+v", p)
	}
	if got, _ := table.ByID(3); got.Label != "Lunch" {
		t.Fatalf("table not updated")
	}
	if _, err := table.Update(99, PeriodPatch{Label: &label}); !errors.Is(err, ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod got %v", err)
	}
}

func TestTableUpdateRejectsBadInterval(t *testing.T) {
	table := rmTable()
	end := 8 * 60 // before the period's start
	if _, err := table.Update(3, PeriodPatch{EndMinutes: &end}); err == nil {
		t.Fatalf("expected interval rejection")
	}
	// Rejection must leave the period unchanged.
	p, _ := table.ByID(3)
	if p.EndMinutes != 10*60+30 {
		t.Fatalf("period mutated on rejected update")
	}
}

func TestTableUpdateRejectsOutOfOrder(t *testing.T) {
	table := rmTable()
	// Before the predecessor's start.
	early := 7 * 60
	if _, err := table.Update(3, PeriodPatch{StartMinutes: &early}); err == nil {
		t.Fatalf("expected ordering rejection")
	}
	// Past the successor's start.
	late := 10*60 + 40
	end := 11 * 60
	if _, err := table.Update(3, PeriodPatch{StartMinutes: &late, EndMinutes: &end}); err == nil {
		t.Fatalf("expected ordering rejection")
	}
	p, _ := table.ByID(3)
	if p.StartMinutes != 9*60+30 {
		t.Fatalf("period mutated on rejected update")
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("table broken after rejected updates: %v", err)
	}
}

func TestTableDelete(t *testing.T) {
	table := rmTable()
	if err := table.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if table.IndexOf(2) != -1 || len(table) != 3 {
		t.Fatalf("period still present")
	}
	if err := table.Delete(2); !errors.Is(err, ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod got %v", err)
	}
}

func TestTableValidate(t *testing.T) {
	table := rmTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}
	dup := append(Table{}, table...)
	dup = append(dup, model.Period{ID: 1, Label: "dup", StartMinutes: 12 * 60, EndMinutes: 13 * 60})
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected duplicate id rejection")
	}
}
