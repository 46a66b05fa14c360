package model

import "fmt"

// SentinelPeriodID marks a period that has not been committed to a table yet.
// It is never assigned to a stored period.
const SentinelPeriodID = 0

// Period is one named time interval of the weekly grid, either a teaching
// slot or a break. The id is stable for the lifetime of the table and is
// never reused after deletion; ordering is always resolved through the table
// position, never through id adjacency.
type Period struct {
	ID           int    `json:"id"`
	Label        string `json:"label"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
	IsBreak      bool   `json:"is_break"`
}

// Validate checks that the period interval is sound.
func (p Period) Validate() error {
	if p.ID == SentinelPeriodID {
		return fmt.Errorf("period id %d is reserved", SentinelPeriodID)
	}
	if p.StartMinutes < 0 || p.StartMinutes >= 24*60 {
		return fmt.Errorf("start %d out of range", p.StartMinutes)
	}
	if p.EndMinutes <= p.StartMinutes {
		return fmt.Errorf("end %d must be after start %d", p.EndMinutes, p.StartMinutes)
	}
	return nil
}
