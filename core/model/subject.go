package model

import "fmt"

// Subject is a course taught in a schedule. TheoryCount and PracticalCount
// are the total hours required for the term; the quota tracker measures
// placed sessions against them.
type Subject struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	TheoryCount    int    `json:"theory_count"`
	PracticalCount int    `json:"practical_count"`
	Color          string `json:"color,omitempty"` // optional manual override
}

// Validate checks the subject configuration.
func (s Subject) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("subject id is required")
	}
	if s.TheoryCount < 0 || s.PracticalCount < 0 {
		return fmt.Errorf("hour quotas must not be negative")
	}
	return nil
}
