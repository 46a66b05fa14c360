package model

import "fmt"

// Faculty is a teaching staff member. Faculties live in a registry shared by
// every schedule of a department view; schedules reference them by id only.
type Faculty struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"` // display only, at most three characters
}

// Validate checks the registry entry.
func (f Faculty) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("faculty id is required")
	}
	if len(f.Initials) > 3 {
		return fmt.Errorf("initials %q exceed three characters", f.Initials)
	}
	return nil
}
