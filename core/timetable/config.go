package timetable

import (
	"fmt"

	"github.com/timegridhq/timegrid/core/model"
)

// Config defines planner behaviour loaded from configuration.
type Config struct {
	// AllowBreakSkip lets a multi-period span hop over breaks until enough
	// teaching periods are collected. The default is the strict policy: any
	// break inside the requested span rejects the placement. Whichever value
	// is configured applies to every placement uniformly.
	AllowBreakSkip bool `json:"allow_break_skip"`
	// Days restricts the teaching week. Empty means Monday through Saturday.
	Days []string `json:"days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if len(c.Days) == 0 {
		for _, d := range model.Week() {
			c.Days = append(c.Days, d.String())
		}
	}
}

// Validate checks that every configured day is part of the teaching week.
func (c Config) Validate() error {
	for _, d := range c.Days {
		if _, err := model.ParseDay(d); err != nil {
			return fmt.Errorf("planner days: %w", err)
		}
	}
	return nil
}

// DayAllowed reports whether the day is part of the configured week.
func (c Config) DayAllowed(day model.Day) bool {
	for _, d := range c.Days {
		if d == day.String() {
			return true
		}
	}
	return false
}
