package timetable

import "testing"

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if len(cfg.Days) != 6 {
		t.Fatalf("expected six-day week, got %v", cfg.Days)
	}
	if cfg.AllowBreakSkip {
		t.Fatalf("strict break policy is the default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestConfigRejectsUnknownDay(t *testing.T) {
	cfg := Config{Days: []string{"monday", "funday"}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected rejection of unknown day")
	}
}
