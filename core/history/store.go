package history

import (
	"context"
	"time"

	"github.com/timegridhq/timegrid/core/model"
)

// Record captures one edit transaction against a schedule, accepted or
// rejected.
type Record struct {
	Timestamp  time.Time `json:"timestamp"`
	Kind       string    `json:"kind"`
	ScheduleID string    `json:"schedule_id"`
	SlotID     string    `json:"slot_id,omitempty"`
	Day        model.Day `json:"day,omitempty"`
	PeriodID   int       `json:"period_id,omitempty"`
	Accepted   bool      `json:"accepted"`
	Error      string    `json:"error,omitempty"`
	Warnings   int       `json:"warnings,omitempty"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start      time.Time
	End        time.Time
	ScheduleID string
	Kind       string
}

// Store persists edit records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore discards every record.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error { return nil }

func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }

func (NopStore) Close() error { return nil }
