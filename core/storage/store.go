// Package storage defines the persistence boundary of the planner. The core
// hands whole schedule collections to a store and gets them back; what the
// blob looks like on disk (or elsewhere) is the store's business.
package storage

import (
	"context"

	"github.com/timegridhq/timegrid/core/model"
)

// ScheduleStore loads and saves the full schedule collection of a
// department view.
type ScheduleStore interface {
	Load(ctx context.Context) ([]model.Schedule, error)
	Save(ctx context.Context, schedules []model.Schedule) error
}
