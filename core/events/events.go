// Package events defines the payloads published on the internal bus and
// forwarded to external subscribers whenever a timetable changes.
package events

import (
	"time"

	"github.com/timegridhq/timegrid/core/model"
)

// SlotPlaced is published after a session is created or edited.
type SlotPlaced struct {
	ScheduleID string         `json:"schedule_id"`
	Slot       model.TimeSlot `json:"slot"`
	Covered    []int          `json:"covered_periods"`
	Time       time.Time      `json:"time"`
}

// SlotRemoved is published after a session is deleted.
type SlotRemoved struct {
	ScheduleID string    `json:"schedule_id"`
	SlotID     string    `json:"slot_id"`
	Time       time.Time `json:"time"`
}

// PeriodAdded is published after a period is appended to the shared table.
type PeriodAdded struct {
	Period model.Period `json:"period"`
	Time   time.Time    `json:"time"`
}

// PeriodUpdated is published after a period edit.
type PeriodUpdated struct {
	Period model.Period `json:"period"`
	Time   time.Time    `json:"time"`
}

// PeriodDeleted is published after a period is removed. RemovedSlots maps
// schedule ids to the sessions the cascade deleted with it.
type PeriodDeleted struct {
	PeriodID     int                 `json:"period_id"`
	RemovedSlots map[string][]string `json:"removed_slots"`
	Time         time.Time           `json:"time"`
}

// ScheduleAdded is published when a schedule joins the department view.
type ScheduleAdded struct {
	ScheduleID string    `json:"schedule_id"`
	Time       time.Time `json:"time"`
}
