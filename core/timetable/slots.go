package timetable

import "github.com/timegridhq/timegrid/core/model"

// Grid indexes one schedule's sessions by day and period for O(1) lookups.
// A period id resolves either to the session starting there or, through the
// coverage index, to the multi-period session spanning across it.
type Grid struct {
	starts   map[model.Day]map[int]model.TimeSlot
	coverage map[model.Day]map[int]model.TimeSlot
}

// NewGrid builds the index for a schedule. Slots whose span can no longer be
// resolved against the table are indexed by their start only; the planner
// removes them when their start period disappears.
func NewGrid(s model.Schedule, allowBreakSkip bool) *Grid {
	g := &Grid{
		starts:   make(map[model.Day]map[int]model.TimeSlot),
		coverage: make(map[model.Day]map[int]model.TimeSlot),
	}
	table := Table(s.Periods)
	for _, slot := range s.TimeSlots {
		if day := g.starts[slot.Day]; day == nil {
			g.starts[slot.Day] = make(map[int]model.TimeSlot)
			g.coverage[slot.Day] = make(map[int]model.TimeSlot)
		}
		g.starts[slot.Day][slot.Period] = slot
		covered, err := table.ResolveSpan(slot.Period, slot.Duration, allowBreakSkip)
		if err != nil {
			continue
		}
		for _, id := range covered {
			if id == slot.Period {
				continue
			}
			g.coverage[slot.Day][id] = slot
		}
	}
	return g
}

// SlotAt returns the session starting exactly at (day, periodID).
func (g *Grid) SlotAt(day model.Day, periodID int) (model.TimeSlot, bool) {
	slot, ok := g.starts[day][periodID]
	return slot, ok
}

// Covering returns the session occupying (day, periodID), whether it starts
// there or spans across it.
func (g *Grid) Covering(day model.Day, periodID int) (model.TimeSlot, bool) {
	if slot, ok := g.starts[day][periodID]; ok {
		return slot, true
	}
	slot, ok := g.coverage[day][periodID]
	return slot, ok
}

// Free reports whether every given period id on the day is unoccupied,
// ignoring the session with exceptSlotID so an edit does not collide with
// itself.
func (g *Grid) Free(day model.Day, periodIDs []int, exceptSlotID string) bool {
	for _, id := range periodIDs {
		if slot, ok := g.Covering(day, id); ok && slot.ID != exceptSlotID {
			return false
		}
	}
	return true
}
