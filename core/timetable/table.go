package timetable

import (
	"fmt"

	"github.com/timegridhq/timegrid/core/model"
)

// Table is an ordered period sequence. Position in the slice is the only
// source of time adjacency; period ids are stable handles and nothing more.
type Table []model.Period

// IndexOf returns the position of the period with the given id, or -1.
func (t Table) IndexOf(id int) int {
	for i, p := range t {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ByID resolves a period by id.
func (t Table) ByID(id int) (model.Period, bool) {
	if i := t.IndexOf(id); i >= 0 {
		return t[i], true
	}
	return model.Period{}, false
}

// NextID returns max(existing ids)+1, never a fill-in of a gap. The planner
// additionally keeps a high-water mark so deleting the highest period does
// not hand its id back out.
func (t Table) NextID() int {
	next := model.SentinelPeriodID + 1
	for _, p := range t {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// Add appends a new period and returns it. The new interval must not start
// before the last period does, since the table is ordered by start time and
// insertion only happens at the append position.
func (t *Table) Add(label string, startMinutes, endMinutes int, isBreak bool) (model.Period, error) {
	p := model.Period{
		ID:           t.NextID(),
		Label:        label,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		IsBreak:      isBreak,
	}
	if err := p.Validate(); err != nil {
		return model.Period{}, err
	}
	if n := len(*t); n > 0 && startMinutes < (*t)[n-1].StartMinutes {
		return model.Period{}, fmt.Errorf("period %q starts before the last period in the table", label)
	}
	*t = append(*t, p)
	return p, nil
}

// PeriodPatch carries the fields of an update; nil fields are left as-is.
type PeriodPatch struct {
	Label        *string
	StartMinutes *int
	EndMinutes   *int
	IsBreak      *bool
}

// Update applies the patch to the period with the given id.
func (t Table) Update(id int, patch PeriodPatch) (model.Period, error) {
	i := t.IndexOf(id)
	if i < 0 {
		return model.Period{}, ErrUnknownPeriod
	}
	p := t[i]
	if patch.Label != nil {
		p.Label = *patch.Label
	}
	if patch.StartMinutes != nil {
		p.StartMinutes = *patch.StartMinutes
	}
	if patch.EndMinutes != nil {
		p.EndMinutes = *patch.EndMinutes
	}
	if patch.IsBreak != nil {
		p.IsBreak = *patch.IsBreak
	}
	if err := p.Validate(); err != nil {
		return model.Period{}, err
	}
	// Ordering is checked before committing so a rejected patch leaves the
	// table untouched.
	if i > 0 && p.StartMinutes < t[i-1].StartMinutes {
		return model.Period{}, fmt.Errorf("period %d out of order", id)
	}
	if i < len(t)-1 && t[i+1].StartMinutes < p.StartMinutes {
		return model.Period{}, fmt.Errorf("period %d out of order", id)
	}
	t[i] = p
	return p, nil
}

// Delete removes the period with the given id. Cascading removal of the
// sessions starting at it is the planner's job, not the table's.
func (t *Table) Delete(id int) error {
	i := t.IndexOf(id)
	if i < 0 {
		return ErrUnknownPeriod
	}
	*t = append((*t)[:i], (*t)[i+1:]...)
	return nil
}

// Validate checks table-wide invariants: valid periods, unique ids and
// ascending start times.
func (t Table) Validate() error {
	seen := make(map[int]struct{}, len(t))
	for i, p := range t {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("period %d: %w", p.ID, err)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate period id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if i > 0 && p.StartMinutes < t[i-1].StartMinutes {
			return fmt.Errorf("period %d out of order", p.ID)
		}
	}
	return nil
}
