package timetable

import (
	"fmt"
	"time"

	"github.com/timegridhq/timegrid/core/events"
	"github.com/timegridhq/timegrid/core/history"
	"github.com/timegridhq/timegrid/core/metrics"
	"github.com/timegridhq/timegrid/core/model"
)

// Period operations act on the department's shared period structure: every
// schedule in the view gets the same change, so the grids stay aligned. Each
// schedule still owns its own copy of the table.

// AddPeriod appends a period to every schedule's table. The fresh id is
// max(existing)+1 across the whole view, so ids stay unique even for tables
// that have diverged.
func (p *Planner) AddPeriod(label string, startMinutes, endMinutes int, isBreak bool) (model.Period, error) {
	p.mu.Lock()
	period, err := p.addPeriodLocked(label, startMinutes, endMinutes, isBreak)
	p.mu.Unlock()

	accepted := err == nil
	p.recordEdit(metrics.EditPeriodAdd, "", "", accepted)
	p.appendHistory(history.Record{
		Timestamp: time.Now().UTC(),
		Kind:      string(metrics.EditPeriodAdd),
		PeriodID:  period.ID,
		Accepted:  accepted,
		Error:     errText(err),
	})
	if err != nil {
		return model.Period{}, err
	}
	p.publish(events.PeriodAdded{Period: period, Time: time.Now().UTC()})
	return period, nil
}

func (p *Planner) addPeriodLocked(label string, startMinutes, endMinutes int, isBreak bool) (model.Period, error) {
	id := p.nextPeriodID
	if n := p.maxNextID(); n > id {
		id = n
	}
	period := model.Period{ID: id, Label: label, StartMinutes: startMinutes, EndMinutes: endMinutes, IsBreak: isBreak}
	if err := period.Validate(); err != nil {
		return model.Period{}, err
	}
	for _, s := range p.schedules {
		if n := len(s.Periods); n > 0 && startMinutes < s.Periods[n-1].StartMinutes {
			return model.Period{}, fmt.Errorf("period %q starts before the end of schedule %s's table", label, s.ID)
		}
	}

	updated := make([]model.Schedule, len(p.schedules))
	for i, s := range p.schedules {
		next := s.Clone()
		next.Periods = append(next.Periods, period)
		next.Touch()
		updated[i] = next
	}
	p.schedules = updated
	p.nextPeriodID = id + 1
	return period, nil
}

// UpdatePeriod patches the period in every schedule that carries it.
func (p *Planner) UpdatePeriod(id int, patch PeriodPatch) (model.Period, error) {
	p.mu.Lock()
	period, err := p.updatePeriodLocked(id, patch)
	p.mu.Unlock()

	accepted := err == nil
	p.recordEdit(metrics.EditPeriodUpdate, "", "", accepted)
	p.appendHistory(history.Record{
		Timestamp: time.Now().UTC(),
		Kind:      string(metrics.EditPeriodUpdate),
		PeriodID:  id,
		Accepted:  accepted,
		Error:     errText(err),
	})
	if err != nil {
		return model.Period{}, err
	}
	p.publish(events.PeriodUpdated{Period: period, Time: time.Now().UTC()})
	return period, nil
}

func (p *Planner) updatePeriodLocked(id int, patch PeriodPatch) (model.Period, error) {
	if id == model.SentinelPeriodID {
		return model.Period{}, ErrUnknownPeriod
	}
	// Validate against copies first so a failure on one schedule leaves
	// every table untouched.
	found := false
	var result model.Period
	updated := make([]model.Schedule, len(p.schedules))
	for i, s := range p.schedules {
		next := s.Clone()
		table := Table(next.Periods)
		if table.IndexOf(id) >= 0 {
			period, err := table.Update(id, patch)
			if err != nil {
				return model.Period{}, err
			}
			found = true
			result = period
			next.Touch()
		}
		updated[i] = next
	}
	if !found {
		return model.Period{}, ErrUnknownPeriod
	}
	p.schedules = updated
	return result, nil
}

// DeletePeriod removes the period from every schedule and cascades: every
// session starting at the deleted period is removed with it, in every
// schedule of the view.
func (p *Planner) DeletePeriod(id int) (map[string][]string, error) {
	p.mu.Lock()
	removed, err := p.deletePeriodLocked(id)
	p.mu.Unlock()

	accepted := err == nil
	p.recordEdit(metrics.EditPeriodDelete, "", "", accepted)
	p.appendHistory(history.Record{
		Timestamp: time.Now().UTC(),
		Kind:      string(metrics.EditPeriodDelete),
		PeriodID:  id,
		Accepted:  accepted,
		Error:     errText(err),
	})
	if err != nil {
		return nil, err
	}
	p.publish(events.PeriodDeleted{PeriodID: id, RemovedSlots: removed, Time: time.Now().UTC()})
	p.log.Infof("period %d deleted, %d schedules affected", id, len(removed))
	return removed, nil
}

func (p *Planner) deletePeriodLocked(id int) (map[string][]string, error) {
	found := false
	removed := make(map[string][]string)
	updated := make([]model.Schedule, len(p.schedules))
	for i, s := range p.schedules {
		next := s.Clone()
		table := Table(next.Periods)
		if table.IndexOf(id) >= 0 {
			found = true
			if err := table.Delete(id); err != nil {
				return nil, err
			}
			next.Periods = table
			kept := next.TimeSlots[:0]
			for _, slot := range next.TimeSlots {
				if slot.Period == id {
					removed[s.ID] = append(removed[s.ID], slot.ID)
					continue
				}
				kept = append(kept, slot)
			}
			next.TimeSlots = kept
			next.Touch()
		}
		updated[i] = next
	}
	if !found {
		return nil, ErrUnknownPeriod
	}
	p.schedules = updated
	return removed, nil
}
