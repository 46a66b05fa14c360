package timetable

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timegridhq/timegrid/core/events"
	"github.com/timegridhq/timegrid/core/history"
	"github.com/timegridhq/timegrid/core/logger"
	"github.com/timegridhq/timegrid/core/metrics"
	"github.com/timegridhq/timegrid/core/model"
	"github.com/timegridhq/timegrid/internal/eventbus"
)

// Planner owns the schedule collection of a department view and applies
// edit transactions to it. Every mutation is validate-then-commit: a
// rejected edit leaves the collection untouched, and a successful one swaps
// in a fresh copy of the edited schedule so concurrent readers never see a
// half-applied edit.
//
// The planner never schedules anything on its own. Quota overflow and
// faculty conflicts are detected and reported as warnings on successful
// placements; resolution is the caller's decision.
type Planner struct {
	cfg       Config
	log       logger.Logger
	sink      metrics.EditSink
	bus       eventbus.EventBus
	store     history.Store
	mu        sync.Mutex
	schedules []model.Schedule
	// nextPeriodID is a high-water mark: deleting the highest period does
	// not hand its id back out.
	nextPeriodID int
}

// NewPlanner validates the initial schedule collection and returns a
// planner over it. The sink, bus and store may be nil.
func NewPlanner(cfg Config, schedules []model.Schedule, log logger.Logger, sink metrics.EditSink, bus eventbus.EventBus, store history.Store) (*Planner, error) {
	if log == nil {
		return nil, fmt.Errorf("timetable: nil logger provided to NewPlanner")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if store == nil {
		store = history.NopStore{}
	}
	owned := make([]model.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if err := validateSchedule(s); err != nil {
			return nil, fmt.Errorf("schedule %s: %w", s.ID, err)
		}
		owned = append(owned, s.Clone())
	}
	p := &Planner{cfg: cfg, log: log, sink: sink, bus: bus, store: store, schedules: owned}
	p.nextPeriodID = p.maxNextID()
	return p, nil
}

func (p *Planner) maxNextID() int {
	next := model.SentinelPeriodID + 1
	for _, s := range p.schedules {
		if n := Table(s.Periods).NextID(); n > next {
			next = n
		}
	}
	return next
}

func validateSchedule(s model.Schedule) error {
	if s.ID == "" {
		return fmt.Errorf("schedule id is required")
	}
	if err := Table(s.Periods).Validate(); err != nil {
		return err
	}
	for _, slot := range s.TimeSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("slot %s: %w", slot.ID, err)
		}
	}
	return nil
}

// Config returns the planner configuration after defaulting.
func (p *Planner) Config() Config { return p.cfg }

// Schedules returns a deep copy of the current collection.
func (p *Planner) Schedules() []model.Schedule {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Schedule, len(p.schedules))
	for i, s := range p.schedules {
		out[i] = s.Clone()
	}
	return out
}

// ScheduleByID returns a deep copy of one schedule.
func (p *Planner) ScheduleByID(id string) (model.Schedule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(id)
	if i < 0 {
		return model.Schedule{}, ErrUnknownSchedule
	}
	return p.schedules[i].Clone(), nil
}

// AddSchedule adds a schedule to the department view.
func (p *Planner) AddSchedule(s model.Schedule) error {
	if err := validateSchedule(s); err != nil {
		return err
	}
	p.mu.Lock()
	if p.indexOf(s.ID) >= 0 {
		p.mu.Unlock()
		return fmt.Errorf("schedule %s already exists", s.ID)
	}
	p.schedules = append(p.schedules, s.Clone())
	if n := Table(s.Periods).NextID(); n > p.nextPeriodID {
		p.nextPeriodID = n
	}
	p.mu.Unlock()

	p.publish(events.ScheduleAdded{ScheduleID: s.ID, Time: time.Now().UTC()})
	p.recordEdit(metrics.EditScheduleAdded, s.ID, "", true)
	return nil
}

// PlacementRequest describes one session placement or edit. A blank SlotID
// means a new session; otherwise the identified session is replaced.
type PlacementRequest struct {
	ScheduleID string
	SlotID     string
	Day        model.Day
	PeriodID   int
	Duration   int
	SubjectID  string
	FacultyIDs []string
	Type       model.SlotType
}

// QuotaWarning reports a subject quota exceeded by a successful placement.
type QuotaWarning struct {
	SubjectID string         `json:"subject_id"`
	Type      model.SlotType `json:"type"`
	Used      int            `json:"used"`
	Quota     int            `json:"quota"`
}

// PlacementResult is returned for a committed placement together with the
// advisory warnings the caller should surface.
type PlacementResult struct {
	Slot      model.TimeSlot `json:"slot"`
	Covered   []int          `json:"covered_periods"`
	Quota     *QuotaWarning  `json:"quota_warning,omitempty"`
	Conflicts []Conflict     `json:"conflicts,omitempty"`
}

// PlaceSlot validates and commits a session placement. Validation
// rejections (ErrInvalidSpan, ErrOccupied, the unknown-reference errors and
// the slot's own validation) leave the schedule untouched. Quota overflow
// and faculty conflicts never reject; they come back as warnings on the
// result.
func (p *Planner) PlaceSlot(req PlacementRequest) (PlacementResult, error) {
	p.mu.Lock()
	res, err := p.placeLocked(req)
	p.mu.Unlock()

	accepted := err == nil
	p.recordEdit(metrics.EditPlace, req.ScheduleID, req.Type.String(), accepted)
	p.appendHistory(history.Record{
		Timestamp:  time.Now().UTC(),
		Kind:       string(metrics.EditPlace),
		ScheduleID: req.ScheduleID,
		SlotID:     res.Slot.ID,
		Day:        req.Day,
		PeriodID:   req.PeriodID,
		Accepted:   accepted,
		Error:      errText(err),
		Warnings:   len(res.Conflicts),
	})
	if err != nil {
		return PlacementResult{}, err
	}

	for _, c := range res.Conflicts {
		if serr := p.sink.RecordConflictWarning(metrics.ConflictEvent{
			ScheduleID:      req.ScheduleID,
			OtherScheduleID: c.ScheduleID,
			FacultyID:       c.FacultyID,
			Time:            time.Now().UTC(),
		}); serr != nil {
			p.log.Errorf("record conflict warning: %v", serr)
		}
	}
	if q := res.Quota; q != nil {
		if serr := p.sink.RecordQuotaWarning(metrics.QuotaEvent{
			ScheduleID: req.ScheduleID,
			SubjectID:  q.SubjectID,
			SlotType:   q.Type.String(),
			Used:       q.Used,
			Quota:      q.Quota,
			Time:       time.Now().UTC(),
		}); serr != nil {
			p.log.Errorf("record quota warning: %v", serr)
		}
	}
	p.publish(events.SlotPlaced{ScheduleID: req.ScheduleID, Slot: res.Slot, Covered: res.Covered, Time: time.Now().UTC()})
	p.log.Debugw("slot placed", map[string]any{
		"schedule":  req.ScheduleID,
		"slot":      res.Slot.ID,
		"day":       req.Day.String(),
		"period":    req.PeriodID,
		"duration":  req.Duration,
		"conflicts": len(res.Conflicts),
	})
	return res, nil
}

func (p *Planner) placeLocked(req PlacementRequest) (PlacementResult, error) {
	i := p.indexOf(req.ScheduleID)
	if i < 0 {
		return PlacementResult{}, ErrUnknownSchedule
	}
	sched := p.schedules[i]

	slot := model.TimeSlot{
		ID:         req.SlotID,
		Day:        req.Day,
		Period:     req.PeriodID,
		SubjectID:  req.SubjectID,
		FacultyIDs: append([]string(nil), req.FacultyIDs...),
		Type:       req.Type,
		Duration:   req.Duration,
	}
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	if err := slot.Validate(); err != nil {
		return PlacementResult{}, err
	}
	if !p.cfg.DayAllowed(req.Day) {
		return PlacementResult{}, fmt.Errorf("day %s is not part of the configured week", req.Day)
	}
	if slot.Type != model.Busy {
		if _, ok := sched.SubjectByID(slot.SubjectID); !ok {
			return PlacementResult{}, fmt.Errorf("%w: %s", ErrUnknownSubject, slot.SubjectID)
		}
	}
	for _, fid := range slot.FacultyIDs {
		if _, ok := sched.FacultyByID(fid); !ok {
			return PlacementResult{}, fmt.Errorf("%w: %s", ErrUnknownFaculty, fid)
		}
	}
	if req.SlotID != "" {
		if _, ok := sched.SlotByID(req.SlotID); !ok {
			return PlacementResult{}, fmt.Errorf("%w: %s", ErrUnknownSlot, req.SlotID)
		}
	}

	covered, err := Table(sched.Periods).ResolveSpan(slot.Period, slot.Duration, p.cfg.AllowBreakSkip)
	if err != nil {
		return PlacementResult{}, err
	}
	grid := NewGrid(sched, p.cfg.AllowBreakSkip)
	if !grid.Free(slot.Day, covered, slot.ID) {
		return PlacementResult{}, fmt.Errorf("%w: day %s", ErrOccupied, slot.Day)
	}

	res := PlacementResult{Slot: slot, Covered: covered}
	if sub, ok := sched.SubjectByID(slot.SubjectID); ok && slot.Type != model.Busy {
		usage := SubjectUsage(sched, slot.SubjectID, slot.ID)
		used := usage.Theory + slot.Duration
		quota := sub.TheoryCount
		if slot.Type == model.Practical {
			used = usage.Practical + slot.Duration
			quota = sub.PracticalCount
		}
		if used > quota {
			res.Quota = &QuotaWarning{SubjectID: sub.ID, Type: slot.Type, Used: used, Quota: quota}
		}
	}
	for _, fid := range slot.FacultyIDs {
		for _, pid := range covered {
			c := FindConflict(p.schedules, sched.ID, slot.Day, pid, fid, p.cfg.AllowBreakSkip)
			if c == nil {
				continue
			}
			if !containsConflict(res.Conflicts, *c) {
				res.Conflicts = append(res.Conflicts, *c)
			}
		}
	}

	next := sched.Clone()
	replaced := false
	for j, existing := range next.TimeSlots {
		if existing.ID == slot.ID {
			next.TimeSlots[j] = slot
			replaced = true
			break
		}
	}
	if !replaced {
		next.TimeSlots = append(next.TimeSlots, slot)
	}
	next.Touch()
	p.swap(i, next)
	return res, nil
}

// RemoveSlot deletes a session. Removing a multi-period session frees every
// period its span covered.
func (p *Planner) RemoveSlot(scheduleID, slotID string) error {
	p.mu.Lock()
	err := p.removeLocked(scheduleID, slotID)
	p.mu.Unlock()

	accepted := err == nil
	p.recordEdit(metrics.EditRemove, scheduleID, "", accepted)
	p.appendHistory(history.Record{
		Timestamp:  time.Now().UTC(),
		Kind:       string(metrics.EditRemove),
		ScheduleID: scheduleID,
		SlotID:     slotID,
		Accepted:   accepted,
		Error:      errText(err),
	})
	if err != nil {
		return err
	}
	p.publish(events.SlotRemoved{ScheduleID: scheduleID, SlotID: slotID, Time: time.Now().UTC()})
	return nil
}

func (p *Planner) removeLocked(scheduleID, slotID string) error {
	i := p.indexOf(scheduleID)
	if i < 0 {
		return ErrUnknownSchedule
	}
	sched := p.schedules[i]
	if _, ok := sched.SlotByID(slotID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	next := sched.Clone()
	kept := next.TimeSlots[:0]
	for _, slot := range next.TimeSlots {
		if slot.ID != slotID {
			kept = append(kept, slot)
		}
	}
	next.TimeSlots = kept
	next.Touch()
	p.swap(i, next)
	return nil
}

// Usage reports the committed hours of a subject, excluding excludeSlotID
// when the caller is editing an existing session.
func (p *Planner) Usage(scheduleID, subjectID, excludeSlotID string) (Usage, model.Subject, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(scheduleID)
	if i < 0 {
		return Usage{}, model.Subject{}, ErrUnknownSchedule
	}
	sub, ok := p.schedules[i].SubjectByID(subjectID)
	if !ok {
		return Usage{}, model.Subject{}, fmt.Errorf("%w: %s", ErrUnknownSubject, subjectID)
	}
	return SubjectUsage(p.schedules[i], subjectID, excludeSlotID), sub, nil
}

// Conflict reports whether the faculty is committed elsewhere at the given
// day and period, excluding the schedule being edited.
func (p *Planner) Conflict(exceptScheduleID string, day model.Day, periodID int, facultyID string) *Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return FindConflict(p.schedules, exceptScheduleID, day, periodID, facultyID, p.cfg.AllowBreakSkip)
}

// SlotColor resolves the display color for a session: the subject's manual
// override when present, otherwise the deterministic palette mapping.
func (p *Planner) SlotColor(scheduleID, slotID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.indexOf(scheduleID)
	if i < 0 {
		return "", ErrUnknownSchedule
	}
	slot, ok := p.schedules[i].SlotByID(slotID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}
	if sub, ok := p.schedules[i].SubjectByID(slot.SubjectID); ok && sub.Color != "" {
		return sub.Color, nil
	}
	return ColorFor(slot.SubjectID, slot.FacultyIDs), nil
}

func (p *Planner) indexOf(scheduleID string) int {
	for i, s := range p.schedules {
		if s.ID == scheduleID {
			return i
		}
	}
	return -1
}

// swap installs the edited schedule copy. Callers hold the mutex.
func (p *Planner) swap(i int, next model.Schedule) {
	updated := make([]model.Schedule, len(p.schedules))
	copy(updated, p.schedules)
	updated[i] = next
	p.schedules = updated
}

func (p *Planner) publish(ev eventbus.Event) {
	if p.bus != nil {
		p.bus.Publish(ev)
	}
}

func (p *Planner) recordEdit(kind metrics.EditKind, scheduleID, slotType string, accepted bool) {
	if err := p.sink.RecordEdit(metrics.EditEvent{
		Kind:       kind,
		ScheduleID: scheduleID,
		SlotType:   slotType,
		Accepted:   accepted,
		Time:       time.Now().UTC(),
	}); err != nil {
		p.log.Errorf("record edit: %v", err)
	}
}

func (p *Planner) appendHistory(rec history.Record) {
	if err := p.store.Append(context.Background(), rec); err != nil {
		p.log.Errorf("append history: %v", err)
	}
}

func containsConflict(list []Conflict, c Conflict) bool {
	for _, x := range list {
		if x.SlotID == c.SlotID && x.FacultyID == c.FacultyID {
			return true
		}
	}
	return false
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
