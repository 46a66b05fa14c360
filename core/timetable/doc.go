package timetable

// Package timetable implements the scheduling core: the shared period
// table, the multi-period span allocator, per-schedule slot grids, the
// subject hour-quota tracker, the cross-schedule faculty-conflict detector
// and the deterministic color assignment. The Planner ties them together
// into validate-then-commit edit transactions over a department's schedule
// collection.
