package timetable

import "fmt"

// ResolveSpan returns the ids of the periods a session starting at
// startPeriodID with the given duration would cover, in table order. Only
// teaching periods count toward the duration and only teaching periods are
// claimed.
//
// Under the strict policy (allowBreakSkip false) the walk fails with
// ErrInvalidSpan as soon as a break sits inside the requested span. With
// allowBreakSkip the walk steps over breaks without claiming them. Either
// way the span fails if the table ends before the duration is satisfied.
func (t Table) ResolveSpan(startPeriodID, duration int, allowBreakSkip bool) ([]int, error) {
	if duration < 1 {
		return nil, fmt.Errorf("%w: duration %d", ErrInvalidSpan, duration)
	}
	start := t.IndexOf(startPeriodID)
	if start < 0 {
		return nil, ErrUnknownPeriod
	}
	if t[start].IsBreak {
		return nil, fmt.Errorf("%w: period %d is a break", ErrInvalidSpan, startPeriodID)
	}

	covered := make([]int, 0, duration)
	for i := start; i < len(t); i++ {
		if t[i].IsBreak {
			if !allowBreakSkip {
				return nil, fmt.Errorf("%w: span crosses break %d", ErrInvalidSpan, t[i].ID)
			}
			continue
		}
		covered = append(covered, t[i].ID)
		if len(covered) == duration {
			return covered, nil
		}
	}
	return nil, fmt.Errorf("%w: table ends after %d of %d periods", ErrInvalidSpan, len(covered), duration)
}
