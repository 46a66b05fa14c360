package timetable

import (
	"errors"
	"testing"
)

func TestResolveSpanSingle(t *testing.T) {
	table := rmTable()
	covered, err := table.ResolveSpan(1, 1, false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(covered) != 1 || covered[0] != 1 {
		t.Fatalf("expected [1] got %v", covered)
	}
}

func TestResolveSpanContiguous(t *testing.T) {
	table := rmTable()
	covered, err := table.ResolveSpan(3, 2, false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(covered) != 2 || covered[0] != 3 || covered[1] != 4 {
		t.Fatalf("expected [3 4] got %v", covered)
	}
}

func TestResolveSpanStrictRejectsBreak(t *testing.T) {
	table := rmTable()
	// Period 1 is immediately followed by the recess.
	if _, err := table.ResolveSpan(1, 2, false); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan got %v", err)
	}
}

func TestResolveSpanSkipPolicy(t *testing.T) {
	table := rmTable()
	covered, err := table.ResolveSpan(1, 2, true)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// The recess is stepped over but never claimed.
	if len(covered) != 2 || covered[0] != 1 || covered[1] != 3 {
		t.Fatalf("expected [1 3] got %v", covered)
	}
}

func TestResolveSpanRunsOffTable(t *testing.T) {
	table := rmTable()
	if _, err := table.ResolveSpan(4, 2, false); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan got %v", err)
	}
	if _, err := table.ResolveSpan(3, 5, true); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan got %v", err)
	}
}

func TestResolveSpanBreakStart(t *testing.T) {
	table := rmTable()
	if _, err := table.ResolveSpan(2, 1, false); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("a break is never a valid start, got %v", err)
	}
	if _, err := table.ResolveSpan(2, 1, true); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("break start must fail under both policies, got %v", err)
	}
}

func TestResolveSpanUnknownPeriod(t *testing.T) {
	table := rmTable()
	if _, err := table.ResolveSpan(42, 1, false); !errors.Is(err, ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod got %v", err)
	}
}
