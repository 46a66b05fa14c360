// Package timeutil converts between human time strings and
// minutes-since-midnight, the only representation the scheduling core
// stores.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseTime converts a clock string into minutes since midnight. Accepted
// forms are "H:MM", "HH:MM" and "H:MM AM"/"H:MM PM" (meridiem
// case-insensitive, space optional).
//
// Without a meridiem marker the afternoon-class convention applies: a bare
// single-digit hour between 1 and 6 is read as PM, hour 12 as mid-day, and
// anything else as-is. Zero-padded hours ("01:30") and hours above 12 are
// always canonical 24-hour values, which keeps Format24 output stable under
// reparsing.
func ParseTime(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("empty time string")
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	for _, m := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, m) {
			meridiem = m
			s = strings.TrimSpace(s[:len(s)-2])
			break
		}
	}

	hourText, minText, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time %q", text)
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q", text)
	}
	min, err := strconv.Atoi(minText)
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("malformed minutes in %q", text)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour %d out of range for AM", hour)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour %d out of range for PM", hour)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("hour %d out of range", hour)
		}
		// Afternoon-class heuristic: only for bare single-digit hours.
		if len(hourText) == 1 && hour >= 1 && hour <= 6 {
			hour += 12
		}
	}

	total := hour*60 + min
	if total >= minutesPerDay {
		return 0, fmt.Errorf("time %q past end of day", text)
	}
	return total, nil
}

// Overlaps reports whether the two half-open minute intervals intersect.
// Intervals sharing only an endpoint do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return max(s1, s2) < min(e1, e2)
}

// Format24 renders minutes since midnight as a zero-padded 24-hour string.
// Format24 output reparses to the same value via ParseTime.
func Format24(minutes int) string {
	minutes = clampDay(minutes)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Format12 renders minutes since midnight as a 12-hour string with meridiem.
func Format12(minutes int) string {
	minutes = clampDay(minutes)
	hour := minutes / 60
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minutes%60, meridiem)
}

func clampDay(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes >= minutesPerDay {
		return minutesPerDay - 1
	}
	return minutes
}
