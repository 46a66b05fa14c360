package model

import "fmt"

// Day identifies a weekday column of the timetable grid. The teaching week
// runs Monday through Saturday.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
)

// Week lists the days in grid order.
func Week() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// ParseDay converts a string into a Day.
func ParseDay(s string) (Day, error) {
	d := Day(s)
	for _, w := range Week() {
		if d == w {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// String returns the lowercase day name.
func (d Day) String() string { return string(d) }

// Valid reports whether the day is part of the teaching week.
func (d Day) Valid() bool {
	_, err := ParseDay(string(d))
	return err == nil
}
