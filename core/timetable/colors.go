package timetable

import (
	"sort"
	"strings"
)

// Palette is the fixed ordered set of display colors sessions are mapped
// into. Rendering code treats the names as CSS color keywords.
var Palette = [15]string{
	"tomato",
	"steelblue",
	"mediumseagreen",
	"goldenrod",
	"orchid",
	"slateblue",
	"coral",
	"cadetblue",
	"olivedrab",
	"palevioletred",
	"darkkhaki",
	"teal",
	"indianred",
	"cornflowerblue",
	"rosybrown",
}

// ColorFor deterministically maps a subject and its faculty set to a
// palette entry. Two sessions with the same subject and the same set of
// faculties always get the same color; the faculty list order does not
// matter. Collisions between different subjects are accepted, the only
// guarantee is stability.
func ColorFor(subjectID string, facultyIDs []string) string {
	sorted := append([]string(nil), facultyIDs...)
	sort.Strings(sorted)
	key := subjectID + ":" + strings.Join(sorted, "-")

	var hash int32
	for _, b := range []byte(key) {
		hash = hash*31 + int32(b)
	}
	// Widen before negating so math.MinInt32 cannot stay negative.
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return Palette[abs%int64(len(Palette))]
}
