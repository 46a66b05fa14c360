// Package export renders a schedule's weekly sessions for use outside the
// service, as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/timegridhq/timegrid/core/model"
	"github.com/timegridhq/timegrid/core/timetable"
	"github.com/timegridhq/timegrid/core/timeutil"
)

// Entry is one placed session flattened for export.
type Entry struct {
	Day         model.Day `json:"day"`
	PeriodLabel string    `json:"period_label"`
	TimeRange   string    `json:"time_range"`
	SubjectCode string    `json:"subject_code"`
	SubjectName string    `json:"subject_name"`
	Faculties   string    `json:"faculties"`
	Type        string    `json:"type"`
	Duration    int       `json:"duration"`
}

// Entries flattens a schedule's sessions in week order, then period order.
func Entries(s model.Schedule) []Entry {
	table := timetable.Table(s.Periods)
	dayIndex := make(map[model.Day]int, len(model.Week()))
	for i, d := range model.Week() {
		dayIndex[d] = i
	}

	slots := append([]model.TimeSlot(nil), s.TimeSlots...)
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return dayIndex[slots[i].Day] < dayIndex[slots[j].Day]
		}
		return table.IndexOf(slots[i].Period) < table.IndexOf(slots[j].Period)
	})

	entries := make([]Entry, 0, len(slots))
	for _, slot := range slots {
		e := Entry{
			Day:      slot.Day,
			Type:     slot.Type.String(),
			Duration: slot.Duration,
		}
		if p, ok := table.ByID(slot.Period); ok {
			e.PeriodLabel = p.Label
			e.TimeRange = timeutil.Format12(p.StartMinutes) + " - " + timeutil.Format12(p.EndMinutes)
		}
		if sub, ok := s.SubjectByID(slot.SubjectID); ok {
			e.SubjectCode = sub.Code
			e.SubjectName = sub.Name
		}
		e.Faculties = facultyList(s, slot.FacultyIDs)
		entries = append(entries, e)
	}
	return entries
}

func facultyList(s model.Schedule, ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if f, ok := s.FacultyByID(id); ok && f.Initials != "" {
			names = append(names, f.Initials)
			continue
		}
		names = append(names, id)
	}
	return strings.Join(names, ", ")
}

// WriteJSON writes the schedule's sessions to w in JSON format.
func WriteJSON(w io.Writer, s model.Schedule) error {
	enc := json.NewEncoder(w)
	return enc.Encode(Entries(s))
}

// WriteCSV writes the schedule's sessions to w in CSV format.
func WriteCSV(w io.Writer, s model.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "period", "time", "subject_code", "subject", "faculties", "type", "duration"}); err != nil {
		return err
	}
	for _, e := range Entries(s) {
		rec := []string{
			e.Day.String(),
			e.PeriodLabel,
			e.TimeRange,
			e.SubjectCode,
			e.SubjectName,
			e.Faculties,
			e.Type,
			strconv.Itoa(e.Duration),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
