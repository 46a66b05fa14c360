// Package grid exposes read-only HTTP views of the department timetables:
// the weekly grid of a schedule, faculty conflict probes, and the faculty
// load report.
package grid

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/timegridhq/timegrid/core/model"
	"github.com/timegridhq/timegrid/core/stats"
	"github.com/timegridhq/timegrid/core/timetable"
	"github.com/timegridhq/timegrid/core/timeutil"
)

// Cell is one period column of a day row. Empty cells carry only the period
// identity; cells continuing a multi-period session are marked instead of
// repeating the session.
type Cell struct {
	PeriodID    int    `json:"period_id"`
	Label       string `json:"label"`
	TimeRange   string `json:"time_range"`
	IsBreak     bool   `json:"is_break,omitempty"`
	SlotID      string `json:"slot_id,omitempty"`
	SubjectCode string `json:"subject_code,omitempty"`
	Faculties   string `json:"faculties,omitempty"`
	Type        string `json:"type,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Color       string `json:"color,omitempty"`
	Continued   bool   `json:"continued,omitempty"`
}

// Row is one weekday of the grid.
type Row struct {
	Day   model.Day `json:"day"`
	Cells []Cell    `json:"cells"`
}

// View is the rendered weekly grid of one schedule.
type View struct {
	ScheduleID string `json:"schedule_id"`
	Label      string `json:"label"`
	Rows       []Row  `json:"rows"`
}

// NewGridHandler returns an HTTP handler exposing the weekly grid via
// GET /api/grid?schedule=<id>.
func NewGridHandler(planner *timetable.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id := r.URL.Query().Get("schedule")
		if id == "" {
			http.Error(w, "schedule query parameter is required", http.StatusBadRequest)
			return
		}
		s, err := planner.ScheduleByID(id)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, timetable.ErrUnknownSchedule) {
				status = http.StatusNotFound
			}
			http.Error(w, err.Error(), status)
			return
		}
		view := Render(planner, s)
		writeJSON(w, view)
	})
}

// Render builds the grid view of one schedule.
func Render(planner *timetable.Planner, s model.Schedule) View {
	g := timetable.NewGrid(s, planner.Config().AllowBreakSkip)
	view := View{ScheduleID: s.ID, Label: s.Label()}
	for _, day := range model.Week() {
		if !planner.Config().DayAllowed(day) {
			continue
		}
		row := Row{Day: day}
		for _, p := range s.Periods {
			cell := Cell{
				PeriodID:  p.ID,
				Label:     p.Label,
				TimeRange: timeutil.Format12(p.StartMinutes) + " - " + timeutil.Format12(p.EndMinutes),
				IsBreak:   p.IsBreak,
			}
			if slot, ok := g.Covering(day, p.ID); ok && !p.IsBreak {
				cell.SlotID = slot.ID
				cell.Faculties = facultyInitials(s, slot.FacultyIDs)
				cell.Type = slot.Type.String()
				if sub, ok := s.SubjectByID(slot.SubjectID); ok {
					cell.SubjectCode = sub.Code
				}
				if slot.Period == p.ID {
					cell.Duration = slot.Duration
					if color, err := planner.SlotColor(s.ID, slot.ID); err == nil {
						cell.Color = color
					}
				} else {
					cell.Continued = true
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func facultyInitials(s model.Schedule, ids []string) string {
	out := ""
	for _, id := range ids {
		name := id
		if f, ok := s.FacultyByID(id); ok && f.Initials != "" {
			name = f.Initials
		}
		if out != "" {
			out += ", "
		}
		out += name
	}
	return out
}

// NewConflictHandler returns an HTTP handler probing faculty availability via
// GET /api/conflicts?schedule=<id>&day=<day>&period=<id>&faculty=<id>.
// The schedule parameter names the schedule being edited; it is excluded
// from the search.
func NewConflictHandler(planner *timetable.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		day, err := model.ParseDay(r.URL.Query().Get("day"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		periodID, err := strconv.Atoi(r.URL.Query().Get("period"))
		if err != nil {
			http.Error(w, "period must be an integer", http.StatusBadRequest)
			return
		}
		facultyID := r.URL.Query().Get("faculty")
		if facultyID == "" {
			http.Error(w, "faculty query parameter is required", http.StatusBadRequest)
			return
		}
		conflict := planner.Conflict(r.URL.Query().Get("schedule"), day, periodID, facultyID)
		writeJSON(w, struct {
			Busy     bool                `json:"busy"`
			Conflict *timetable.Conflict `json:"conflict,omitempty"`
		}{Busy: conflict != nil, Conflict: conflict})
	})
}

// NewLoadHandler returns an HTTP handler exposing the faculty load report
// via GET /api/load.
func NewLoadHandler(planner *timetable.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, stats.LoadReport(planner.Schedules()))
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
