package grid

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timegridhq/timegrid/core/model"
	"github.com/timegridhq/timegrid/core/stats"
	"github.com/timegridhq/timegrid/core/timetable"
	"github.com/timegridhq/timegrid/infra/logger"
)

func testSchedule() model.Schedule {
	return model.Schedule{
		ID:      "cs-3a",
		Details: model.ScheduleDetails{ClassName: "CS", Section: "3A", Session: "2026", Semester: "5"},
		Subjects: []model.Subject{
			{ID: "sub-ds", Name: "Data Structures", Code: "CS301", TheoryCount: 3, PracticalCount: 2},
		},
		Faculties: []model.Faculty{
			{ID: "fac-an", Name: "A. Nair", Initials: "AN"},
		},
		Periods: []model.Period{
			{ID: 1, Label: "I", StartMinutes: 9 * 60, EndMinutes: 9*60 + 50},
			{ID: 2, Label: "Recess", StartMinutes: 9*60 + 50, EndMinutes: 10 * 60, IsBreak: true},
			{ID: 3, Label: "II", StartMinutes: 10 * 60, EndMinutes: 10*60 + 50},
			{ID: 4, Label: "III", StartMinutes: 10*60 + 50, EndMinutes: 11*60 + 40},
		},
		TimeSlots: []model.TimeSlot{
			{ID: "slot-1", Day: model.Monday, Period: 3, SubjectID: "sub-ds", FacultyIDs: []string{"fac-an"}, Type: model.Practical, Duration: 2},
		},
	}
}

func testPlanner(t *testing.T) *timetable.Planner {
	t.Helper()
	p, err := timetable.NewPlanner(timetable.Config{}, []model.Schedule{testSchedule()}, logger.NopLogger{}, nil, nil, nil)
	require.NoError(t, err)
	return p
}

func TestGridHandler(t *testing.T) {
	h := NewGridHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/grid?schedule=cs-3a", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "CS 3A", view.Label)
	require.Len(t, view.Rows, 6)

	monday := view.Rows[0]
	require.Equal(t, model.Monday, monday.Day)
	require.Len(t, monday.Cells, 4)
	assert.Equal(t, "9:00 AM - 9:50 AM", monday.Cells[0].TimeRange)
	assert.True(t, monday.Cells[1].IsBreak)

	start := monday.Cells[2]
	assert.Equal(t, "slot-1", start.SlotID)
	assert.Equal(t, "CS301", start.SubjectCode)
	assert.Equal(t, "AN", start.Faculties)
	assert.Equal(t, 2, start.Duration)
	assert.False(t, start.Continued)
	assert.NotEmpty(t, start.Color)

	tail := monday.Cells[3]
	assert.Equal(t, "slot-1", tail.SlotID)
	assert.True(t, tail.Continued)
	assert.Zero(t, tail.Duration)
}

func TestGridHandlerUnknownSchedule(t *testing.T) {
	h := NewGridHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/grid?schedule=nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGridHandlerMissingParam(t *testing.T) {
	h := NewGridHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/grid", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGridHandlerMethodNotAllowed(t *testing.T) {
	h := NewGridHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodPost, "/api/grid?schedule=cs-3a", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConflictHandler(t *testing.T) {
	h := NewConflictHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/conflicts?schedule=other&day=monday&period=4&faculty=fac-an", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Busy     bool                `json:"busy"`
		Conflict *timetable.Conflict `json:"conflict"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Busy)
	assert.Equal(t, "cs-3a", resp.Conflict.ScheduleID)
	assert.Equal(t, "slot-1", resp.Conflict.SlotID)
}

func TestConflictHandlerFree(t *testing.T) {
	h := NewConflictHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/conflicts?day=tuesday&period=3&faculty=fac-an", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Busy bool `json:"busy"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Busy)
}

func TestConflictHandlerBadDay(t *testing.T) {
	h := NewConflictHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/conflicts?day=funday&period=3&faculty=fac-an", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadHandler(t *testing.T) {
	h := NewLoadHandler(testPlanner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/load", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var sum stats.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	require.Len(t, sum.Faculties, 1)
	assert.Equal(t, "fac-an", sum.Faculties[0].FacultyID)
	assert.Equal(t, 2, sum.Faculties[0].Periods)
}
