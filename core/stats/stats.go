// Package stats computes advisory faculty-load reports over a schedule
// collection. It only describes the current load distribution; balancing is
// always a user decision.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/timegridhq/timegrid/core/model"
)

// FacultyLoad is the committed teaching load of one faculty across every
// schedule of the view.
type FacultyLoad struct {
	FacultyID string            `json:"faculty_id"`
	Name      string            `json:"name"`
	Periods   int               `json:"periods"`
	ByDay     map[model.Day]int `json:"by_day"`
}

// Summary describes the load distribution across faculties.
type Summary struct {
	Faculties []FacultyLoad `json:"faculties"`
	Mean      float64       `json:"mean"`
	StdDev    float64       `json:"std_dev"`
	Min       int           `json:"min"`
	Max       int           `json:"max"`
}

// LoadReport sums session durations per faculty over all schedules. Busy
// blocks count: an externally booked faculty is loaded all the same.
func LoadReport(schedules []model.Schedule) Summary {
	loads := make(map[string]*FacultyLoad)
	for _, sched := range schedules {
		for _, slot := range sched.TimeSlots {
			for _, fid := range slot.FacultyIDs {
				fl := loads[fid]
				if fl == nil {
					fl = &FacultyLoad{FacultyID: fid, ByDay: make(map[model.Day]int)}
					if f, ok := sched.FacultyByID(fid); ok {
						fl.Name = f.Name
					}
					loads[fid] = fl
				}
				fl.Periods += slot.Duration
				fl.ByDay[slot.Day] += slot.Duration
			}
		}
	}

	out := Summary{}
	values := make([]float64, 0, len(loads))
	for _, fl := range loads {
		out.Faculties = append(out.Faculties, *fl)
		values = append(values, float64(fl.Periods))
	}
	sort.Slice(out.Faculties, func(i, j int) bool {
		return out.Faculties[i].FacultyID < out.Faculties[j].FacultyID
	})
	if len(values) == 0 {
		return out
	}

	out.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		out.StdDev = stat.StdDev(values, nil)
	}
	out.Min = out.Faculties[0].Periods
	out.Max = out.Faculties[0].Periods
	for _, fl := range out.Faculties[1:] {
		if fl.Periods < out.Min {
			out.Min = fl.Periods
		}
		if fl.Periods > out.Max {
			out.Max = fl.Periods
		}
	}
	return out
}
