// Package stats assembles the derived dashboard views from raw counts
// and records. The functions are pure: repositories supply the inputs
// and handlers serialize the outputs.
package stats

import (
	"sort"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/attendance"
	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

// DateLayout is the wire and storage format for calendar dates.
// Zero-padded, so lexicographic comparison matches chronological order.
const DateLayout = "2006-01-02"

// DefaultDepartment is substituted for employees with no department
// set when grouping for the department breakdown.
const DefaultDepartment = "General"

// WeeklyPoint is one day of the weekly trend: Name is the short
// weekday label ("Mon"), Checkins the number of attendance records
// dated that day.
type WeeklyPoint struct {
	Name     string `json:"name"`
	Checkins int    `json:"checkins"`
}

// DepartmentStat is one slice of the department headcount breakdown.
type DepartmentStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlySummary aggregates one employee's records for a month.
type MonthlySummary struct {
	Present    int     `json:"present"`
	Late       int     `json:"late"`
	Absent     int     `json:"absent"`
	TotalHours float64 `json:"totalHours"`
}

// MonthBounds returns the first and last calendar day of ref's month,
// formatted as DateLayout. Both bounds are inclusive.
func MonthBounds(ref time.Time) (start, end string) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// Summarize folds a month's records into status counts and the hour
// total, rounded to two decimals. An empty slice yields all zeros.
func Summarize(records []model.AttendanceRecord) MonthlySummary {
	var s MonthlySummary
	for _, r := range records {
		switch r.Status {
		case model.StatusPresent:
			s.Present++
		case model.StatusLate:
			s.Late++
		case model.StatusAbsent:
			s.Absent++
		}
		s.TotalHours += r.TotalHours
	}
	s.TotalHours = attendance.Round2(s.TotalHours)
	return s
}

// WeeklyTrend builds the last-7-days series ending at today, oldest
// first. countsByDate maps DateLayout strings to record counts; days
// missing from the map report zero so charts always get 7 points.
func WeeklyTrend(countsByDate map[string]int, today time.Time) []WeeklyPoint {
	points := make([]WeeklyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, WeeklyPoint{
			Name:     day.Format("Mon"),
			Checkins: countsByDate[day.Format(DateLayout)],
		})
	}
	return points
}

// WeekStart returns the oldest date of the 7-day window ending at
// today, for use as the lower bound of the trend query.
func WeekStart(today time.Time) string {
	return today.AddDate(0, 0, -6).Format(DateLayout)
}

// DepartmentBreakdown normalizes raw per-department headcounts into a
// sorted slice. Employees without a department are folded into
// DefaultDepartment, merging with an explicit "General" group if one
// exists.
func DepartmentBreakdown(countsByDepartment map[string]int) []DepartmentStat {
	merged := make(map[string]int, len(countsByDepartment))
	for dept, n := range countsByDepartment {
		if dept == "" {
			dept = DefaultDepartment
		}
		merged[dept] += n
	}
	out := make([]DepartmentStat, 0, len(merged))
	for dept, n := range merged {
		out = append(out, DepartmentStat{Name: dept, Value: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
