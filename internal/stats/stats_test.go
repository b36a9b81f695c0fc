package stats

import (
	"testing"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

func TestMonthBounds(t *testing.T) {
	ref := time.Date(2024, time.February, 15, 13, 0, 0, 0, time.Local)
	start, end := MonthBounds(ref)
	if start != "2024-02-01" || end != "2024-02-29" {
		t.Errorf("MonthBounds(feb 2024) = %s..%s, want 2024-02-01..2024-02-29", start, end)
	}

	ref = time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local)
	start, end = MonthBounds(ref)
	if start != "2024-12-01" || end != "2024-12-31" {
		t.Errorf("MonthBounds(dec 2024) = %s..%s, want 2024-12-01..2024-12-31", start, end)
	}
}

func TestSummarize(t *testing.T) {
	records := []model.AttendanceRecord{
		{Status: model.StatusPresent, TotalHours: 8.25},
		{Status: model.StatusPresent, TotalHours: 9},
		{Status: model.StatusLate, TotalHours: 7.5},
		{Status: model.StatusAbsent, TotalHours: 0},
		{Status: model.StatusHalfDay, TotalHours: 3.5},
	}
	s := Summarize(records)
	if s.Present != 2 || s.Late != 1 || s.Absent != 1 {
		t.Errorf("counts = %+v, want present=2 late=1 absent=1", s)
	}
	if s.TotalHours != 28.25 {
		t.Errorf("TotalHours = %v, want 28.25", s.TotalHours)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Present != 0 || s.Late != 0 || s.Absent != 0 || s.TotalHours != 0 {
		t.Errorf("Summarize(nil) = %+v, want all zeros", s)
	}
}

func TestWeeklyTrend(t *testing.T) {
	// Monday 2024-03-11; window is Tue 03-05 .. Mon 03-11.
	today := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.Local)
	counts := map[string]int{
		"2024-03-05": 4,
		"2024-03-08": 12,
		"2024-03-11": 7,
		"2024-02-01": 99, // outside the window, must be ignored
	}

	points := WeeklyTrend(counts, today)
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}
	if points[0].Name != "Tue" || points[0].Checkins != 4 {
		t.Errorf("oldest point = %+v, want {Tue 4}", points[0])
	}
	if points[6].Name != "Mon" || points[6].Checkins != 7 {
		t.Errorf("newest point = %+v, want {Mon 7}", points[6])
	}

	total := 0
	for _, p := range points {
		total += p.Checkins
	}
	if total != 23 {
		t.Errorf("window total = %d, want 23", total)
	}
}

func TestWeekStart(t *testing.T) {
	today := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.Local)
	if got := WeekStart(today); got != "2024-03-05" {
		t.Errorf("WeekStart = %s, want 2024-03-05", got)
	}
}

func TestDepartmentBreakdown(t *testing.T) {
	counts := map[string]int{
		"Engineering": 8,
		"Sales":       5,
		"":            2,
		"General":     1,
	}
	out := DepartmentBreakdown(counts)
	if len(out) != 3 {
		t.Fatalf("got %d groups, want 3: %+v", len(out), out)
	}
	// Sorted by name: Engineering, General, Sales. The unset group
	// merges into General.
	if out[0].Name != "Engineering" || out[0].Value != 8 {
		t.Errorf("out[0] = %+v, want {Engineering 8}", out[0])
	}
	if out[1].Name != "General" || out[1].Value != 3 {
		t.Errorf("out[1] = %+v, want {General 3}", out[1])
	}
	if out[2].Name != "Sales" || out[2].Value != 5 {
		t.Errorf("out[2] = %+v, want {Sales 5}", out[2])
	}
}
