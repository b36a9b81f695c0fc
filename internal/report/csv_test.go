package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

func str(s string) *string { return &s }

func ts(hour, min, sec int) *time.Time {
	t := time.Date(2024, time.January, 15, hour, min, sec, 0, time.Local)
	return &t
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got := strings.TrimRight(buf.String(), "\n")
	want := "Employee ID,Name,Department,Date,Status,Check In,Check Out,Total Hours"
	if got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestWriteCSVRows(t *testing.T) {
	records := []model.AttendanceWithUser{
		{
			AttendanceRecord: model.AttendanceRecord{
				Date:         "2024-01-15",
				Status:       model.StatusPresent,
				CheckInTime:  ts(8, 30, 0),
				CheckOutTime: ts(16, 45, 0),
				TotalHours:   8.25,
			},
			UserName:       str("Emma Wilson"),
			UserEmployeeID: str("EMP100"),
			UserDepartment: str("Engineering"),
		},
		{
			// Open record: no check-out yet.
			AttendanceRecord: model.AttendanceRecord{
				Date:        "2024-01-14",
				Status:      model.StatusLate,
				CheckInTime: ts(10, 15, 0),
			},
			UserName:       str("Liam Brown"),
			UserEmployeeID: str("EMP101"),
			UserDepartment: str("Sales"),
		},
		{
			// User deleted after the record was written.
			AttendanceRecord: model.AttendanceRecord{
				Date:   "2024-01-13",
				Status: model.StatusAbsent,
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[1] != "EMP100,Emma Wilson,Engineering,2024-01-15,present,08:30:00,16:45:00,8.25" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "EMP101,Liam Brown,Sales,2024-01-14,late,10:15:00,-,0" {
		t.Errorf("row 2 = %q", lines[2])
	}
	if lines[3] != "N/A,Unknown,-,2024-01-13,absent,-,-,0" {
		t.Errorf("row 3 = %q", lines[3])
	}
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	records := []model.AttendanceWithUser{
		{
			AttendanceRecord: model.AttendanceRecord{
				Date:   "2024-01-15",
				Status: model.StatusPresent,
			},
			UserName:       str("Wilson, Emma"),
			UserEmployeeID: str("EMP100"),
			UserDepartment: str("R&D"),
		},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	// The output must stay parseable: the comma in the name is quoted,
	// not a field separator.
	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(rows) != 2 || len(rows[1]) != 8 {
		t.Fatalf("re-parsed shape = %d rows, want 2x8", len(rows))
	}
	if rows[1][1] != "Wilson, Emma" {
		t.Errorf("name field = %q, want %q", rows[1][1], "Wilson, Emma")
	}
}
