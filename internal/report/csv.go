// Package report serializes filtered attendance records to CSV for
// the manager export endpoint.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

// Filename is the attachment name served for the export download.
const Filename = "attendance_report.csv"

var header = []string{"Employee ID", "Name", "Department", "Date", "Status", "Check In", "Check Out", "Total Hours"}

const timeLayout = "15:04:05"

// WriteCSV renders records as CSV: one header line, one row per
// record, in the order given (the repository sorts date descending).
// Fields containing commas or quotes are escaped by encoding/csv.
// Records whose user has been deleted render placeholder fields.
func WriteCSV(w io.Writer, records []model.AttendanceWithUser) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(rec model.AttendanceWithUser) []string {
	return []string{
		orElse(rec.UserEmployeeID, "N/A"),
		orElse(rec.UserName, "Unknown"),
		orElse(rec.UserDepartment, "-"),
		rec.Date,
		rec.Status,
		clock(rec.CheckInTime),
		clock(rec.CheckOutTime),
		strconv.FormatFloat(rec.TotalHours, 'f', -1, 64),
	}
}

func orElse(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}
