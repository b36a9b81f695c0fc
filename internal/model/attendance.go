package model

import "time"

// Status values stored in attendance.status.
//
//	present  – checked in before the late threshold
//	late     – checked in at or after the late threshold
//	absent   – no show (seeded rows only; never set by check-in)
//	half-day – closed with fewer worked hours than the half-day threshold
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
)

// AttendanceRecord represents one user's attendance for one calendar
// day, mirroring the `attendance` table. Date is the natural dedup key
// together with UserID and is serialized as zero-padded YYYY-MM-DD so
// string comparison orders chronologically. CheckInTime and
// CheckOutTime stay nil until the corresponding event happens.
type AttendanceRecord struct {
	ID           uint64     `json:"id"`
	UserID       uint64     `json:"userId"`
	Date         string     `json:"date"`
	CheckInTime  *time.Time `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	Status       string     `json:"status"`
	TotalHours   float64    `json:"totalHours"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AttendanceWithUser is an attendance record joined with the owning
// user's profile fields for manager listings and the CSV export. The
// user columns are pointers because a record can outlive its user; the
// exporter renders placeholders in that case.
type AttendanceWithUser struct {
	AttendanceRecord
	UserName       *string `json:"name"`
	UserEmail      *string `json:"email"`
	UserEmployeeID *string `json:"employeeId"`
	UserDepartment *string `json:"department"`
}
