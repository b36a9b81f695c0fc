// Package queue defines message payloads exchanged over the message broker.
package queue

// AttendanceRecordedEvent is published after a successful check-in or
// check-out. It carries enough for downstream consumers (audit log,
// notifications) without querying the primary database. Kind is
// "check_in" or "check_out"; TotalHours is zero until checkout.
type AttendanceRecordedEvent struct {
	Kind       string  `json:"kind"`
	RecordID   uint64  `json:"record_id"`
	UserID     uint64  `json:"user_id"`
	Name       string  `json:"name"`
	EmployeeID string  `json:"employee_id"`
	Department string  `json:"department"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	TotalHours float64 `json:"total_hours"`
	RecordedAt string  `json:"recorded_at"`
}

// Event kinds.
const (
	KindCheckIn  = "check_in"
	KindCheckOut = "check_out"
)
