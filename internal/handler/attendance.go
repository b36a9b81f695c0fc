package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/employee-attendance-tracker/internal/attendance"
	"github.com/iliyamo/employee-attendance-tracker/internal/model"
	"github.com/iliyamo/employee-attendance-tracker/internal/queue"
	"github.com/iliyamo/employee-attendance-tracker/internal/repository"
	queue_publisher "github.com/iliyamo/employee-attendance-tracker/internal/service"
	"github.com/iliyamo/employee-attendance-tracker/internal/stats"
)

// AttendanceHandler serves the employee-facing attendance endpoints.
// The status rules come in as a Policy so the thresholds are the
// config's, not the handler's.
type AttendanceHandler struct {
	Records *repository.AttendanceRepo
	Users   *repository.UserRepo
	Policy  attendance.Policy
}

func NewAttendanceHandler(records *repository.AttendanceRepo, users *repository.UserRepo, pol attendance.Policy) *AttendanceHandler {
	if records == nil || users == nil {
		panic("nil repository passed to NewAttendanceHandler")
	}
	return &AttendanceHandler{Records: records, Users: users, Policy: pol}
}

// CheckIn handles POST /api/attendance/checkin. The insert itself
// enforces one record per (user, day); a second check-in surfaces as
// ErrAlreadyCheckedIn no matter how the requests interleave.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	now := time.Now()
	date := now.Format(stats.DateLayout)
	status := h.Policy.StatusForCheckIn(now)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Records.CheckIn(ctx, userID, date, now, status)
	if err != nil {
		if err == repository.ErrAlreadyCheckedIn {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Already checked in today"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	h.publishEvent(ctx, queue.KindCheckIn, rec)
	return c.JSON(http.StatusCreated, rec)
}

// CheckOut handles POST /api/attendance/checkout. Closing is a
// one-shot transition: the repository's guarded update rejects a
// record that is already closed.
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	now := time.Now()
	date := now.Format(stats.DateLayout)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Records.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No check-in found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	// A seeded absent row has no check-in either; it cannot be closed.
	if rec.CheckInTime == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No check-in found"})
	}
	if rec.CheckOutTime != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Already checked out"})
	}

	total := attendance.HoursBetween(*rec.CheckInTime, now)
	status := h.Policy.CloseStatus(rec.Status, total)

	if err := h.Records.CloseOut(ctx, rec.ID, now, total, status); err != nil {
		if err == repository.ErrAlreadyCheckedOut {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Already checked out"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	updated, err := h.Records.GetByID(ctx, rec.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	h.publishEvent(ctx, queue.KindCheckOut, updated)
	return c.JSON(http.StatusOK, updated)
}

// Today handles GET /api/attendance/today: the day's record, or null
// when the user has not checked in.
func (h *AttendanceHandler) Today(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Records.GetByUserAndDate(ctx, userID, time.Now().Format(stats.DateLayout))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// MyHistory handles GET /api/attendance/my-history: all own records,
// newest date first.
func (h *AttendanceHandler) MyHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	records, err := h.Records.HistoryByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

// MySummary handles GET /api/attendance/my-summary: the raw records of
// the current calendar month.
func (h *AttendanceHandler) MySummary(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	start, end := stats.MonthBounds(time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	records, err := h.Records.RangeByUser(ctx, userID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

// publishEvent emits an attendance.recorded event, best effort. The
// user lookup and the publish are both allowed to fail without
// affecting the response.
func (h *AttendanceHandler) publishEvent(ctx context.Context, kind string, rec model.AttendanceRecord) {
	ev := queue.AttendanceRecordedEvent{
		Kind:       kind,
		RecordID:   rec.ID,
		UserID:     rec.UserID,
		Date:       rec.Date,
		Status:     rec.Status,
		TotalHours: rec.TotalHours,
		RecordedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if u, err := h.Users.GetByID(ctx, rec.UserID); err == nil {
		ev.Name = u.Name
		ev.EmployeeID = u.EmployeeID
		ev.Department = u.Department
	}
	_ = queue_publisher.PublishAttendanceRecorded(ctx, ev)
}
