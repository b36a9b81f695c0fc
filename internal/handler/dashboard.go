package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/employee-attendance-tracker/internal/repository"
	"github.com/iliyamo/employee-attendance-tracker/internal/stats"
)

// DashboardHandler serves the aggregate views for both roles.
type DashboardHandler struct {
	Records *repository.AttendanceRepo
	Users   *repository.UserRepo
}

func NewDashboardHandler(records *repository.AttendanceRepo, users *repository.UserRepo) *DashboardHandler {
	if records == nil || users == nil {
		panic("nil repository passed to NewDashboardHandler")
	}
	return &DashboardHandler{Records: records, Users: users}
}

type absentEmployee struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
}

type managerStatsResp struct {
	TotalEmployees  int                    `json:"totalEmployees"`
	PresentToday    int                    `json:"presentToday"`
	LateToday       int                    `json:"lateToday"`
	AbsentToday     int                    `json:"absentToday"`
	DepartmentStats []stats.DepartmentStat `json:"departmentStats"`
	WeeklyStats     []stats.WeeklyPoint    `json:"weeklyStats"`
	AbsentEmployees []absentEmployee       `json:"absentEmployees"`
}

// ManagerStats handles GET /api/dashboard/manager. absentToday is
// derived, not counted: employees with no record at all for today are
// absent by policy, so it is totalEmployees minus everyone with a
// non-absent record.
func (h *DashboardHandler) ManagerStats(c echo.Context) error {
	now := time.Now()
	today := now.Format(stats.DateLayout)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	totalEmployees, err := h.Users.CountEmployees(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	present, late, err := h.Records.CountsForDate(ctx, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	deptCounts, err := h.Users.CountByDepartment(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	dailyCounts, err := h.Records.DailyCounts(ctx, stats.WeekStart(now))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	absentees, err := h.Users.EmployeesWithoutRecordOn(ctx, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	resp := managerStatsResp{
		TotalEmployees:  totalEmployees,
		PresentToday:    present,
		LateToday:       late,
		AbsentToday:     totalEmployees - present,
		DepartmentStats: stats.DepartmentBreakdown(deptCounts),
		WeeklyStats:     stats.WeeklyTrend(dailyCounts, now),
		AbsentEmployees: make([]absentEmployee, 0, len(absentees)),
	}
	for _, u := range absentees {
		resp.AbsentEmployees = append(resp.AbsentEmployees, absentEmployee{
			Name: u.Name, Email: u.Email, EmployeeID: u.EmployeeID, Department: u.Department,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// EmployeeStats handles GET /api/dashboard/employee: status counts and
// hour total for the caller's current month.
func (h *DashboardHandler) EmployeeStats(c echo.Context) error {
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
	return c.JSON(http.StatusOK, stats.Summarize(records))
}
