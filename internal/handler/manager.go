package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/employee-attendance-tracker/internal/report"
	"github.com/iliyamo/employee-attendance-tracker/internal/repository"
)

// ManagerHandler serves the manager-only attendance endpoints:
// the full listing, the CSV export, and the administrative delete.
type ManagerHandler struct {
	Records *repository.AttendanceRepo
	Users   *repository.UserRepo
}

func NewManagerHandler(records *repository.AttendanceRepo, users *repository.UserRepo) *ManagerHandler {
	if records == nil || users == nil {
		panic("nil repository passed to NewManagerHandler")
	}
	return &ManagerHandler{Records: records, Users: users}
}

// All handles GET /api/attendance/all: every record with the owner's
// profile fields populated, newest date first.
func (h *ManagerHandler) All(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	records, err := h.Records.ListWithUsers(ctx, repository.ExportFilter{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

// Export handles GET /api/attendance/export?startDate&endDate&search.
// The search term resolves to employee IDs first; no matches means an
// empty (header-only) report, not an error.
func (h *ManagerHandler) Export(c echo.Context) error {
	filter := repository.ExportFilter{
		StartDate: strings.TrimSpace(c.QueryParam("startDate")),
		EndDate:   strings.TrimSpace(c.QueryParam("endDate")),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	if term := strings.TrimSpace(c.QueryParam("search")); term != "" {
		ids, err := h.Users.SearchEmployeeIDs(ctx, term)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		filter.UserIDs = ids
		filter.Restrict = true
	}

	records, err := h.Records.ListWithUsers(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+report.Filename+`"`)
	res.WriteHeader(http.StatusOK)
	return report.WriteCSV(res, records)
}

// Delete handles DELETE /api/attendance/:id. Removing a record that no
// longer exists reports the same success; the override is idempotent.
func (h *ManagerHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid record id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Records.DeleteByID(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted"})
}
