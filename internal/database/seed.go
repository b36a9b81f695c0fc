package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/attendance"
	"github.com/iliyamo/employee-attendance-tracker/internal/model"
	"github.com/iliyamo/employee-attendance-tracker/internal/utils"
)

var seedNames = []string{
	"Emma Wilson", "Liam Brown", "Olivia Davis", "Noah Miller", "Ava Garcia",
	"Ethan Martinez", "Sophia Rodriguez", "Mason Hernandez", "Isabella Lopez", "Logan Gonzalez",
	"Mia Anderson", "Lucas Thomas", "Charlotte Taylor", "Jackson Moore", "Amelia Jackson",
	"Aiden Martin", "Harper Lee", "Elijah Perez", "Evelyn Thompson", "James White",
}

var seedDepartments = []string{"Engineering", "Sales", "HR", "Marketing", "Support"}

// Seed wipes the attendance and user tables and loads demo data: one
// manager, twenty employees across five departments, and thirty days
// of history per employee with weekends skipped. Roughly 30% of
// workdays are absences and the rest split between punctual and late
// arrivals, statuses derived from the given policy so the data agrees
// with the engine.
func Seed(db *sql.DB, bcryptCost int, pol attendance.Policy) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, table := range []string{"attendance", "refresh_tokens", "users"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := createSeedUser(ctx, db, "Admin Manager", "admin@test.com", model.RoleManager, "MGR001", "Management", bcryptCost); err != nil {
		return err
	}

	for i, name := range seedNames {
		first := strings.ToLower(strings.Split(name, " ")[0])
		dept := seedDepartments[rand.Intn(len(seedDepartments))]
		empID := fmt.Sprintf("EMP%d", 100+i)

		uid, err := createSeedUser(ctx, db, name, first+"@test.com", model.RoleEmployee, empID, dept, bcryptCost)
		if err != nil {
			return err
		}
		if err := seedHistory(ctx, db, uid, pol); err != nil {
			return err
		}
	}
	return nil
}

func createSeedUser(ctx context.Context, db *sql.DB, name, email, role, employeeID, department string, cost int) (uint64, error) {
	hash, err := utils.HashPassword("123", cost)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, employee_id, department) VALUES (?,?,?,?,?,?)",
		name, email, hash, role, employeeID, department)
	if err != nil {
		return 0, fmt.Errorf("seed user %s: %w", email, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// seedHistory writes up to 30 days of attendance for one employee.
func seedHistory(ctx context.Context, db *sql.DB, userID uint64, pol attendance.Policy) error {
	now := time.Now()
	for j := 0; j < 30; j++ {
		day := now.AddDate(0, 0, -j)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		date := day.Format("2006-01-02")

		r := rand.Float64()
		if r < 0.30 {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO attendance (user_id, date, status, total_hours) VALUES (?,?,?,0)",
				userID, date, model.StatusAbsent); err != nil {
				return err
			}
			continue
		}

		var hour, minute int
		if r < 0.50 {
			// Late arrival between LateHour:00 and LateHour:59.
			hour = pol.LateHour
			minute = rand.Intn(60)
		} else {
			// Punctual arrival between 08:00 and 08:59.
			hour = 8
			minute = rand.Intn(60)
		}
		checkIn := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
		checkOut := checkIn.Add(9 * time.Hour)
		status := pol.StatusForCheckIn(checkIn)

		if _, err := db.ExecContext(ctx,
			"INSERT INTO attendance (user_id, date, check_in_time, check_out_time, status, total_hours) VALUES (?,?,?,?,?,?)",
			userID, date, checkIn.UTC(), checkOut.UTC(), status, attendance.HoursBetween(checkIn, checkOut)); err != nil {
			return err
		}
	}
	return nil
}
