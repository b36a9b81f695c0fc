package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

// AttendanceRepo persists per-user-per-day attendance facts. The table
// carries a unique key on (user_id, date), so duplicate check-ins fail
// at insert time and no lookup-then-write window exists.
type AttendanceRepo struct{ DB *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{DB: db} }

// date is stored as DATE; DATE_FORMAT keeps it a plain string on the
// way out so the zero-padded YYYY-MM-DD form is the only one handled
// above this layer.
const recordColumns = "id,user_id,DATE_FORMAT(date,'%Y-%m-%d'),check_in_time,check_out_time,status,total_hours,created_at,updated_at"

// CheckIn inserts the day's record for a user. The duplicate-key error
// (MySQL 1062) maps to ErrAlreadyCheckedIn, which is the atomic form
// of the "one record per user per day" invariant.
func (r *AttendanceRepo) CheckIn(ctx context.Context, userID uint64, date string, checkIn time.Time, status string) (model.AttendanceRecord, error) {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO attendance (user_id, date, check_in_time, status) VALUES (?,?,?,?)",
		userID, date, checkIn.UTC(), status)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.AttendanceRecord{}, ErrAlreadyCheckedIn
		}
		return model.AttendanceRecord{}, err
	}
	return r.GetByUserAndDate(ctx, userID, date)
}

// GetByUserAndDate fetches one (user, date) record; sql.ErrNoRows when
// the user has not checked in that day.
func (r *AttendanceRepo) GetByUserAndDate(ctx context.Context, userID uint64, date string) (model.AttendanceRecord, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE user_id=? AND date=? LIMIT 1",
		userID, date)
	return scanRecord(row)
}

// CloseOut writes the checkout fields. The check_out_time IS NULL
// guard makes closing a record a one-shot transition: whichever of two
// concurrent checkouts loses the race affects zero rows and gets
// ErrAlreadyCheckedOut.
func (r *AttendanceRepo) CloseOut(ctx context.Context, recordID uint64, checkOut time.Time, totalHours float64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE attendance SET check_out_time=?, total_hours=?, status=? WHERE id=? AND check_out_time IS NULL",
		checkOut.UTC(), totalHours, status, recordID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyCheckedOut
	}
	return nil
}

// GetByID fetches a record by primary key.
func (r *AttendanceRepo) GetByID(ctx context.Context, id uint64) (model.AttendanceRecord, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE id=? LIMIT 1", id)
	return scanRecord(row)
}

// HistoryByUser returns all of a user's records, newest date first.
func (r *AttendanceRepo) HistoryByUser(ctx context.Context, userID uint64) ([]model.AttendanceRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE user_id=? ORDER BY date DESC",
		userID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

// RangeByUser returns a user's records with date in [start, end],
// bounds inclusive.
func (r *AttendanceRepo) RangeByUser(ctx context.Context, userID uint64, start, end string) ([]model.AttendanceRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE user_id=? AND date>=? AND date<=? ORDER BY date",
		userID, start, end)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

// CountsForDate returns how many of the day's records count as present
// (any status but absent) and how many are explicitly late.
func (r *AttendanceRepo) CountsForDate(ctx context.Context, date string) (present, late int, err error) {
	err = r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(status<>?),0), COALESCE(SUM(status=?),0)
		 FROM attendance WHERE date=?`,
		model.StatusAbsent, model.StatusLate, date).Scan(&present, &late)
	return present, late, err
}

// DailyCounts returns record counts per date for date >= from, for the
// weekly trend. Days with no records are simply missing from the map.
func (r *AttendanceRepo) DailyCounts(ctx context.Context, from string) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT DATE_FORMAT(date,'%Y-%m-%d'), COUNT(*) FROM attendance WHERE date>=? GROUP BY date",
		from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var d string
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, err
		}
		counts[d] = n
	}
	return counts, rows.Err()
}

// ExportFilter narrows the manager listing/export. Zero-value bounds
// are open; UserIDs applies only when Restrict is set, so that an
// empty name-search result yields an empty report instead of an
// unfiltered one.
type ExportFilter struct {
	StartDate string
	EndDate   string
	UserIDs   []uint64
	Restrict  bool
}

// ListWithUsers returns records joined with their owners' profile
// fields, newest date first. User columns are NULL for orphaned
// records (LEFT JOIN), which the exporter renders as placeholders.
func (r *AttendanceRepo) ListWithUsers(ctx context.Context, f ExportFilter) ([]model.AttendanceWithUser, error) {
	where := []string{}
	args := []any{}

	if f.StartDate != "" {
		where = append(where, "a.date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		where = append(where, "a.date <= ?")
		args = append(args, f.EndDate)
	}
	if f.Restrict {
		if len(f.UserIDs) == 0 {
			return []model.AttendanceWithUser{}, nil
		}
		ph := make([]string, len(f.UserIDs))
		for i, id := range f.UserIDs {
			ph[i] = "?"
			args = append(args, id)
		}
		where = append(where, "a.user_id IN ("+strings.Join(ph, ",")+")")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	query := `SELECT
			a.id, a.user_id, DATE_FORMAT(a.date,'%Y-%m-%d'),
			a.check_in_time, a.check_out_time, a.status, a.total_hours,
			a.created_at, a.updated_at,
			u.name, u.email, u.employee_id, u.department
		FROM attendance a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ` + cond + `
		ORDER BY a.date DESC, a.id DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AttendanceWithUser, 0, 64)
	for rows.Next() {
		var rec model.AttendanceWithUser
		var in, outAt sql.NullTime
		var name, email, empID, dept sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &in, &outAt,
			&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
			&name, &email, &empID, &dept); err != nil {
			return nil, err
		}
		rec.CheckInTime = timePtr(in)
		rec.CheckOutTime = timePtr(outAt)
		rec.UserName = strPtr(name)
		rec.UserEmail = strPtr(email)
		rec.UserEmployeeID = strPtr(empID)
		rec.UserDepartment = strPtr(dept)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteByID removes a record. Deleting a missing id is a no-op; the
// administrative override is idempotent.
func (r *AttendanceRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM attendance WHERE id=?", id)
	return err
}

func scanRecord(row *sql.Row) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	var in, out sql.NullTime
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date, &in, &out,
		&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	rec.CheckInTime = timePtr(in)
	rec.CheckOutTime = timePtr(out)
	return rec, nil
}

func collectRecords(rows *sql.Rows) ([]model.AttendanceRecord, error) {
	defer rows.Close()
	out := make([]model.AttendanceRecord, 0, 32)
	for rows.Next() {
		var rec model.AttendanceRecord
		var in, outAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &in, &outAt,
			&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		rec.CheckInTime = timePtr(in)
		rec.CheckOutTime = timePtr(outAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
