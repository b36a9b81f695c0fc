package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/employee-attendance-tracker/internal/model"
	"github.com/iliyamo/employee-attendance-tracker/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,name,email,password_hash,role,employee_id,department,is_active,created_at,updated_at"

// Create inserts a user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, name, email, password, role, employeeID, department string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, employee_id, department) VALUES (?,?,?,?,?,?)",
		name, email, hash, role, employeeID, department)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.EmployeeID, &u.Department, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CountEmployees returns the number of users with the employee role.
func (r *UserRepo) CountEmployees(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE role=?", model.RoleEmployee).Scan(&n)
	return n, err
}

// CountByDepartment groups employees by department. Empty departments
// come back under the empty key; normalization to "General" happens in
// the stats package.
func (r *UserRepo) CountByDepartment(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT department, COUNT(*) FROM users WHERE role=? GROUP BY department", model.RoleEmployee)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dept string
		var n int
		if err := rows.Scan(&dept, &n); err != nil {
			return nil, err
		}
		counts[dept] = n
	}
	return counts, rows.Err()
}

// EmployeesWithoutRecordOn lists employees with no attendance record
// dated the given day: the no-show policy treats them as absent.
func (r *UserRepo) EmployeesWithoutRecordOn(ctx context.Context, date string) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE role=?
		   AND id NOT IN (SELECT user_id FROM attendance WHERE date=?)`,
		model.RoleEmployee, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.EmployeeID, &u.Department, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SearchEmployeeIDs resolves the export search term to employee user
// IDs whose name contains the term, case-insensitively. An empty
// result is valid and yields an empty report.
func (r *UserRepo) SearchEmployeeIDs(ctx context.Context, term string) ([]uint64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id FROM users WHERE role=? AND LOWER(name) LIKE ?",
		model.RoleEmployee, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
