package database

import (
	"context"
	"database/sql"
	"time"
)

// Migrate creates the schema if it does not exist yet. The unique key
// on (user_id, date) is what makes check-in atomic: a duplicate
// check-in fails at INSERT time instead of relying on a
// lookup-then-write race.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name          VARCHAR(255)    NOT NULL,
			email         VARCHAR(255)    NOT NULL,
			password_hash VARCHAR(255)    NOT NULL,
			role          VARCHAR(16)     NOT NULL DEFAULT 'employee',
			employee_id   VARCHAR(32)     NOT NULL DEFAULT '',
			department    VARCHAR(64)     NOT NULL DEFAULT '',
			is_active     TINYINT(1)      NOT NULL DEFAULT 1,
			created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS attendance (
			id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id        BIGINT UNSIGNED NOT NULL,
			date           DATE            NOT NULL,
			check_in_time  DATETIME        NULL,
			check_out_time DATETIME        NULL,
			status         VARCHAR(16)     NOT NULL,
			total_hours    DECIMAL(5,2)    NOT NULL DEFAULT 0,
			created_at     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_attendance_user_date (user_id, date),
			KEY idx_attendance_date (date),
			CONSTRAINT fk_attendance_user FOREIGN KEY (user_id) REFERENCES users (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id    BIGINT UNSIGNED NOT NULL,
			token_hash CHAR(64)        NOT NULL,
			expires_at DATETIME        NOT NULL,
			revoked_at DATETIME        NULL,
			created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_refresh_tokens_hash (token_hash),
			KEY idx_refresh_tokens_user (user_id),
			CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
