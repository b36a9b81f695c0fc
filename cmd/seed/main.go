// Command seed resets the database and loads demo users plus thirty
// days of attendance history. Intended for development environments;
// it deletes existing data first.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/iliyamo/employee-attendance-tracker/internal/attendance"
	"github.com/iliyamo/employee-attendance-tracker/internal/config"
	"github.com/iliyamo/employee-attendance-tracker/internal/database"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pol := attendance.Policy{LateHour: cfg.LateHour, HalfDayHours: float64(cfg.HalfDayHours)}
	if err := database.Seed(db, cfg.BcryptCost, pol); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Println("seeding complete")
	log.Println("manager: admin@test.com | 123")
	log.Println("employee: emma@test.com | 123")
}
