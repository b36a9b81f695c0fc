package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/employee-attendance-tracker/internal/attendance"
	"github.com/iliyamo/employee-attendance-tracker/internal/config"
	"github.com/iliyamo/employee-attendance-tracker/internal/database"
	"github.com/iliyamo/employee-attendance-tracker/internal/handler"
	"github.com/iliyamo/employee-attendance-tracker/internal/queue"
	"github.com/iliyamo/employee-attendance-tracker/internal/repository"
	"github.com/iliyamo/employee-attendance-tracker/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb := config.NewRedisClient() // nil disables cache and rate limiting

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	records := repository.NewAttendanceRepo(db)

	pol := attendance.Policy{LateHour: cfg.LateHour, HalfDayHours: float64(cfg.HalfDayHours)}

	authH := handler.NewAuthHandler(cfg, users, tokens)
	attH := handler.NewAttendanceHandler(records, users, pol)
	mgrH := handler.NewManagerHandler(records, users)
	dashH := handler.NewDashboardHandler(records, users)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterAttendance(e, attH, mgrH, dashH, cfg, rdb)

	// Audit log consumer; reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartAttendanceConsumer(); err != nil {
			log.Printf("attendance consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
