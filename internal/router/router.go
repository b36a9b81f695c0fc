// Package router wires HTTP routes to handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/employee-attendance-tracker/internal/config"
	"github.com/iliyamo/employee-attendance-tracker/internal/handler"
	"github.com/iliyamo/employee-attendance-tracker/internal/middleware"
	"github.com/iliyamo/employee-attendance-tracker/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints. Register, login, refresh
// and logout exchange tokens and need no session; me and logout-all
// require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/api/auth")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout-all", a.LogoutAll)
}

// RegisterAttendance registers the attendance and dashboard endpoints.
// Everything requires a bearer token; the manager listing, export,
// delete and dashboard are additionally role-gated. Check-in/out sit
// behind the rate limiter, the manager read endpoints behind the
// response cache.
func RegisterAttendance(
	e *echo.Echo,
	att *handler.AttendanceHandler,
	mgr *handler.ManagerHandler,
	dash *handler.DashboardHandler,
	cfg config.Config,
	rdb *redis.Client,
) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	a := e.Group("/api/attendance")
	a.Use(middleware.JWTAuth(cfg.JWTSecret))
	a.Use(middleware.RequireRole(model.RoleEmployee, model.RoleManager))

	a.POST("/checkin", att.CheckIn, limiter)
	a.POST("/checkout", att.CheckOut, limiter)
	a.GET("/today", att.Today)
	a.GET("/my-history", att.MyHistory)
	a.GET("/my-summary", att.MySummary)

	managerOnly := middleware.RequireRole(model.RoleManager)
	a.GET("/all", mgr.All, managerOnly)
	a.GET("/export", mgr.Export, managerOnly, cache)
	a.DELETE("/:id", mgr.Delete, managerOnly)

	d := e.Group("/api/dashboard")
	d.Use(middleware.JWTAuth(cfg.JWTSecret))
	d.Use(middleware.RequireRole(model.RoleEmployee, model.RoleManager))
	d.GET("/manager", dash.ManagerStats, managerOnly, cache)
	d.GET("/employee", dash.EmployeeStats)
}
