package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/teampulse/admin-console/docs"
	"github.com/teampulse/admin-console/internal/api/handler"
	"github.com/teampulse/admin-console/internal/api/middleware"
	"github.com/teampulse/admin-console/internal/core/ports"
	"github.com/teampulse/admin-console/internal/core/service"
	mongodb "github.com/teampulse/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/teampulse/admin-console/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is built by the caller so its worker lifecycle can be tied
// to the process context.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin_console"))

	// --- Dependencies ---
	idem := redisdb.NewIdempotencyStore(rdb)

	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, idem, audit, log)
	userHandler := handler.NewUserHandler(userService)

	projectRepo := mongodb.NewProjectRepository(db)
	projectService := service.NewProjectService(projectRepo, idem, audit, log)
	projectHandler := handler.NewProjectHandler(projectService)

	authMiddleware := middleware.Auth()

	// --- Protected resource routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	projects := e.Group("/projects", authMiddleware)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
