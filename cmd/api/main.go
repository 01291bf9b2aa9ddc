// Package main is the entry point for the task manager API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/config"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/database"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/handlers"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/logging"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/middleware"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/repository"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/routes"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/service"
	"github.com/Aaryan-2k/TaskManagerAPI/pkg/redis"
)

// @title Task Manager API
// @version 1.0
// @description Per-user task tracking API with JWT authentication
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Environment)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Error("failed to connect to redis", slog.Any("error", err))
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	if err != nil {
		logger.Error("failed to create JWT service", slog.Any("error", err))
		os.Exit(1)
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient)
	accountService := service.NewAccountService(userRepo)
	taskService := service.NewTaskService(taskRepo)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	healthHandler := handlers.NewHealthHandler()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Collect())

	routes.Setup(router, authService, accountHandler, authHandler, taskHandler, healthHandler)

	logger.Info("starting task manager API", slog.String("port", cfg.Port))
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
