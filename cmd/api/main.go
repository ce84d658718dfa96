package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-task-planner/config"
	_ "personal-task-planner/docs" // Swagger docs
	authHTTP "personal-task-planner/internal/auth/delivery/http"
	authUC "personal-task-planner/internal/auth/usecase"
	"personal-task-planner/internal/clock"
	"personal-task-planner/internal/httpserver"
	"personal-task-planner/internal/middleware"
	"personal-task-planner/internal/storage"
	"personal-task-planner/internal/storage/sqlite"
	tasksHTTP "personal-task-planner/internal/tasks/delivery/http"
	blobRepo "personal-task-planner/internal/tasks/repository/blob"
	tasksUC "personal-task-planner/internal/tasks/usecase"
	"personal-task-planner/pkg/dateutil"
	"personal-task-planner/pkg/log"
)

// @title       Personal Task Planner API
// @description Per-user task scheduling with derived time buckets, reminders and overdue tracking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	var kv storage.KV
	switch cfg.Storage.Driver {
	case "sqlite":
		kv, err = sqlite.Open(cfg.Storage.Path)
		if err != nil {
			logger.Error(ctx, "Failed to open sqlite store: ", err)
			return
		}
		logger.Infof(ctx, "Storage: sqlite at %s", cfg.Storage.Path)
	default:
		kv = storage.NewMemory()
		logger.Warn(ctx, "Storage: in-memory, data is lost on restart")
	}
	defer kv.Close()

	// 4. Calendar + clock
	cal, err := dateutil.NewCalendar(cfg.Clock.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to load timezone: ", err)
		return
	}
	clk := clock.NewTicking(time.Duration(cfg.Clock.TickSeconds) * time.Second)
	defer clk.Stop()

	// 5. Tasks domain
	taskRepo := blobRepo.New(kv, logger)
	taskStore := tasksUC.New(logger, taskRepo, cal, clk)
	defer taskStore.Close(context.Background())
	tasksHandler := tasksHTTP.New(logger, taskStore)

	// 6. Auth domain, with the task store as session hook
	sessionUC := authUC.New(logger, kv, taskStore, clk)
	if err := sessionUC.Restore(ctx); err != nil {
		logger.Warnf(ctx, "Could not restore previous session: %v", err)
	}
	authHandler := authHTTP.New(logger, sessionUC)

	// 7. HTTP Server
	mw := middleware.New(logger, sessionUC, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		TasksHandler: tasksHandler,
		AuthHandler:  authHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
