package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/config"
	"github.com/shareit-platform/service-shareit/internal/database"
	"github.com/shareit-platform/service-shareit/internal/handler"
	"github.com/shareit-platform/service-shareit/internal/logger"
	"github.com/shareit-platform/service-shareit/internal/metrics"
	"github.com/shareit-platform/service-shareit/internal/repository"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
	"go.uber.org/zap"
)

const serviceName = "service-shareit"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("time_zone", cfg.TimeZone),
	)

	conv, err := timeutil.LoadConverter(cfg.TimeZone)
	if err != nil {
		log.Fatal("invalid time zone", zap.Error(err))
	}

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.IsDevelopment() {
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), cfg.MigrationsPath, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	// Initialize application services
	clock := application.Clock(time.Now)
	userService := application.NewUserService(userRepo, log)
	itemService := application.NewItemService(itemRepo, commentRepo, bookingRepo, userRepo, requestRepo, conv, clock, log)
	commentService := application.NewCommentService(commentRepo, itemRepo, userRepo, bookingRepo, clock, log)
	requestService := application.NewRequestService(requestRepo, itemRepo, userRepo, conv, clock, log)
	bookingService := application.NewBookingService(bookingRepo, itemRepo, userRepo, conv, clock, log)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Register()
	router := handler.NewRouter(handler.Handlers{
		Users:    handler.NewUserHandler(userService),
		Items:    handler.NewItemHandler(itemService, commentService),
		Requests: handler.NewRequestHandler(requestService),
		Bookings: handler.NewBookingHandler(bookingService),
		Health:   handler.NewHealthHandler(db, serviceName),
	}, cfg.CORSOrigins, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info(serviceName + " stopped")
}
