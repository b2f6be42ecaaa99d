// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/practicebay/practicebay-api/internal/catalog"
	"github.com/practicebay/practicebay-api/internal/config"
	"github.com/practicebay/practicebay-api/internal/database"
	"github.com/practicebay/practicebay-api/internal/i18n"
	"github.com/practicebay/practicebay-api/internal/middleware"
	"github.com/practicebay/practicebay-api/internal/router"
	"github.com/practicebay/practicebay-api/internal/services"
	"github.com/practicebay/practicebay-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	configureLogging(cfg)

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	if err := catalog.Validate(); err != nil {
		logrus.WithError(err).
			WithField("errors", utils.GetValidationErrors(err)).
			Fatal("Built-in catalog is invalid")
	}

	// Initialize database
	ctx := context.Background()
	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		if cfg.Database.Required {
			logrus.WithError(err).Fatal("Failed to initialize database")
		}
		logrus.WithError(err).Warn("Database unavailable, serving the built-in catalog")
		store = nil
	}
	defer database.Close(context.Background(), store)

	source := services.NewCatalogSource(store)

	// Seed once before accepting traffic; reads retry whatever fails here
	if result := source.EnsureSeeded(ctx); !result.OK() {
		logrus.WithField("failed", len(result.Failed)).Warn("Startup seeding incomplete")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	defer limiter.Stop()

	// Initialize router
	r := router.Initialize(source, cfg, limiter)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"backend": database.Describe(store),
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

func configureLogging(cfg *config.Config) {
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// Validate already rejected unknown levels
	level, _ := logrus.ParseLevel(cfg.Log.Level)
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)
}
