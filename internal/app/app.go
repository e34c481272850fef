package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"digital-reception-api/internal/config"
	"digital-reception-api/internal/db"
	"digital-reception-api/internal/handler"
	"digital-reception-api/internal/mailer"
	"digital-reception-api/internal/metrics"
	"digital-reception-api/internal/repository"
	"digital-reception-api/internal/router"
	"digital-reception-api/internal/service"
)

// Run initializes and starts the application
func Run() error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting Digital Reception API")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// A missing brochure is a deployment error; the mailer still re-checks
	// on every send.
	if _, err := os.Stat(cfg.Brochure.Path); err != nil {
		return fmt.Errorf("brochure PDF not readable at %s: %w", cfg.Brochure.Path, err)
	}

	dbConn, err := db.Init(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	m := metrics.NewMetrics()

	repo := repository.New(dbConn)

	provider, err := mailer.NewProvider(&cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to create mail provider: %w", err)
	}
	logrus.Infof("Using %s for brochure email delivery", provider.Name())

	ml := mailer.New(&cfg.Mail, cfg.Brochure, provider)

	signup := service.NewSignupService(repo, ml, m)
	refresher := service.NewStatsRefresher(&cfg.Refresher, repo, m)

	h := handler.NewHandlers(dbConn, signup, refresher)
	r := router.SetupRouter(h)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if err := refresher.Start(); err != nil {
		return fmt.Errorf("failed to start stats refresher: %w", err)
	}
	refresher.RunOnce()

	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := refresher.Stop(); err != nil {
		logrus.Errorf("Failed to stop stats refresher: %v", err)
	}
	refresher.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	logrus.Info("Server stopped gracefully")
	return nil
}
