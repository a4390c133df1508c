// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/config"
	"github.com/javajoker/custom-creations-api/internal/database"
	"github.com/javajoker/custom-creations-api/internal/logging"
	"github.com/javajoker/custom-creations-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logging.Setup(cfg)

	// Connect to the database; the API keeps serving without it
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeoutDuration()+time.Second)
	store, err := database.Open(connectCtx, cfg.Database)
	cancel()
	if err != nil {
		logrus.WithError(err).Warn("Database not available, data endpoints will report it")
	}
	defer database.Close(store)

	if cfg.SeedOnStart && database.Available(store) {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		result, err := database.Seed(seedCtx, store)
		cancel()
		if err != nil {
			logrus.WithError(err).Error("Failed to seed demo data")
		} else {
			logrus.WithFields(logrus.Fields{
				"products": result.ProductsInserted,
				"projects": result.ProjectsInserted,
			}).Info("Startup seeding finished")
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(store, cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}
