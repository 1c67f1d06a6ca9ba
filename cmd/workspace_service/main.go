package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"codeassist/internal/config"
	"codeassist/internal/models"
	"codeassist/internal/workspace_service/api"
	"codeassist/internal/workspace_service/service"
	"codeassist/internal/workspace_service/store"
	"codeassist/pkg/logger"
)

func main() {
	// A missing .env file is fine; the config file carries the defaults.
	_ = godotenv.Load()

	configPath := os.Getenv("WORKSPACE_CONFIG_PATH")
	if configPath == "" {
		configPath = "internal/config/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logLevel, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		log.Fatalf("Invalid logger level: %v", err)
	}
	logger.Init(logLevel)

	serviceLogger := logger.New("WorkspaceService")

	// Build the in-memory store and recreate the demo workspace. Everything
	// lives in process memory and is reset on restart.
	memStore := store.NewMemoryStore()
	seedUser, err := memStore.Seed(context.Background())
	if err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Fatal("Failed to seed workspace data")
	}
	serviceLogger.Info("Workspace seeded for user " + seedUser.Username)

	// Wire services and handlers
	workspaceService := service.NewWorkspaceService(memStore, serviceLogger)
	connManager := service.NewConnectionManager()
	delays := service.Delays{
		ConsolePacing:    cfg.Stream.ConsolePacingDuration(),
		ExplanationDelay: cfg.Stream.ExplanationDelayDuration(),
		AiResponseDelay:  cfg.Stream.AiResponseDelayDuration(),
	}
	streamService := service.NewStreamService(workspaceService, connManager, delays, seedUser.ID, serviceLogger)

	gin.SetMode(gin.ReleaseMode)
	apiHandler := api.NewAPI(workspaceService, streamService, serviceLogger)
	router := api.SetupRouter(apiHandler, serviceLogger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: corsHandler,
	}

	// Start server
	go func() {
		serviceLogger.Info("Starting HTTP server on " + srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Fatal("HTTP server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	serviceLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Server forced to shutdown")
	}

	// Cancel pending stream emissions and close the sockets last so no timer
	// writes to a dead connection.
	streamService.CloseAll()

	serviceLogger.Info("Server gracefully stopped")
}
