// Package main is the entry point for the flight record service.
//
//	@title						Flight Record API
//	@version					1.0.0
//	@description				A personal flight logbook service that validates, normalizes and deduplicates flight records across timezones.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flightlog/flight-record-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flightlog/flight-record-service/docs"

	flighthttp "github.com/flightlog/flight-record-service/internal/adapter/http"
	"github.com/flightlog/flight-record-service/internal/adapter/http/middleware"
	"github.com/flightlog/flight-record-service/internal/adapter/store"
	"github.com/flightlog/flight-record-service/internal/config"
	"github.com/flightlog/flight-record-service/internal/infrastructure/logger"
	"github.com/flightlog/flight-record-service/internal/usecase"
)

const (
	connectTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-record",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("db_driver", cfg.Database.Driver).
		Msg("Configuration loaded")

	// Open the database, waiting for it to accept connections.
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	st, err := store.Open(ctx, cfg.Database, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	// Wire the application layers.
	recorder := usecase.NewFlightRecorder(st, log)
	importer := usecase.NewImporter(st, log)
	handler := flighthttp.NewFlightHandler(recorder, importer, st)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown stops the server cleanly on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
