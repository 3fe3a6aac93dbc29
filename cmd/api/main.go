// Package main is the entry point for the polycal API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/polycal/polycal/internal/api"
	"github.com/polycal/polycal/internal/calendar"
	"github.com/polycal/polycal/internal/config"
	"github.com/polycal/polycal/internal/database"
	"github.com/polycal/polycal/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting polycal API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	if err := restoreCalendars(ctx, db, log); err != nil {
		return fmt.Errorf("restore calendars: %w", err)
	}

	handlers := api.NewHandlers(db, cfg, log)
	router := api.SetupRoutes(handlers, cfg, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// restoreCalendars re-registers every stored calendar definition. The
// registry treats a definition identical to an already registered variant as
// a no-op, so restarts and built-in overlaps are harmless.
func restoreCalendars(ctx context.Context, db *database.DB, log *slog.Logger) error {
	defs, err := db.ListDefinitions(ctx)
	if err != nil {
		return err
	}

	for _, def := range defs {
		_, err := calendar.New(def.Name, calendar.Cycle(def.Cycle), calendar.Options(def.Options))
		if err != nil {
			// A definition that no longer compiles should not block startup;
			// the remaining calendars are still served.
			log.Error("skipping stored calendar definition",
				slog.String("name", def.Name),
				slog.Any("error", err))
			continue
		}
		log.Info("calendar restored", slog.String("name", def.Name))
	}

	log.Info("calendar registry ready",
		slog.Int("stored", len(defs)),
		slog.Int("registered", len(calendar.Names())),
	)
	return nil
}
