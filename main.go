package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"showshelf/handlers"
	"showshelf/lib/config"
	"showshelf/lib/db"
	"showshelf/lib/health"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
	logger := slog.Default()

	ctx := context.Background()

	gormDB, err := db.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Error("Failed to open catalog store", slog.Any("error", err))
		os.Exit(1)
	}

	// The catalog is read once at startup; records are immutable for
	// the life of the process.
	records, err := db.LoadCatalog(ctx, gormDB)
	if err != nil {
		logger.Error("Failed to load catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Catalog loaded", slog.Int("shows", len(records)))

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", handlers.HandleBrowse(records, time.Now))
	r.Get("/shows/{id}", handlers.HandleShow(records, time.Now))
	r.Get("/healthz", health.Check(gormDB))

	addr := ":" + cfg.Port
	logger.Info("Starting server", slog.String("addr", addr), slog.String("env", cfg.Env))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("Server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
