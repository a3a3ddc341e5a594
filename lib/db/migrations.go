package db

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"showshelf/models"
)

// RunMigrations brings the catalog schema up to date.
func RunMigrations(db *gorm.DB, logger *slog.Logger) error {
	ctx := context.Background()

	if err := enableSQLiteOptimizations(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to enable SQLite optimizations: %w", err)
	}

	if err := db.AutoMigrate(&models.Show{}, &models.Season{}); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	if err := createIndexes(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// enableSQLiteOptimizations enables SQLite-specific optimizations
func enableSQLiteOptimizations(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	optimizations := []string{
		"PRAGMA journal_mode=WAL",   // Enable WAL mode for better concurrency
		"PRAGMA synchronous=NORMAL", // Faster writes while maintaining safety
		"PRAGMA foreign_keys=ON",    // Enable foreign key constraints
		"PRAGMA temp_store=MEMORY",  // Store temporary tables in memory
	}

	for _, pragma := range optimizations {
		if err := db.WithContext(ctx).Exec(pragma).Error; err != nil {
			logger.Warn("Failed to execute pragma", slog.String("pragma", pragma), slog.Any("error", err))
		} else {
			logger.Debug("Executed pragma", slog.String("pragma", pragma))
		}
	}

	return nil
}

// createIndexes creates indexes for the lookups the loader performs.
func createIndexes(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_shows_title ON shows(title)",
		"CREATE INDEX IF NOT EXISTS idx_seasons_show_position ON seasons(show_id, position)",
	}

	for _, indexSQL := range indexes {
		if err := db.WithContext(ctx).Exec(indexSQL).Error; err != nil {
			logger.Warn("Failed to create index", slog.String("sql", indexSQL), slog.Any("error", err))
		} else {
			logger.Debug("Created index", slog.String("sql", indexSQL))
		}
	}

	return nil
}
