// Package db owns the catalog store: a SQLite database seeded once
// from the embedded dataset and read into memory at startup. It is the
// data-loading collaborator for the query pipeline; nothing else in
// the repo touches gorm.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"showshelf/lib/catalog"
	"showshelf/models"
)

// Open connects to the SQLite catalog at path, runs migrations, and
// seeds the embedded dataset when the store is empty.
func Open(ctx context.Context, path string, logger *slog.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(gormDB, logger); err != nil {
		return nil, err
	}

	if err := Seed(ctx, gormDB, logger); err != nil {
		return nil, err
	}

	return gormDB, nil
}

// LoadCatalog reads the full show catalog in insertion order and
// converts the rows into the records the query pipeline works on.
func LoadCatalog(ctx context.Context, gormDB *gorm.DB) ([]catalog.Record, error) {
	var shows []models.Show
	err := gormDB.WithContext(ctx).
		Preload("Seasons", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Order("id").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shows: %w", err)
	}

	records := make([]catalog.Record, 0, len(shows))
	for _, s := range shows {
		records = append(records, catalog.NewRecord(sourceFromShow(s)))
	}
	return records, nil
}

func sourceFromShow(s models.Show) catalog.Source {
	seasons := make([]catalog.Season, 0, len(s.Seasons))
	for _, se := range s.Seasons {
		seasons = append(seasons, catalog.Season{
			Title:       se.Title,
			Description: se.Description,
			Episodes:    se.Episodes,
		})
	}

	return catalog.Source{
		ID:          int(s.ID),
		Title:       s.Title,
		Cover:       s.Cover,
		Description: s.Description,
		Genres:      splitGenres(s.Genres),
		Seasons:     seasons,
		UpdatedAt:   s.UpdatedOn,
		Popularity:  s.Popularity,
	}
}

// splitGenres undoes the comma-joined storage form. An empty column
// yields an empty, non-nil list.
func splitGenres(joined string) []string {
	if joined == "" {
		return []string{}
	}

	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
