package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"showshelf/lib/lock"
	"showshelf/models"
)

//go:embed seed.json
var seedJSON []byte

// seedTimeout bounds how long a starting instance waits for another
// instance's seed to finish.
const seedTimeout = 10 * time.Second

type seedSeason struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Episodes    int    `json:"episodes"`
}

type seedShow struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Cover       string       `json:"cover"`
	Description string       `json:"description"`
	Genres      []string     `json:"genres"`
	UpdatedAt   string       `json:"updated_at"`
	Popularity  float64      `json:"popularity"`
	Seasons     []seedSeason `json:"seasons"`
}

// Seed inserts the embedded dataset when the shows table is empty. The
// file lock keeps two instances pointed at the same database file from
// interleaving the seed.
func Seed(ctx context.Context, gormDB *gorm.DB, logger *slog.Logger) error {
	fl := lock.NewFileLock(logger)
	ok, err := fl.TryLock(ctx, "catalog-seed", seedTimeout)
	if err != nil {
		return fmt.Errorf("failed to acquire seed lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("timed out waiting for seed lock")
	}
	defer func() {
		if err := fl.Unlock(ctx, "catalog-seed"); err != nil {
			logger.Error("Failed to release seed lock", slog.Any("error", err))
		}
	}()

	var count int64
	if err := gormDB.WithContext(ctx).Model(&models.Show{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count shows: %w", err)
	}
	if count > 0 {
		logger.Debug("Catalog already seeded", slog.Int64("shows", count))
		return nil
	}

	var seeds []seedShow
	if err := json.Unmarshal(seedJSON, &seeds); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	for _, s := range seeds {
		show := models.Show{
			ID:          uint(s.ID),
			Title:       s.Title,
			Cover:       s.Cover,
			Description: s.Description,
			Genres:      strings.Join(s.Genres, ", "),
			Popularity:  s.Popularity,
			UpdatedOn:   s.UpdatedAt,
		}
		for i, se := range s.Seasons {
			show.Seasons = append(show.Seasons, models.Season{
				Position:    i + 1,
				Title:       se.Title,
				Description: se.Description,
				Episodes:    se.Episodes,
			})
		}
		if err := gormDB.WithContext(ctx).Create(&show).Error; err != nil {
			return fmt.Errorf("failed to seed show %q: %w", s.Title, err)
		}
	}

	logger.Info("Seeded catalog", slog.Int("shows", len(seeds)))
	return nil
}
