package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"gorm.io/gorm"

	"showshelf/models"
)

// Health is the /healthz response: overall status plus the catalog
// store's reachability and size.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Catalog   struct {
		Status string `json:"status"`
		Shows  int64  `json:"shows,omitempty"`
	} `json:"catalog"`
}

// Check returns an HTTP handler that pings the catalog store and
// reports how many shows it holds.
func Check(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := Health{
			Status:    "ok",
			Timestamp: time.Now(),
		}

		sqlDB, err := db.DB()
		if err != nil {
			health.Status = "degraded"
			health.Catalog.Status = "error"
			writeHealth(w, health, http.StatusServiceUnavailable)
			return
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			health.Status = "degraded"
			health.Catalog.Status = "error"
			writeHealth(w, health, http.StatusServiceUnavailable)
			return
		}

		var shows int64
		if err := db.WithContext(ctx).Model(&models.Show{}).Count(&shows).Error; err != nil {
			health.Status = "degraded"
			health.Catalog.Status = "error"
			writeHealth(w, health, http.StatusServiceUnavailable)
			return
		}

		health.Catalog.Status = "ok"
		health.Catalog.Shows = shows
		writeHealth(w, health, http.StatusOK)
	}
}

func writeHealth(w http.ResponseWriter, health Health, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Error("Failed to encode health response", slog.Any("error", err))
	}
}
