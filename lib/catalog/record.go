package catalog

import (
	"fmt"
	"time"
)

// AllGenres is the sentinel filter value that matches every record.
const AllGenres = "All Genres"

// Season is one season of a show. Description may be empty.
type Season struct {
	Title       string
	Description string
	Episodes    int
}

// Source is the raw record shape supplied by the data-loading
// collaborator. UpdatedAt is an ISO date string.
type Source struct {
	ID          int
	Title       string
	Cover       string
	Description string
	Genres      []string
	Seasons     []Season
	UpdatedAt   string
	Popularity  float64
}

// Record is one immutable catalog entry. Build it with NewRecord so
// malformed source data is defaulted instead of propagated.
type Record struct {
	ID          int
	Title       string
	Cover       string
	Description string
	Genres      []string
	Seasons     []Season
	UpdatedAt   time.Time
	Popularity  float64
}

// NewRecord builds a Record from raw source values. Bad input defaults
// rather than fails: a nil genre list becomes an empty one, negative
// episode counts clamp to zero, and an unparseable update date
// normalizes to the zero time. One bad record never blanks the grid.
func NewRecord(src Source) Record {
	genres := src.Genres
	if genres == nil {
		genres = []string{}
	}

	seasons := make([]Season, 0, len(src.Seasons))
	for _, s := range src.Seasons {
		if s.Episodes < 0 {
			s.Episodes = 0
		}
		seasons = append(seasons, s)
	}

	return Record{
		ID:          src.ID,
		Title:       src.Title,
		Cover:       src.Cover,
		Description: src.Description,
		Genres:      genres,
		Seasons:     seasons,
		UpdatedAt:   parseUpdatedAt(src.UpdatedAt),
		Popularity:  src.Popularity,
	}
}

// parseUpdatedAt accepts either a full RFC 3339 timestamp or a plain
// date. Anything else maps to the zero time, which sorts last under
// recency but still renders.
func parseUpdatedAt(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

// SeasonCount returns the number of seasons.
func (r Record) SeasonCount() int {
	return len(r.Seasons)
}

// LastUpdated returns the human relative-update string for r as of now:
// "Updated today", "Updated yesterday", "Updated N days ago" below a
// week, then "Updated N weeks ago" (floor of days/7).
func (r Record) LastUpdated(now time.Time) string {
	days := int(now.Sub(r.UpdatedAt).Hours() / 24)
	switch {
	case days <= 0:
		return "Updated today"
	case days == 1:
		return "Updated yesterday"
	case days < 7:
		return fmt.Sprintf("Updated %d days ago", days)
	}

	weeks := days / 7
	if weeks == 1 {
		return "Updated 1 week ago"
	}
	return fmt.Sprintf("Updated %d weeks ago", weeks)
}

// FullDate returns the long-form update date shown in the detail view.
func (r Record) FullDate() string {
	return r.UpdatedAt.Format("January 2, 2006")
}
