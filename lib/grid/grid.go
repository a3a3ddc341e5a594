// Package grid projects an ordered record sequence into the card
// view-models consumed by the browse template.
package grid

import (
	"fmt"
	"time"

	"showshelf/lib/catalog"
)

// Card is the per-record view-model for one grid entry. AriaLabel
// combines title, season count, and last-updated so assistive
// technology announces the whole card in one go.
type Card struct {
	ID          int
	Title       string
	Cover       string
	SeasonLabel string
	Genres      []string
	LastUpdated string
	AriaLabel   string
}

// Build returns one card per record, in input order. An empty input
// yields zero cards; the template renders the empty-state marker in
// that case.
func Build(records []catalog.Record, now time.Time) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		seasons := SeasonLabel(r.SeasonCount())
		updated := r.LastUpdated(now)
		cards = append(cards, Card{
			ID:          r.ID,
			Title:       r.Title,
			Cover:       r.Cover,
			SeasonLabel: seasons,
			Genres:      r.Genres,
			LastUpdated: updated,
			AriaLabel:   fmt.Sprintf("%s, %s, %s", r.Title, seasons, updated),
		})
	}
	return cards
}

// SeasonLabel pluralizes the season count: "1 season", "3 seasons".
func SeasonLabel(n int) string {
	if n == 1 {
		return "1 season"
	}
	return fmt.Sprintf("%d seasons", n)
}
