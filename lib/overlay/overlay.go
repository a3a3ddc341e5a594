// Package overlay holds the two-state detail component shown over the
// grid. The open/closed flag here is the single source of truth for
// whether the dismissal handling in the template is active.
package overlay

import (
	"fmt"

	"showshelf/lib/catalog"
)

// SeasonEntry is one season row in the detail view. Description is the
// empty string when the source season has none.
type SeasonEntry struct {
	Title        string
	Description  string
	EpisodeLabel string
}

// Detail is the view-model for an open overlay. All free-text fields
// pass through html/template's contextual escaping when rendered.
type Detail struct {
	ID          int
	Title       string
	Cover       string
	Description string
	Genres      []string
	UpdatedOn   string
	Seasons     []SeasonEntry
}

// Overlay is the detail component. The zero value is closed.
type Overlay struct {
	open   bool
	detail *Detail
}

// New returns a closed overlay.
func New() *Overlay {
	return &Overlay{}
}

// Open transitions to the open state showing record's detail view.
// Opening while already open replaces the previous content.
func (o *Overlay) Open(r catalog.Record) {
	seasons := make([]SeasonEntry, 0, len(r.Seasons))
	for _, s := range r.Seasons {
		seasons = append(seasons, SeasonEntry{
			Title:        s.Title,
			Description:  s.Description,
			EpisodeLabel: episodeLabel(s.Episodes),
		})
	}

	o.detail = &Detail{
		ID:          r.ID,
		Title:       r.Title,
		Cover:       r.Cover,
		Description: r.Description,
		Genres:      r.Genres,
		UpdatedOn:   r.FullDate(),
		Seasons:     seasons,
	}
	o.open = true
}

// Close transitions to the closed state and clears the detail content.
// Closing an already-closed overlay is a no-op.
func (o *Overlay) Close() {
	o.open = false
	o.detail = nil
}

// IsOpen reports whether the overlay is open.
func (o *Overlay) IsOpen() bool {
	return o.open
}

// Detail returns the current content, or nil when closed.
func (o *Overlay) Detail() *Detail {
	return o.detail
}

func episodeLabel(n int) string {
	if n == 1 {
		return "1 episode"
	}
	return fmt.Sprintf("%d episodes", n)
}
