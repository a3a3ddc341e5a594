package catalog

import (
	"sort"
	"strings"
)

// Sort modes recognized by SortBy. Anything else falls back to recency.
const (
	SortMostPopular     = "Most Popular"
	SortNewest          = "Newest"
	SortRecentlyUpdated = "Recently Updated"
)

// SortModes lists the modes offered in the sort dropdown, in display
// order.
var SortModes = []string{SortRecentlyUpdated, SortMostPopular, SortNewest}

// FilterByGenre returns the records whose genre list contains genre,
// preserving input order. The empty string and AllGenres match every
// record. The result is always a fresh slice; the input is never
// mutated.
func FilterByGenre(records []Record, genre string) []Record {
	out := make([]Record, 0, len(records))
	if genre == "" || genre == AllGenres {
		return append(out, records...)
	}

	for _, r := range records {
		for _, g := range r.Genres {
			if g == genre {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ApplySearch retains records whose title or space-joined genre list
// contains query, case-insensitively. Query is trimmed first; a blank
// query passes everything through.
func ApplySearch(records []Record, query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Record, 0, len(records))
	if q == "" {
		return append(out, records...)
	}

	for _, r := range records {
		title := strings.ToLower(r.Title)
		genres := strings.ToLower(strings.Join(r.Genres, " "))
		if strings.Contains(title, q) || strings.Contains(genres, q) {
			out = append(out, r)
		}
	}
	return out
}

// SortBy returns a new, stably sorted slice. SortMostPopular orders by
// popularity descending with ties keeping input order; every other
// mode, including unrecognized ones, orders by update time descending.
func SortBy(records []Record, mode string) []Record {
	out := append(make([]Record, 0, len(records)), records...)
	if mode == SortMostPopular {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popularity > out[j].Popularity
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Run derives the visible record sequence from the full dataset:
// filter by genre, then search, then sort. Sort is the final stage.
func Run(records []Record, genre, query, mode string) []Record {
	return SortBy(ApplySearch(FilterByGenre(records, genre), query), mode)
}
