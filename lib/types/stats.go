package types

import (
	"sort"

	"showshelf/lib/catalog"
)

// StatsData represents statistics about the loaded catalog.
type StatsData struct {
	TotalShows        int
	GenreDistribution []GenreCount
}

// GenreCount is the number of shows carrying one genre tag.
type GenreCount struct {
	Genre string
	Count int
}

// Collect computes catalog statistics from the full record set. The
// genre distribution is sorted alphabetically so it doubles as the
// option list for the genre dropdown.
func Collect(records []catalog.Record) StatsData {
	counts := map[string]int{}
	for _, r := range records {
		for _, g := range r.Genres {
			counts[g]++
		}
	}

	dist := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		dist = append(dist, GenreCount{Genre: g, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Genre < dist[j].Genre })

	return StatsData{
		TotalShows:        len(records),
		GenreDistribution: dist,
	}
}

// Genres returns just the genre names from the distribution, in order.
func (s StatsData) Genres() []string {
	out := make([]string, 0, len(s.GenreDistribution))
	for _, gc := range s.GenreDistribution {
		out = append(out, gc.Genre)
	}
	return out
}
