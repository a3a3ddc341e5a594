package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"

	"showshelf/lib/catalog"
)

var testNow = time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return time.Date(2026, time.August, n, 0, 0, 0, 0, time.UTC)
}

func testRecords() []catalog.Record {
	return []catalog.Record{
		{ID: 1, Title: "Something Was Wrong", Genres: []string{"True Crime", "Documentary"}, Popularity: 95, UpdatedAt: day(14), Seasons: []catalog.Season{{Title: "Season 1", Episodes: 14}}},
		{ID: 2, Title: "This American Life", Genres: []string{"Society", "Storytelling"}, Popularity: 88, UpdatedAt: day(20), Seasons: []catalog.Season{{Title: "Archive", Episodes: 24}}},
		{ID: 3, Title: "Planet Money", Genres: []string{"Business", "Economics"}, Popularity: 82, UpdatedAt: day(2), Seasons: []catalog.Season{{Title: "Season 1", Episodes: 20}}},
		{ID: 4, Title: "Crime Junkie", Genres: []string{"True Crime"}, Popularity: 91, UpdatedAt: day(22), Seasons: []catalog.Season{{Title: "Season 1", Episodes: 18}, {Title: "Season 2", Episodes: 16}}},
		{ID: 5, Title: "Conan O'Brien Needs a Friend", Genres: []string{"Comedy"}, Popularity: 70, UpdatedAt: day(10), Seasons: []catalog.Season{{Title: "Season 1", Episodes: 30}}},
		{ID: 6, Title: "Serial", Genres: []string{"True Crime", "Investigative"}, Popularity: 99, UpdatedAt: day(1), Seasons: []catalog.Season{{Title: "Season 1", Episodes: 12}}},
		{ID: 7, Title: "Hardcore History", Genres: []string{"History"}, Popularity: 76, UpdatedAt: day(3), Seasons: []catalog.Season{{Title: "Blueprint", Episodes: 6}}},
		{ID: 8, Title: "Science Vs", Genres: []string{"Science", "Society"}, Popularity: 85, UpdatedAt: day(17), Seasons: []catalog.Season{{Title: "Season 1", Episodes: 22}}},
	}
}

func testRouter(records []catalog.Record) *chi.Mux {
	now := func() time.Time { return testNow }
	r := chi.NewRouter()
	r.Get("/", HandleBrowse(records, now))
	r.Get("/shows/{id}", HandleShow(records, now))
	return r
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("failed to parse response HTML: %v", err)
	}
	return doc
}

func TestBrowseRendersAllCards(t *testing.T) {
	rec := get(t, testRouter(testRecords()), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	doc := document(t, rec)
	if got := doc.Find(".card").Length(); got != 8 {
		t.Errorf("rendered %d cards, want 8", got)
	}

	// One option per distinct genre plus the sentinel.
	if got := doc.Find("select[name=genre] option").Length(); got != 11 {
		t.Errorf("genre dropdown has %d options, want 11", got)
	}

	if got, _ := doc.Find("#overlay-backdrop").Attr("aria-hidden"); got != "true" {
		t.Errorf("overlay aria-hidden = %q, want true", got)
	}
}

func TestBrowseFiltersByGenre(t *testing.T) {
	doc := document(t, get(t, testRouter(testRecords()), "/?genre=Comedy"))

	cards := doc.Find(".card")
	if cards.Length() != 1 {
		t.Fatalf("rendered %d cards, want 1", cards.Length())
	}
	if title := cards.Find("h2").Text(); title != "Conan O'Brien Needs a Friend" {
		t.Errorf("card title = %q", title)
	}

	// Card activation preserves the committed filter values.
	if href, _ := cards.Attr("href"); href != "/shows/5?genre=Comedy" {
		t.Errorf("card href = %q, want /shows/5?genre=Comedy", href)
	}
}

func TestBrowseSearches(t *testing.T) {
	doc := document(t, get(t, testRouter(testRecords()), "/?q=JuNkIe"))

	cards := doc.Find(".card")
	if cards.Length() != 1 {
		t.Fatalf("rendered %d cards, want 1", cards.Length())
	}
	if title := cards.Find("h2").Text(); title != "Crime Junkie" {
		t.Errorf("card title = %q", title)
	}
}

func TestBrowseSortsByPopularity(t *testing.T) {
	doc := document(t, get(t, testRouter(testRecords()), "/?sort=Most+Popular"))

	var titles []string
	doc.Find(".card h2").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	if len(titles) != 8 {
		t.Fatalf("rendered %d cards, want 8", len(titles))
	}
	if titles[0] != "Serial" {
		t.Errorf("first card = %q, want Serial (popularity 99)", titles[0])
	}
	if titles[7] != "Conan O'Brien Needs a Friend" {
		t.Errorf("last card = %q, want the least popular show", titles[7])
	}
}

func TestBrowseEmptyState(t *testing.T) {
	doc := document(t, get(t, testRouter(testRecords()), "/?q=zzzz"))

	if got := doc.Find(".card").Length(); got != 0 {
		t.Errorf("rendered %d cards, want 0", got)
	}
	if doc.Find(".empty-state").Length() != 1 {
		t.Error("empty result should render the empty-state marker")
	}
}

func TestShowOpensOverlay(t *testing.T) {
	doc := document(t, get(t, testRouter(testRecords()), "/shows/4?genre=True+Crime"))

	if got, _ := doc.Find("#overlay-backdrop").Attr("aria-hidden"); got != "false" {
		t.Fatalf("overlay aria-hidden = %q, want false", got)
	}
	if title := doc.Find("#overlay-title").Text(); title != "Crime Junkie" {
		t.Errorf("overlay title = %q", title)
	}
	if got := doc.Find(".overlay .seasons li").Length(); got != 2 {
		t.Errorf("overlay lists %d seasons, want 2", got)
	}

	// Dismissal must land back on the filtered grid, and the close
	// control must take focus on open.
	href, _ := doc.Find("#overlay-close").Attr("href")
	if href != "/?genre=True+Crime" {
		t.Errorf("close href = %q, want /?genre=True+Crime", href)
	}
	if _, ok := doc.Find("#overlay-close").Attr("autofocus"); !ok {
		t.Error("close control should carry autofocus")
	}
}

func TestShowUnknownIDDegradesToGrid(t *testing.T) {
	for _, target := range []string{"/shows/999", "/shows/abc"} {
		rec := get(t, testRouter(testRecords()), target)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", target, rec.Code)
		}

		doc := document(t, rec)
		if got, _ := doc.Find("#overlay-backdrop").Attr("aria-hidden"); got != "true" {
			t.Errorf("GET %s: overlay aria-hidden = %q, want true", target, got)
		}
		if got := doc.Find(".card").Length(); got != 8 {
			t.Errorf("GET %s rendered %d cards, want 8", target, got)
		}
	}
}

func TestUserContentIsEscaped(t *testing.T) {
	records := []catalog.Record{{
		ID:          1,
		Title:       `<script>alert('pwn')</script>Show`,
		Description: `<img src=x onerror=alert('pwn')>`,
		Genres:      []string{`<b>Genre</b>`},
		Seasons:     []catalog.Season{{Title: `<i>Season</i>`, Episodes: 1}},
		UpdatedAt:   day(20),
	}}

	rec := get(t, testRouter(records), "/shows/1")
	body := rec.Body.String()

	if strings.Contains(body, "alert('pwn')") {
		t.Error("free text reached the page unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("title should be entity-escaped in the rendered page")
	}
	if strings.Contains(body, "<b>Genre</b>") || strings.Contains(body, "<i>Season</i>") {
		t.Error("genre and season names should never be interpreted as markup")
	}
}
