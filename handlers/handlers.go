// Package handlers binds the filter inputs and the overlay routes to
// the query pipeline and the templates. Handlers hold no state beyond
// the loaded catalog and a clock; every request re-renders the full
// page from the current parameter values.
package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"showshelf/lib/catalog"
	"showshelf/lib/grid"
	"showshelf/lib/overlay"
	"showshelf/lib/types"
	"showshelf/lib/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates(files ...string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}
	return template.New("").Funcs(funcMap).ParseFS(templateFS, files...)
}

type errorData struct {
	Message string
}

func renderError(w http.ResponseWriter, message string, status int) {
	tmpl, err := parseTemplates("templates/base.html", "templates/error.html")
	if err != nil {
		slog.Error("Failed to parse error template", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", errorData{Message: message}); err != nil {
		slog.Error("Failed to execute error template", slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// cardView pairs a card with its fully built activation URL. URLs are
// assembled here rather than in the template so the preserved filter
// params are not re-escaped as a query component.
type cardView struct {
	grid.Card
	URL string
}

// browsePage is the template data for the grid page, with or without
// the overlay open.
type browsePage struct {
	Cards     []cardView
	Stats     types.StatsData
	Genres    []string
	SortModes []string
	AllGenres string
	Genre     string
	Query     string
	Sort      string
	Total     int
	BackURL   string
	Overlay   *overlay.Overlay
}

// HandleBrowse renders the catalog grid for the current genre, search
// and sort parameters. All three are read together per request, so the
// result always reflects the latest committed combination.
func HandleBrowse(records []catalog.Record, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		renderBrowse(w, req, records, now, overlay.New())
	}
}

// HandleShow renders the grid with the detail overlay open for the
// record in the URL. An unknown or malformed id degrades to the plain
// grid with the overlay closed rather than erroring.
func HandleShow(records []catalog.Record, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ov := overlay.New()

		raw := chi.URLParam(req, "id")
		id, err := validation.ValidateShowID(raw)
		if err != nil {
			slog.Warn("Ignoring invalid show id", slog.String("id", raw), slog.Any("error", err))
		} else if rec, ok := findRecord(records, id); ok {
			ov.Open(rec)
		} else {
			slog.Warn("Show not found", slog.Int("id", id))
		}

		renderBrowse(w, req, records, now, ov)
	}
}

func renderBrowse(w http.ResponseWriter, req *http.Request, records []catalog.Record, now func() time.Time, ov *overlay.Overlay) {
	genre := req.URL.Query().Get("genre")
	query := req.URL.Query().Get("q")
	sortMode := req.URL.Query().Get("sort")

	visible := catalog.Run(records, genre, query, sortMode)
	cards := grid.Build(visible, now())
	stats := types.Collect(records)
	params := filterParams(genre, query, sortMode)

	backURL := "/"
	if params != "" {
		backURL = "/?" + params
	}

	views := make([]cardView, 0, len(cards))
	for _, c := range cards {
		u := fmt.Sprintf("/shows/%d", c.ID)
		if params != "" {
			u += "?" + params
		}
		views = append(views, cardView{Card: c, URL: u})
	}

	page := browsePage{
		Cards:     views,
		Stats:     stats,
		Genres:    stats.Genres(),
		SortModes: catalog.SortModes,
		AllGenres: catalog.AllGenres,
		Genre:     genre,
		Query:     query,
		Sort:      sortMode,
		Total:     len(cards),
		BackURL:   backURL,
		Overlay:   ov,
	}

	tmpl, err := parseTemplates("templates/base.html", "templates/browse.html")
	if err != nil {
		slog.Error("Failed to parse template", slog.Any("error", err))
		renderError(w, "Something went wrong while loading the page.", http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "base.html", page); err != nil {
		slog.Error("Failed to execute template", slog.Any("error", err))
		renderError(w, "Something went wrong while displaying the page.", http.StatusInternalServerError)
	}
}

// filterParams encodes the current filter values so card links and
// overlay dismissal preserve them.
func filterParams(genre, query, sortMode string) string {
	v := url.Values{}
	if genre != "" {
		v.Set("genre", genre)
	}
	if query != "" {
		v.Set("q", query)
	}
	if sortMode != "" {
		v.Set("sort", sortMode)
	}
	return v.Encode()
}

func findRecord(records []catalog.Record, id int) (catalog.Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return catalog.Record{}, false
}
