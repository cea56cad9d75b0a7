package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/samber/lo"

	"github.com/hackynews/hackynews/pkg/domain"
	"github.com/hackynews/hackynews/pkg/ingest"
	"github.com/hackynews/hackynews/pkg/repository"
)

// suggestion is a single autocomplete entry
type suggestion struct {
	Value string `json:"value"`
}

// statusHandler returns server status with the last sync summary
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	run, err := s.db.LastSyncRun(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to get last sync run: %v", err)
	}
	if run != nil {
		status["last_sync"] = run
	}
	renderJSON(w, r, http.StatusOK, status)
}

// newsHandler lists recent items, optionally in one category
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, repository.DefaultListLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items, err := s.db.ListItems(r.Context(), domain.ItemFilter{Category: r.URL.Query().Get("category"), Limit: limit})
	if err != nil {
		log.Printf("[ERROR] failed to list items: %v", err)
		renderError(w, r, errors.New("failed to list items"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// categoriesHandler returns item counts per category
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.db.CategoryCounts(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get category counts: %v", err)
		renderError(w, r, errors.New("failed to get categories"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, counts)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.Stats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, errors.New("failed to get stats"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

func (s *Server) topRecentHandler(w http.ResponseWriter, r *http.Request) {
	s.topItems(w, r, domain.TopRecent)
}

func (s *Server) topAllTimeHandler(w http.ResponseWriter, r *http.Request) {
	s.topItems(w, r, domain.TopAllTime)
}

func (s *Server) topItems(w http.ResponseWriter, r *http.Request, scope domain.TopScope) {
	limit, err := queryLimit(r, repository.DefaultTopLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items, err := s.db.TopItems(r.Context(), scope, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get top %s items: %v", scope, err)
		renderError(w, r, errors.New("failed to get top items"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// searchHandler finds items by title, url or author substring
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		renderError(w, r, errors.New("query parameter q is required"), http.StatusBadRequest)
		return
	}
	limit, err := queryLimit(r, repository.DefaultSearchLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items, err := s.db.SearchItems(r.Context(), q, r.URL.Query().Get("category"), limit)
	if err != nil {
		log.Printf("[ERROR] failed to search items for %q: %v", q, err)
		renderError(w, r, errors.New("search failed"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// autocompleteHandler suggests titles by prefix, empty prefix gives empty list
func (s *Server) autocompleteHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		renderJSON(w, r, http.StatusOK, []suggestion{})
		return
	}
	limit, err := queryLimit(r, repository.DefaultSuggestLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	titles, err := s.db.TitleSuggestions(r.Context(), q, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get suggestions for %q: %v", q, err)
		renderError(w, r, errors.New("autocomplete failed"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, lo.Map(titles, func(t string, _ int) suggestion { return suggestion{Value: t} }))
}

// classifyHandler classifies an arbitrary title without storing it
func (s *Server) classifyHandler(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		renderError(w, r, errors.New("query parameter title is required"), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"title": title, "category": s.classifier.Classify(r.Context(), title)})
}

// updateHandler runs an on-demand sync and reports how many items were stored
func (s *Server) updateHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, s.config.GetFullConfig().Sync.UpdateLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	run, err := s.syncer.Sync(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] on-demand sync failed: %v", err)
		code := http.StatusInternalServerError
		if errors.Is(err, ingest.ErrInvalidLimit) {
			code = http.StatusBadRequest
		}
		renderError(w, r, fmt.Errorf("sync failed: %w", err), code)
		return
	}

	renderJSON(w, r, http.StatusOK, rest.JSON{
		"status":    "ok",
		"message":   fmt.Sprintf("stored %d of %d items", run.Stored, run.Requested),
		"stored":    run.Stored,
		"processed": run.Processed,
	})
}

// reclassifyHandler re-runs classification over stored items
func (s *Server) reclassifyHandler(w http.ResponseWriter, r *http.Request) {
	changed, err := s.syncer.Reclassify(r.Context())
	if err != nil {
		log.Printf("[ERROR] reclassify failed: %v", err)
		renderError(w, r, fmt.Errorf("reclassify failed: %w", err), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"status": "ok", "changed": changed})
}

// queryLimit parses optional limit parameter, returns def if absent
func queryLimit(r *http.Request, def int) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit %q", v)
	}
	return limit, nil
}
