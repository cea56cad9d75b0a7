package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/hackynews/hackynews/pkg/category"
	"github.com/hackynews/hackynews/pkg/domain"
	"github.com/hackynews/hackynews/pkg/feed"
)

const defaultRSSLimit = 50

// rssHandler serves RSS feed of recent items.
// Supports both /rss/{category} and /rss?category=... patterns
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("category")
	if name == "" {
		name = r.URL.Query().Get("category")
	}

	var cat domain.Category
	if name != "" && !strings.EqualFold(name, "all") {
		c, ok := category.Parse(name)
		if !ok {
			renderError(w, r, fmt.Errorf("unknown category %q", name), http.StatusNotFound)
			return
		}
		cat = c
	}

	items, err := s.db.ListItems(r.Context(), domain.ItemFilter{Category: string(cat), Limit: defaultRSSLimit})
	if err != nil {
		log.Printf("[ERROR] failed to get items for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	cfg := s.config.GetFullConfig()
	generator := feed.NewGenerator(cfg.Server.BaseURL, syncInterval(cfg.Sync.Schedule))

	rss, err := generator.GenerateRSS(items, string(cat))
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// syncInterval estimates time between scheduled syncs, used as feed ttl. Zero if schedule is invalid.
func syncInterval(schedule string) time.Duration {
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return 0
	}
	next := sched.Next(time.Now())
	return sched.Next(next).Sub(next)
}
