package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/hackynews/hackynews/pkg/config"
	"github.com/hackynews/hackynews/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	db         Database
	syncer     Syncer
	classifier Classifier
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for read queries and sync status
type Database interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ClassifiedItem, error)
	SearchItems(ctx context.Context, term, category string, limit int) ([]domain.ClassifiedItem, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	Stats(ctx context.Context) (domain.Stats, error)
	TopItems(ctx context.Context, scope domain.TopScope, limit int) ([]domain.ClassifiedItem, error)
	TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	LastSyncRun(ctx context.Context) (*domain.SyncRun, error)
}

// Syncer interface for on-demand sync and backfill
type Syncer interface {
	Sync(ctx context.Context, limit int) (domain.SyncRun, error)
	Reclassify(ctx context.Context) (int, error)
}

// Classifier interface for ad-hoc title classification
type Classifier interface {
	Classify(ctx context.Context, title string) domain.Category
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFullConfig() *config.Config
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, syncer Syncer, classifier Classifier, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		db:         db,
		syncer:     syncer,
		classifier: classifier,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		// on-demand sync may take a while, leave room for it
		WriteTimeout: 2 * timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("hackynews", "hackynews", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(log.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
		r.HandleFunc("GET /stats/top-recent", s.topRecentHandler)
		r.HandleFunc("GET /stats/top-alltime", s.topAllTimeHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /autocomplete", s.autocompleteHandler)
		r.HandleFunc("GET /classify", s.classifyHandler)
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /update", s.updateHandler)
		r.HandleFunc("POST /reclassify", s.reclassifyHandler)

		// the root not-found handler would answer 404 for other methods
		r.HandleFunc("/update", methodNotAllowed(http.MethodPost))
		r.HandleFunc("/reclassify", methodNotAllowed(http.MethodPost))
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
}

// methodNotAllowed answers 405 with Allow header for a path served under other methods
func methodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		renderError(w, r, fmt.Errorf("method %s not allowed", r.Method), http.StatusMethodNotAllowed)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
