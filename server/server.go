// Package server provides the JSON API and per-theme RSS feeds
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/makro/pkg/config"
	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/ingest"
	"github.com/umputun/makro/pkg/repository"
	"github.com/umputun/makro/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	ingester  Ingester
	scheduler Scheduler
	version   string
	debug     bool
	now       func() time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database is the storage used by handlers. Get methods return an error matching
// ErrNotFound for missing records.
type Database interface {
	LoadContent(ctx context.Context) ([]domain.ContentItem, error)
	GetContent(ctx context.Context, id string) (domain.ContentItem, error)
	DeleteContent(ctx context.Context, id string) error
	CountContent(ctx context.Context) (int, error)

	LoadSources(ctx context.Context) ([]domain.Source, error)
	GetSource(ctx context.Context, id string) (domain.Source, error)
	CreateSource(ctx context.Context, s domain.Source) error

	SetOutcome(ctx context.Context, contentID string, outcome domain.Outcome, ts time.Time) error
	LoadTrackRecords(ctx context.Context) (map[string]domain.TrackRecord, error)

	GetSetting(ctx context.Context, key string) (string, error)
	GetList(ctx context.Context, key string) ([]string, error)
	SetList(ctx context.Context, key string, vals []string) error

	AddFeed(ctx context.Context, f domain.Feed) error
	DeleteFeed(ctx context.Context, url string) error
}

// Ingester analyzes and stores submitted content
type Ingester interface {
	Add(ctx context.Context, item domain.ContentItem) (ingest.Result, error)
}

// Scheduler runs feed updates on demand and reports feed status
type Scheduler interface {
	UpdateNow(ctx context.Context) (scheduler.Report, error)
	Feeds(ctx context.Context) ([]domain.Feed, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFullConfig() *config.Config
}

// ErrNotFound is matched by Database errors for missing records
var ErrNotFound = repository.ErrNotFound

// New initializes a new server instance. Scheduler may be nil when feed polling is off.
func New(cfg ConfigProvider, db Database, ingester Ingester, sched Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		ingester:  ingester,
		scheduler: sched,
		version:   version,
		debug:     debug,
		now:       time.Now,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("makro", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /content", s.listContentHandler)
		r.HandleFunc("POST /content", s.createContentHandler)
		r.HandleFunc("GET /content/{id}", s.getContentHandler)
		r.HandleFunc("DELETE /content/{id}", s.deleteContentHandler)
		r.HandleFunc("PUT /content/{id}/outcome", s.outcomeHandler)

		r.HandleFunc("GET /sources", s.listSourcesHandler)
		r.HandleFunc("POST /sources", s.createSourceHandler)

		r.HandleFunc("POST /analyze", s.analyzeHandler)

		r.HandleFunc("GET /clusters", s.clustersHandler)
		r.HandleFunc("GET /cards", s.cardsHandler)
		r.HandleFunc("GET /evolution/{theme}", s.evolutionHandler)
		r.HandleFunc("GET /sentiment/timeline", s.timelineHandler)
		r.HandleFunc("GET /sentiment/mood", s.moodHandler)
		r.HandleFunc("GET /mentions/themes", s.themeMentionsHandler)
		r.HandleFunc("GET /mentions/tickers", s.tickerMentionsHandler)
		r.HandleFunc("GET /conflicts", s.conflictsHandler)
		r.HandleFunc("GET /shifts", s.shiftsHandler)
		r.HandleFunc("GET /changes", s.changesHandler)
		r.HandleFunc("GET /graph", s.graphHandler)
		r.HandleFunc("GET /perspective/{sourceID}", s.perspectiveHandler)
		r.HandleFunc("GET /accuracy", s.accuracyHandler)
		r.HandleFunc("GET /invalidations", s.invalidationsHandler)
		r.HandleFunc("GET /aggregate/asset/{name}", s.assetAggregateHandler)
		r.HandleFunc("GET /aggregate/theme/{name}", s.themeAggregateHandler)

		r.HandleFunc("GET /alerts", s.alertsHandler)
		r.HandleFunc("POST /alerts/{id}/dismiss", s.dismissAlertHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("DELETE /feeds", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/refresh", s.refreshFeedsHandler)
	})

	s.router.HandleFunc("GET /rss/{theme}", s.rssHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderStoreError maps missing records to 404 and everything else to 500
func renderStoreError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, ErrNotFound) {
		renderError(w, r, fmt.Errorf("%s not found", what), http.StatusNotFound)
		return
	}
	lgr.Printf("[ERROR] failed to get %s: %v", what, err)
	renderError(w, r, err, http.StatusInternalServerError)
}
