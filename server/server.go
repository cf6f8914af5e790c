package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/tubefeed/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_items.go -pkg mocks -skip-ensure -fmt goimports . FeedItemStore
//go:generate moq -out mocks/formulas.go -pkg mocks -skip-ensure -fmt goimports . FormulaStore
//go:generate moq -out mocks/templates.go -pkg mocks -skip-ensure -fmt goimports . TemplateStore
//go:generate moq -out mocks/images.go -pkg mocks -skip-ensure -fmt goimports . ImageStore

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	items     FeedItemStore
	formulas  FormulaStore
	templates TemplateStore
	images    ImageStore
	version   string
	debug     bool
	now       func() time.Time
	policy    *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Stores groups data access dependencies of the server
type Stores struct {
	Items     FeedItemStore
	Formulas  FormulaStore
	Templates TemplateStore
	Images    ImageStore
}

// FeedItemStore provides access to daily feed items
type FeedItemStore interface {
	ListByDate(ctx context.Context, date domain.Date) ([]domain.FeedItem, error)
	Get(ctx context.Context, id int64) (*domain.FeedItem, error)
	Create(ctx context.Context, item *domain.FeedItem) error
	Update(ctx context.Context, item *domain.FeedItem) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, to domain.Status, now time.Time) (*domain.FeedItem, error)
}

// FormulaStore provides access to the food formula library
type FormulaStore interface {
	List(ctx context.Context) ([]domain.FoodFormula, error)
	Get(ctx context.Context, id int64) (*domain.FoodFormula, error)
	Create(ctx context.Context, f *domain.FoodFormula) error
	Update(ctx context.Context, f *domain.FoodFormula) error
	Delete(ctx context.Context, id int64) error
}

// TemplateStore provides access to the daily schedule template
type TemplateStore interface {
	List(ctx context.Context) ([]domain.ScheduleTemplateEntry, error)
	Get(ctx context.Context, id int64) (*domain.ScheduleTemplateEntry, error)
	Create(ctx context.Context, e *domain.ScheduleTemplateEntry) error
	Update(ctx context.Context, e *domain.ScheduleTemplateEntry) error
	Delete(ctx context.Context, id int64) error
}

// ImageStore keeps uploaded images
type ImageStore interface {
	Save(r io.Reader, origName string) (string, error)
	Remove(name string) error
	Dir() string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetLocation() *time.Location
	GetCORSOrigins() []string
}

const mediaPrefix = "/media/"

// New initializes a new server instance
func New(cfg ConfigProvider, stores Stores, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		items:     stores.Items,
		formulas:  stores.Formulas,
		templates: stores.Templates,
		images:    stores.Images,
		version:   version,
		debug:     debug,
		now:       time.Now,
		policy:    bluemonday.StrictPolicy(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler returns the root http handler, used by Run and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

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
	s.router.Use(rest.AppInfo("tubefeed", "umputun", s.version))
	s.router.Use(rest.Ping)
	// no origins configured means same-origin only, cors.Handler would allow everything
	if origins := s.config.GetCORSOrigins(); len(origins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         600,
		}))
	}

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(10 * 1024 * 1024)) // 10MB, image uploads included
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /summary", s.summaryHandler)

		r.HandleFunc("GET /feed-items", s.listFeedItemsHandler)
		r.HandleFunc("POST /feed-items", s.createFeedItemHandler)
		r.HandleFunc("GET /feed-items/{id}", s.getFeedItemHandler)
		r.HandleFunc("PUT /feed-items/{id}", s.updateFeedItemHandler)
		r.HandleFunc("PATCH /feed-items/{id}", s.patchFeedItemHandler)
		r.HandleFunc("DELETE /feed-items/{id}", s.deleteFeedItemHandler)
		r.HandleFunc("POST /feed-items/{id}/mark-administered", s.statusChangeHandler(domain.StatusAdministered))
		r.HandleFunc("POST /feed-items/{id}/mark-skipped", s.statusChangeHandler(domain.StatusSkipped))
		r.HandleFunc("POST /feed-items/{id}/mark-pending", s.statusChangeHandler(domain.StatusPending))

		r.HandleFunc("GET /food-formulas", s.listFormulasHandler)
		r.HandleFunc("POST /food-formulas", s.createFormulaHandler)
		r.HandleFunc("GET /food-formulas/{id}", s.getFormulaHandler)
		r.HandleFunc("PUT /food-formulas/{id}", s.updateFormulaHandler)
		r.HandleFunc("DELETE /food-formulas/{id}", s.deleteFormulaHandler)

		r.HandleFunc("GET /schedule-templates", s.listTemplatesHandler)
		r.HandleFunc("POST /schedule-templates", s.createTemplateHandler)
		r.HandleFunc("GET /schedule-templates/{id}", s.getTemplateHandler)
		r.HandleFunc("PUT /schedule-templates/{id}", s.updateTemplateHandler)
		r.HandleFunc("DELETE /schedule-templates/{id}", s.deleteTemplateHandler)
	})

	// uploaded images
	if s.images != nil {
		s.router.Handle("GET "+mediaPrefix, http.StripPrefix(mediaPrefix, http.FileServer(http.Dir(s.images.Dir()))))
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    s.now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON with the message under "detail"
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{detailKey: errMsg})
}
