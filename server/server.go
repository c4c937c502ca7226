package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/cryptodigest/cryptodigest/pkg/auth"
	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator
//go:generate moq -out mocks/market.go -pkg mocks -skip-ensure -fmt goimports . MarketProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	auth      Authenticator
	market    MarketProvider
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetArticles(ctx context.Context, category string, limit int) ([]domain.Article, error)
	GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error)
	CountArticles(ctx context.Context) (int, error)
	CountArticlesSince(ctx context.Context, ts time.Time) (int, error)
	CountArticlesByCategory(ctx context.Context, category string) (int, error)
	GetSources(ctx context.Context, activeOnly bool) ([]domain.NewsSource, error)
	CountSources(ctx context.Context) (total, active int, err error)
	GetLiveStreams(ctx context.Context, category, region string, limit int) ([]domain.LiveStream, error)
}

// Scheduler interface for on-demand generation
type Scheduler interface {
	TriggerNow() error
}

// Authenticator issues and verifies admin bearer tokens
type Authenticator interface {
	Login(username, password string) (string, error)
	VerifyToken(token string) (subject string, err error)
}

// MarketProvider supplies the market-data snapshot
type MarketProvider interface {
	Snapshot() domain.MarketSnapshot
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, scheduler Scheduler, authSvc Authenticator, market MarketProvider, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		scheduler: scheduler,
		auth:      authSvc,
		market:    market,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
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
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

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
	s.router.Use(rest.AppInfo("cryptodigest", "cryptodigest", s.version))
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
	s.router.HandleFunc("GET /api", s.rootHandler)

	s.router.Mount("/api").Route(func(api *routegroup.Bundle) {
		// public endpoints
		api.HandleFunc("GET /articles", s.articlesHandler)
		api.HandleFunc("GET /market-data", s.marketDataHandler)
		api.HandleFunc("GET /seo-stats", s.seoStatsHandler)
		api.HandleFunc("GET /live-streams", s.liveStreamsHandler)
		api.HandleFunc("POST /admin/login", s.adminLoginHandler)

		// admin endpoints behind bearer auth
		api.With(s.requireAuth).Route(func(admin *routegroup.Bundle) {
			admin.HandleFunc("GET /admin/stats", s.adminStatsHandler)
			admin.HandleFunc("POST /admin/generate-now", s.generateNowHandler)
			admin.HandleFunc("GET /news-sources", s.newsSourcesHandler)
		})
	})
}

// requireAuth verifies the bearer token before any business logic runs
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			renderError(w, r, auth.ErrInvalidToken, http.StatusUnauthorized)
			return
		}

		if _, err := s.auth.VerifyToken(token); err != nil {
			renderError(w, r, auth.ErrInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
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

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
