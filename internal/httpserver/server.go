package httpserver

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/handlers"
	custommw "succeed.ai/succeed-web/internal/middleware"
	"succeed.ai/succeed-web/internal/page"
	"succeed.ai/succeed-web/internal/site"
)

const defaultRequestTimeout = 30 * time.Second

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address        string
	Site           *site.Config
	Content        *content.Store
	PublicDir      string
	BaseURL        string
	Logger         *zap.Logger
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// New constructs the HTTP server with middleware stack and one route per
// landing variant and content page.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 120*time.Second),
	}, nil
}

// NewHandler builds the router without binding it to a listener.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Site == nil {
		return nil, fmt.Errorf("httpserver: site config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	routes, err := page.Routes(cfg.Site, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("httpserver: %w", err)
	}

	pages := handlers.NewPages(page.New(cfg.Site, page.Options{BaseURL: cfg.BaseURL}), cfg.Content)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	router.Use(chimw.RealIP)
	router.Use(custommw.InjectLogger(logger))
	router.Use(custommw.Trace)
	router.Use(custommw.RequestLogger)
	router.Use(custommw.Recovery(logger))
	router.Use(chimw.GetHead)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))

	router.Get("/healthz", handlers.Health)
	router.Handle("/metrics", promhttp.Handler())
	if cfg.PublicDir != "" {
		assets := http.StripPrefix("/assets", custommw.AssetsWithCache(filepath.Join(cfg.PublicDir, "assets")))
		router.Handle("/assets/*", assets)
	}

	for _, rt := range routes {
		switch rt.Kind {
		case page.KindLanding:
			router.Get(rt.Path, pages.Landing(rt.VariantID))
		case page.KindContent:
			router.Get(rt.Path, pages.Content(rt.Slug))
		}
	}
	router.NotFound(pages.NotFound)
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	logger.Info("routes registered", zap.Int("routes", len(routes)))
	return router, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
