package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/httpserver"
	"succeed.ai/succeed-web/internal/site"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithSite overrides the site configuration.
func WithSite(cfg *site.Config) ServerOption {
	return func(c *httpserver.Config) {
		c.Site = cfg
	}
}

// WithContent overrides the content store.
func WithContent(store *content.Store) ServerOption {
	return func(c *httpserver.Config) {
		c.Content = store
	}
}

// WithPublicDir serves assets from dir.
func WithPublicDir(dir string) ServerOption {
	return func(c *httpserver.Config) {
		c.PublicDir = dir
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(c *httpserver.Config) {
		c.Logger = logger
	}
}

// NewServer constructs an httptest server running the site HTTP stack with the
// embedded site config and content pages.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg, err := site.Default()
	if err != nil {
		t.Fatalf("default site: %v", err)
	}
	store, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}

	serverCfg := httpserver.Config{
		Address: ":0",
		Site:    cfg,
		Content: store,
		BaseURL: "https://succeed.ai",
	}
	for _, opt := range opts {
		opt(&serverCfg)
	}

	handler, err := httpserver.NewHandler(serverCfg)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}
