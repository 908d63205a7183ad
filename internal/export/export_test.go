package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/site"
	"succeed.ai/succeed-web/internal/testutil"
)

func TestExportWritesEveryRoute(t *testing.T) {
	cfg, err := site.Default()
	require.NoError(t, err)
	store, err := content.Default()
	require.NoError(t, err)

	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "assets", "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "assets", "css", "site.css"), []byte("body{}"), 0o644))

	out := t.TempDir()
	res, err := Export(context.Background(), cfg, store, Options{OutDir: out, PublicDir: public, BaseURL: "https://succeed.ai"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"index.html",
		"voice/index.html",
		"teams/index.html",
		"about/index.html",
		"features/index.html",
		"help/index.html",
		"pricing/index.html",
		"404.html",
	}, res.Files)

	for _, f := range res.Files {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(f)))
	}

	body, err := os.ReadFile(filepath.Join(out, "voice", "index.html"))
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "voice", doc.Find("body").AttrOr("data-variant", ""))

	body, err = os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	require.Contains(t, string(body), "Page not found")

	css, err := os.ReadFile(filepath.Join(out, "assets", "css", "site.css"))
	require.NoError(t, err)
	require.Equal(t, "body{}", string(css))
}

func TestExportRequiresOutDir(t *testing.T) {
	cfg, err := site.Default()
	require.NoError(t, err)
	_, err = Export(context.Background(), cfg, nil, Options{})
	require.Error(t, err)
}

func TestExportHonoursCancellation(t *testing.T) {
	cfg, err := site.Default()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Export(ctx, cfg, nil, Options{OutDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, res.Files)
}

func TestRouteFile(t *testing.T) {
	require.Equal(t, "index.html", routeFile("/"))
	require.Equal(t, "voice/index.html", routeFile("/voice"))
	require.Equal(t, "docs/guide/index.html", routeFile("/docs/guide"))
}
