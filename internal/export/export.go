// Package export writes the site as static HTML files.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/metrics"
	"succeed.ai/succeed-web/internal/page"
	"succeed.ai/succeed-web/internal/site"
	"succeed.ai/succeed-web/internal/views"
)

// Options controls an export run.
type Options struct {
	OutDir    string
	PublicDir string // when set, PublicDir/assets is copied to OutDir/assets
	BaseURL   string
	Logger    *zap.Logger
}

// Result lists the files written, relative to OutDir.
type Result struct {
	Files []string
}

// Export renders every route plus 404.html. The first composition or write
// error aborts the run.
func Export(ctx context.Context, cfg *site.Config, store *content.Store, opts Options) (Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return Result{}, errors.New("export: output directory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	routes, err := page.Routes(cfg, store)
	if err != nil {
		return Result{}, fmt.Errorf("export: %w", err)
	}
	composer := page.New(cfg, page.Options{BaseURL: opts.BaseURL})

	var res Result
	for _, rt := range routes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		doc, err := compose(composer, store, rt)
		if err != nil {
			metrics.RecordRender(string(rt.Kind), err)
			return res, fmt.Errorf("export: %s: %w", rt.Path, err)
		}
		rel := routeFile(rt.Path)
		if err := writeDoc(opts.OutDir, rel, doc); err != nil {
			return res, err
		}
		res.Files = append(res.Files, rel)
		logger.Debug("page exported", zap.String("route", rt.Path), zap.String("file", rel))
	}

	if err := writeDoc(opts.OutDir, "404.html", composer.NotFound("/404.html")); err != nil {
		return res, err
	}
	res.Files = append(res.Files, "404.html")

	if opts.PublicDir != "" {
		copied, err := copyAssets(filepath.Join(opts.PublicDir, "assets"), filepath.Join(opts.OutDir, "assets"))
		if err != nil {
			return res, err
		}
		logger.Debug("assets copied", zap.Int("files", copied))
	}

	logger.Info("export complete", zap.String("dir", opts.OutDir), zap.Int("pages", len(res.Files)))
	return res, nil
}

func compose(c *page.Composer, store *content.Store, rt page.Route) (page.Document, error) {
	switch rt.Kind {
	case page.KindLanding:
		return c.Landing(rt.VariantID)
	case page.KindContent:
		p, err := store.Get(rt.Slug)
		if err != nil {
			return page.Document{}, err
		}
		return c.Content(p), nil
	default:
		return page.Document{}, fmt.Errorf("unsupported route kind %q", rt.Kind)
	}
}

// routeFile maps "/" to index.html and "/voice" to voice/index.html.
func routeFile(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html"
	}
	return filepath.ToSlash(filepath.Join(trimmed, "index.html"))
}

func writeDoc(outDir, rel string, doc page.Document) error {
	var buf bytes.Buffer
	if err := views.Render(&buf, doc); err != nil {
		metrics.RecordRender(string(doc.Kind), err)
		return fmt.Errorf("export: render %s: %w", rel, err)
	}
	metrics.RecordRender(string(doc.Kind), nil)

	target := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	metrics.IncPagesExported()
	return nil
}

func copyAssets(src, dst string) (int, error) {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("export: copy assets: %w", err)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
