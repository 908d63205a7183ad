// Package handlers adapts composed documents to HTTP responses.
package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/metrics"
	"succeed.ai/succeed-web/internal/observability"
	"succeed.ai/succeed-web/internal/page"
	"succeed.ai/succeed-web/internal/views"
)

// Pages serves landing variants, content pages and the 404 page. All inputs
// are read-only after construction, so one Pages value serves every request.
type Pages struct {
	composer *page.Composer
	content  *content.Store
}

// NewPages binds handlers to a composer and a content store.
func NewPages(composer *page.Composer, store *content.Store) *Pages {
	return &Pages{composer: composer, content: store}
}

// Landing renders the variant with the given id.
func (p *Pages) Landing(variantID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := p.composer.Landing(variantID)
		if err != nil {
			p.fail(w, r, string(page.KindLanding), err)
			return
		}
		p.write(w, r, http.StatusOK, doc)
	}
}

// Content renders the static page for slug.
func (p *Pages) Content(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pg, err := p.content.Get(slug)
		if errors.Is(err, content.ErrNotFound) {
			p.NotFound(w, r)
			return
		}
		if err != nil {
			p.fail(w, r, string(page.KindContent), err)
			return
		}
		p.write(w, r, http.StatusOK, p.composer.Content(pg))
	}
}

// NotFound renders the HTML 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.write(w, r, http.StatusNotFound, p.composer.NotFound(r.URL.Path))
}

// write renders into a buffer first so a failed render never sends a partial page.
func (p *Pages) write(w http.ResponseWriter, r *http.Request, status int, doc page.Document) {
	var buf bytes.Buffer
	if err := views.Render(&buf, doc); err != nil {
		p.fail(w, r, string(doc.Kind), err)
		return
	}
	metrics.RecordRender(string(doc.Kind), nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, kind string, err error) {
	metrics.RecordRender(kind, err)
	observability.FromContext(r.Context()).Error("render failed",
		zap.String("kind", kind),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
