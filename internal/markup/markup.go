// Package markup turns author-supplied markdown into sanitised HTML.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts markdown with goldmark and sanitises the result with
// bluemonday. It is safe for concurrent use once constructed.
type Renderer struct {
	md     goldmark.Markdown
	inline *bluemonday.Policy
	block  *bluemonday.Policy
}

// New builds a Renderer with the site's inline and block policies.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		inline: newInlinePolicy(),
		block:  newBlockPolicy(),
	}
}

var defaultRenderer = New()

// Inline renders a single line of markdown. Block-level wrappers such as <p>
// are dropped so the result can sit inside a heading.
func Inline(src string) (string, error) { return defaultRenderer.Inline(src) }

// Block renders a markdown document.
func Block(src string) (string, error) { return defaultRenderer.Block(src) }

// Inline renders a single line of markdown with the inline policy.
func (r *Renderer) Inline(src string) (string, error) {
	out, err := r.convert(src)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(r.inline.Sanitize(out)), nil
}

// Block renders a markdown document with the block policy.
func (r *Renderer) Block(src string) (string, error) {
	out, err := r.convert(src)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(r.block.Sanitize(out)), nil
}

func (r *Renderer) convert(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markup: convert: %w", err)
	}
	return buf.String(), nil
}

func newInlinePolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("strong", "em", "code", "del", "br")
	policy.AllowStandardURLs()
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireNoFollowOnLinks(false)
	policy.RequireNoFollowOnFullyQualifiedLinks(true)
	return policy
}

func newBlockPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(false)
	policy.RequireNoFollowOnFullyQualifiedLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}
