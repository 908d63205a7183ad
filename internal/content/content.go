// Package content serves the static markdown pages linked from the primary
// navigation. Pages are loaded once at startup and never change afterwards.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"succeed.ai/succeed-web/internal/markup"
)

//go:embed pages/*.md
var embedded embed.FS

// ErrNotFound is returned when a slug has no page.
var ErrNotFound = errors.New("content: not found")

// Page is a rendered static page.
type Page struct {
	Slug      string
	Path      string
	Title     string
	Summary   string
	Body      string // sanitised HTML
	UpdatedAt time.Time
	NoIndex   bool
	SEO       SEO
}

// SEO holds optional metadata overrides for static pages.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title     string         `yaml:"title"`
	Summary   string         `yaml:"summary"`
	UpdatedAt string         `yaml:"updated_at"`
	NoIndex   bool           `yaml:"noindex"`
	SEO       frontMatterSEO `yaml:"seo"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

// Store is an immutable set of pages keyed by slug.
type Store struct {
	pages map[string]Page
	slugs []string
}

// Default loads the pages compiled into the binary.
func Default() (*Store, error) {
	sub, err := fs.Sub(embedded, "pages")
	if err != nil {
		return nil, fmt.Errorf("content: embedded pages: %w", err)
	}
	return Load(sub)
}

// LoadDir loads pages from a directory on disk.
func LoadDir(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Default()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every top-level *.md file in fsys. Any parse failure aborts the
// load so a broken page never reaches a renderer.
func Load(fsys fs.FS) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("content: list pages: %w", err)
	}
	s := &Store{pages: make(map[string]Page, len(entries))}
	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		slug := sanitizeSlug(strings.TrimSuffix(entry.Name(), ".md"))
		if slug == "" {
			return nil, fmt.Errorf("content: invalid page name %q", entry.Name())
		}
		if prev, dup := files[slug]; dup {
			return nil, fmt.Errorf("content: %s and %s both map to slug %q", prev, entry.Name(), slug)
		}
		files[slug] = entry.Name()
		page, err := readPage(fsys, entry.Name(), slug)
		if err != nil {
			return nil, err
		}
		s.pages[slug] = page
		s.slugs = append(s.slugs, slug)
	}
	sort.Strings(s.slugs)
	return s, nil
}

// Get returns the page for slug.
func (s *Store) Get(slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	page, ok := s.pages[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return page, nil
}

// Pages returns all pages ordered by slug.
func (s *Store) Pages() []Page {
	out := make([]Page, 0, len(s.slugs))
	for _, slug := range s.slugs {
		out = append(out, s.pages[slug])
	}
	return out
}

func readPage(fsys fs.FS, name, slug string) (Page, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Page{}, fmt.Errorf("content: read %s: %w", name, err)
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", name, err)
		}
	}
	updated, err := parseContentDate(front.UpdatedAt)
	if err != nil {
		return Page{}, fmt.Errorf("content: %s: updated_at: %w", name, err)
	}
	html, err := markup.Block(body)
	if err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", name, err)
	}
	page := Page{
		Slug:      slug,
		Path:      "/" + slug,
		Title:     strings.TrimSpace(front.Title),
		Summary:   strings.TrimSpace(front.Summary),
		Body:      html,
		UpdatedAt: updated,
		NoIndex:   front.NoIndex,
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	if page.Title == "" {
		// fall back to slug prettified
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseContentDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v)
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\ `) {
		return ""
	}
	return slug
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
