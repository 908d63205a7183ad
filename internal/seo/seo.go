package seo

import (
	"net/url"
	"strings"

	"succeed.ai/succeed-web/internal/site"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Page carries the per-page inputs layered over the site defaults.
type Page struct {
	Title       string // page-specific title; the site name is appended
	Description string // falls back to the site description
	Path        string // request path, used for canonical and og:url
	BaseURL     string // absolute origin, e.g. https://succeed.ai; empty disables canonical
	Image       string
	NoIndex     bool
	Crumbs      []BreadcrumbItem
}

// Build derives page metadata from the site config and page overrides.
func Build(cfg *site.Config, p Page) Meta {
	name := cfg.Name()
	title := name
	if t := strings.TrimSpace(p.Title); t != "" && t != name {
		title = t + " | " + name
	}
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		desc = cfg.Description()
	}
	canonical := absolute(p.BaseURL, p.Path)
	image := absolute(p.BaseURL, p.Image)

	m := Meta{
		Title:       title,
		Description: desc,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    name,
		},
		Twitter: Twitter{
			Card:  "summary_large_image",
			Site:  twitterHandle(cfg),
			Image: image,
		},
	}
	if p.NoIndex {
		m.Robots = "noindex,nofollow"
	}

	origin := strings.TrimRight(strings.TrimSpace(p.BaseURL), "/")
	m.JSONLD = append(m.JSONLD,
		JSON(Organization(name, origin, sameAs(cfg))),
		JSON(WebSite(name, origin, desc)),
	)
	if len(p.Crumbs) > 1 && origin != "" {
		items := make([]BreadcrumbItem, 0, len(p.Crumbs))
		for _, c := range p.Crumbs {
			items = append(items, BreadcrumbItem{Name: c.Name, Item: absolute(origin, c.Item)})
		}
		m.JSONLD = append(m.JSONLD, JSON(BreadcrumbList(items)))
	}
	return m
}

func absolute(base, ref string) string {
	base = strings.TrimSpace(base)
	ref = strings.TrimSpace(ref)
	if ref == "" || !strings.HasPrefix(ref, "/") {
		return ref
	}
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + ref
}

// twitterHandle turns a configured twitter link into an @handle.
func twitterHandle(cfg *site.Config) string {
	raw, err := cfg.Link(site.LinkTwitter)
	if err != nil {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	handle := strings.Trim(u.Path, "/")
	if handle == "" || strings.Contains(handle, "/") {
		return ""
	}
	return "@" + handle
}

// sameAs lists the absolute profile links published for the organisation.
func sameAs(cfg *site.Config) []string {
	var out []string
	for _, key := range []site.LinkKey{site.LinkGitHub, site.LinkTwitter, site.LinkDiscord} {
		if v, err := cfg.Link(key); err == nil && strings.HasPrefix(v, "http") {
			out = append(out, v)
		}
	}
	return out
}
