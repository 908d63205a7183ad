// Package page binds page variants and content pages against the site config
// to produce render-ready documents.
package page

import (
	"errors"
	"fmt"
	"strings"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/markup"
	"succeed.ai/succeed-web/internal/nav"
	"succeed.ai/succeed-web/internal/seo"
	"succeed.ai/succeed-web/internal/site"
)

// ErrUnknownVariant is returned when no variant has the requested id.
var ErrUnknownVariant = errors.New("page: unknown variant")

var (
	accountActions = []struct {
		key   site.LinkKey
		label string
	}{
		{site.LinkLogin, "Log in"},
		{site.LinkSignup, "Sign up"},
	}
	communityLinks = []struct {
		key   site.LinkKey
		label string
	}{
		{site.LinkDocs, "Docs"},
		{site.LinkGitHub, "GitHub"},
		{site.LinkTwitter, "Twitter"},
		{site.LinkDiscord, "Discord"},
		{site.LinkSponsor, "Sponsor"},
	}
)

// Options tune composition without affecting which content is selected.
type Options struct {
	// BaseURL is the public origin used for canonical URLs; empty omits them.
	BaseURL string
}

// Composer builds documents from a validated config. It keeps no mutable
// state, so one Composer may serve concurrent requests.
type Composer struct {
	cfg    *site.Config
	nav    *nav.Resolver
	markup *markup.Renderer
	opts   Options
}

// New returns a Composer for cfg.
func New(cfg *site.Config, opts Options) *Composer {
	return &Composer{
		cfg:    cfg,
		nav:    nav.New(cfg),
		markup: markup.New(),
		opts:   opts,
	}
}

// Compose renders variantID against cfg with default options.
func Compose(cfg *site.Config, variantID string) (Document, error) {
	return New(cfg, Options{}).Landing(variantID)
}

// Landing composes the landing document for variantID. The result depends
// only on the config, the options and variantID.
func (c *Composer) Landing(variantID string) (Document, error) {
	v, ok := c.cfg.Variant(variantID)
	if !ok {
		return Document{}, fmt.Errorf("%w %q", ErrUnknownVariant, variantID)
	}

	cta, err := c.cta(v.PrimaryCTA)
	if err != nil {
		return Document{}, fmt.Errorf("page: compose %s: %w", v.ID, err)
	}
	secondary, err := c.affordance(v.Secondary)
	if err != nil {
		return Document{}, fmt.Errorf("page: compose %s: %w", v.ID, err)
	}
	headline, err := c.markup.Inline(v.Headline)
	if err != nil {
		return Document{}, fmt.Errorf("page: compose %s: %w", v.ID, err)
	}

	doc := c.shell(v.Route)
	doc.Kind = KindLanding
	doc.VariantID = v.ID
	doc.Accent = v.Accent
	doc.Meta = seo.Build(c.cfg, seo.Page{
		Title:       v.Title,
		Description: v.Description,
		Path:        v.Route,
		BaseURL:     c.opts.BaseURL,
	})
	doc.Hero = Hero{
		HeadlineHTML: headline,
		Subheadline:  v.Subheadline,
		CTA:          cta,
		Secondary:    secondary,
	}
	doc.Trust = Trust{
		Caption: v.Trust.Caption,
		Logos:   append([]site.Logo(nil), v.Trust.Logos...),
	}
	doc.Preview = composePreview(v.Preview)
	return doc, nil
}

// Content wraps a static content page in the site shell.
func (c *Composer) Content(p content.Page) Document {
	doc := c.shell(p.Path)
	doc.Kind = KindContent
	crumbs := make([]seo.BreadcrumbItem, 0, len(doc.Nav.Crumbs))
	for _, cr := range doc.Nav.Crumbs {
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: cr.Label, Item: cr.Href})
	}
	doc.Meta = seo.Build(c.cfg, seo.Page{
		Title:       firstNonEmpty(p.SEO.Title, p.Title),
		Description: firstNonEmpty(p.SEO.Description, p.Summary),
		Path:        p.Path,
		BaseURL:     c.opts.BaseURL,
		Image:       p.SEO.OGImage,
		NoIndex:     p.NoIndex,
		Crumbs:      crumbs,
	})
	doc.Content = ContentBody{
		Title:     p.Title,
		Summary:   p.Summary,
		BodyHTML:  p.Body,
		UpdatedAt: p.UpdatedAt,
	}
	return doc
}

// NotFound composes the 404 page for path.
func (c *Composer) NotFound(path string) Document {
	doc := c.shell(path)
	doc.Kind = KindNotFound
	doc.Nav.Crumbs = nil
	doc.Meta = seo.Build(c.cfg, seo.Page{Title: "Page not found", NoIndex: true})
	return doc
}

// shell fills the parts shared by every page: brand, menus and footer.
func (c *Composer) shell(path string) Document {
	primary := c.nav.PrimaryNav()
	doc := Document{
		Path:  path,
		Brand: Link{Label: c.cfg.Name(), Href: "/"},
		Nav: Navigation{
			Primary: nav.Build(primary, path),
			Menu:    nav.Build(c.nav.SecondaryNav(), path),
			Crumbs:  c.nav.Breadcrumbs(path),
		},
		Footer: Footer{
			Name:        c.cfg.Name(),
			Description: c.cfg.Description(),
		},
	}
	// Account and community keys are optional; a site without them simply
	// shows fewer links.
	for _, a := range accountActions {
		if l, ok := c.optionalLink(a.key, a.label); ok {
			doc.Nav.Actions = append(doc.Nav.Actions, l)
		}
	}
	for _, e := range primary {
		doc.Footer.Product = append(doc.Footer.Product, Link{Label: e.Label, Href: e.Href, External: nav.IsExternal(e.Href)})
	}
	for _, cl := range communityLinks {
		if l, ok := c.optionalLink(cl.key, cl.label); ok {
			doc.Footer.Community = append(doc.Footer.Community, l)
		}
	}
	return doc
}

func (c *Composer) optionalLink(key site.LinkKey, label string) (Link, bool) {
	if !c.cfg.HasLink(key) {
		return Link{}, false
	}
	href, err := c.cfg.Link(key)
	if err != nil {
		return Link{}, false
	}
	return Link{Label: label, Href: href, External: nav.IsExternal(href)}, true
}

func (c *Composer) cta(a site.Action) (CTA, error) {
	href, err := c.nav.ResolveLink(a.Link)
	if err != nil {
		return CTA{}, err
	}
	return CTA{
		Label:    strings.TrimSpace(a.Label),
		Href:     href,
		Navigate: a.Navigate,
		External: nav.IsExternal(href),
	}, nil
}

func (c *Composer) affordance(a site.Action) (Affordance, error) {
	out := Affordance{Label: strings.TrimSpace(a.Label)}
	if a.Link == "" {
		return out, nil
	}
	href, err := c.nav.ResolveLink(a.Link)
	if err != nil {
		return Affordance{}, err
	}
	out.Href = href
	out.Navigate = a.Navigate
	out.External = nav.IsExternal(href)
	return out, nil
}

func composePreview(p site.Preview) Preview {
	out := Preview{
		Status: make([]StatusRow, 0, len(p.Status)),
		Chat:   make([]ChatTurn, 0, len(p.Chat)),
	}
	for _, row := range p.Status {
		r := StatusRow{
			Severity: row.Severity,
			Message:  row.Message,
		}
		if row.Severity != site.SeverityNeutral {
			r.Tag = strings.ToUpper(string(row.Severity))
		}
		if m := row.Progress; m != nil {
			r.Progress = &Meter{
				Label:   m.Label,
				Value:   m.Value,
				Max:     m.Max,
				Percent: m.Value * 100 / m.Max,
			}
		}
		out.Status = append(out.Status, r)
	}
	for _, turn := range p.Chat {
		out.Chat = append(out.Chat, ChatTurn{Side: turn.Side, Text: turn.Text, Speaking: turn.Speaking})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ComposeContent wraps p in the site shell with default options.
func ComposeContent(cfg *site.Config, p content.Page) Document {
	return New(cfg, Options{}).Content(p)
}
