// Package views renders composed documents to HTML with gomponents.
package views

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"succeed.ai/succeed-web/internal/page"
	"succeed.ai/succeed-web/internal/seo"
)

const (
	stylesheetPath = "/assets/css/site.css"
	navigateJSPath = "/assets/js/navigate.js"
)

// Render writes the full HTML page for doc.
func Render(w io.Writer, doc page.Document) error {
	return Page(doc).Render(w)
}

// Page selects the body layout for doc and wraps it in the site chrome.
func Page(doc page.Document) g.Node {
	var body g.Node
	switch doc.Kind {
	case page.KindContent:
		body = ContentPage(doc)
	case page.KindNotFound:
		body = NotFoundPage(doc)
	default:
		body = LandingPage(doc)
	}
	return Layout(doc,
		Topbar(doc),
		Main(ID("main"), body),
		PageFooter(doc),
	)
}

// Layout emits the document skeleton and head metadata.
func Layout(doc page.Document, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(doc.Meta.Title)),
				metaTags(doc.Meta),
				Link(Rel("icon"), Href("/assets/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href(stylesheetPath)),
			),
			Body(
				Class("site"),
				g.If(doc.Accent != "", g.Attr("data-accent", doc.Accent)),
				g.If(doc.VariantID != "", g.Attr("data-variant", doc.VariantID)),
				g.Group(content),
				Script(Src(navigateJSPath), Defer()),
			),
		),
	})
}

func metaTags(m seo.Meta) g.Node {
	return g.Group([]g.Node{
		g.If(m.Description != "", Meta(Name("description"), Content(m.Description))),
		Meta(Name("robots"), Content(m.Robots)),
		g.If(m.Canonical != "", Link(Rel("canonical"), Href(m.Canonical))),

		property("og:title", m.OG.Title),
		property("og:description", m.OG.Description),
		property("og:type", m.OG.Type),
		property("og:url", m.OG.URL),
		property("og:site_name", m.OG.SiteName),
		property("og:image", m.OG.Image),

		named("twitter:card", m.Twitter.Card),
		named("twitter:site", m.Twitter.Site),
		named("twitter:image", m.Twitter.Image),

		g.Group(g.Map(m.JSONLD, func(ld string) g.Node {
			// encoding/json escapes <, > and &, so the payload cannot close the tag.
			return Script(Type("application/ld+json"), g.Raw(ld))
		})),
	})
}

func property(key, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(g.Attr("property", key), Content(value))
}

func named(key, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(Name(key), Content(value))
}
