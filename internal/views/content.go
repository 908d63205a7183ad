package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"succeed.ai/succeed-web/internal/nav"
	"succeed.ai/succeed-web/internal/page"
)

// ContentPage renders a static markdown page with breadcrumbs.
func ContentPage(doc page.Document) g.Node {
	c := doc.Content
	return Article(
		Class("content"),
		breadcrumbs(doc.Nav.Crumbs),
		H1(g.Text(c.Title)),
		g.If(c.Summary != "", P(Class("content-summary"), g.Text(c.Summary))),
		g.If(!c.UpdatedAt.IsZero(),
			P(Class("content-updated"),
				g.Text("Updated "),
				g.El("time", g.Attr("datetime", c.UpdatedAt.Format("2006-01-02")), g.Text(c.UpdatedAt.Format("January 2, 2006"))),
			),
		),
		Div(Class("prose"), g.Raw(c.BodyHTML)),
	)
}

// NotFoundPage renders the 404 body.
func NotFoundPage(doc page.Document) g.Node {
	return Section(
		Class("not-found"),
		H1(g.Text("Page not found")),
		P(g.Text("The page you were looking for does not exist.")),
		A(Class("cta"), Href(doc.Brand.Href), g.Text("Back to home")),
	)
}

func breadcrumbs(crumbs []nav.Crumb) g.Node {
	if len(crumbs) < 2 {
		return nil
	}
	return Nav(
		Class("breadcrumbs"),
		g.Attr("aria-label", "Breadcrumb"),
		Ol(g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
			if c.Active {
				return Li(Span(g.Attr("aria-current", "page"), g.Text(c.Label)))
			}
			return Li(A(Href(c.Href), g.Text(c.Label)))
		}))),
	)
}
