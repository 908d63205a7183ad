package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"succeed.ai/succeed-web/internal/page"
)

// PageFooter renders the footer link columns.
func PageFooter(doc page.Document) g.Node {
	f := doc.Footer
	return Footer(
		Class("footer"),
		Div(
			Class("footer-brand"),
			P(Class("brand"), g.Text(f.Name)),
			g.If(f.Description != "", P(Class("footer-description"), g.Text(f.Description))),
		),
		linkColumn("Product", f.Product),
		linkColumn("Community", f.Community),
	)
}

func linkColumn(heading string, links []page.Link) g.Node {
	if len(links) == 0 {
		return nil
	}
	return Div(
		Class("footer-column"),
		P(Class("footer-heading"), g.Text(heading)),
		Ul(g.Group(g.Map(links, func(l page.Link) g.Node {
			return Li(anchor(l.Href, l.External, g.Text(l.Label)))
		}))),
	)
}
