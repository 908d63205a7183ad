package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"succeed.ai/succeed-web/internal/nav"
	"succeed.ai/succeed-web/internal/page"
)

// Topbar renders the brand, primary navigation, overflow menu and account
// actions.
func Topbar(doc page.Document) g.Node {
	return Header(
		Class("topbar"),
		A(Class("brand"), Href(doc.Brand.Href), g.Text(doc.Brand.Label)),
		Nav(
			Class("nav-primary"),
			g.Attr("aria-label", "Primary"),
			Ul(g.Group(g.Map(doc.Nav.Primary, navItem))),
		),
		g.If(len(doc.Nav.Menu) > 0,
			g.El("details",
				Class("nav-menu"),
				g.El("summary", g.Attr("aria-label", "Open menu"), g.Text("Menu")),
				Ul(g.Group(g.Map(doc.Nav.Menu, navItem))),
			),
		),
		g.If(len(doc.Nav.Actions) > 0,
			Div(
				Class("nav-actions"),
				g.Group(g.Map(doc.Nav.Actions, func(l page.Link) g.Node {
					return anchor(l.Href, l.External, Class("btn btn-ghost"), g.Text(l.Label))
				})),
			),
		),
	)
}

func navItem(it nav.RenderedItem) g.Node {
	return Li(
		anchor(it.Href, it.External,
			g.If(it.Active, Class("active")),
			g.If(it.Active, g.Attr("aria-current", "page")),
			g.Text(it.Label),
		),
	)
}

// anchor renders a link; external destinations open in a new tab.
func anchor(href string, external bool, children ...g.Node) g.Node {
	return A(
		Href(href),
		g.If(external, Target("_blank")),
		g.If(external, Rel("noopener noreferrer")),
		g.Group(children),
	)
}
