package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"succeed.ai/succeed-web/internal/page"
	"succeed.ai/succeed-web/internal/site"
)

// LandingPage renders the two column hero: copy on the left, preview on the
// right.
func LandingPage(doc page.Document) g.Node {
	return Section(
		Class("landing"),
		Div(
			Class("landing-copy"),
			HeroSection(doc.Hero),
			TrustStrip(doc.Trust),
		),
		PreviewPanel(doc.Preview),
	)
}

// HeroSection renders the headline, subheadline and calls to action.
func HeroSection(h page.Hero) g.Node {
	return Div(
		Class("hero"),
		H1(Class("hero-headline"), g.Raw(h.HeadlineHTML)),
		g.If(h.Subheadline != "", P(Class("hero-subheadline"), g.Text(h.Subheadline))),
		Div(
			Class("hero-actions"),
			PrimaryCTA(h.CTA),
			secondary(h.Secondary),
		),
	)
}

// PrimaryCTA renders the call to action. A navigate CTA is a button that the
// navigate script sends to its data-navigate destination.
func PrimaryCTA(c page.CTA) g.Node {
	if c.Navigate {
		return Button(
			Type("button"),
			Class("cta"),
			g.Attr("data-navigate", c.Href),
			g.If(c.External, g.Attr("data-external", "true")),
			g.Text(c.Label),
		)
	}
	return anchor(c.Href, c.External, Class("cta"), g.Text(c.Label))
}

func secondary(a page.Affordance) g.Node {
	if a.Label == "" {
		return nil
	}
	switch {
	case a.Href == "":
		return Span(Class("hero-secondary"), g.Text(a.Label))
	case a.Navigate:
		return Button(Type("button"), Class("hero-secondary btn btn-ghost"), g.Attr("data-navigate", a.Href), g.Text(a.Label))
	default:
		return anchor(a.Href, a.External, Class("hero-secondary btn btn-ghost"), g.Text(a.Label))
	}
}

// TrustStrip renders the caption and customer logos.
func TrustStrip(t page.Trust) g.Node {
	if t.Caption == "" && len(t.Logos) == 0 {
		return nil
	}
	return Div(
		Class("trust"),
		g.If(t.Caption != "", P(Class("trust-caption"), g.Text(t.Caption))),
		Div(
			Class("trust-logos"),
			g.Group(g.Map(t.Logos, func(l site.Logo) g.Node {
				return Img(Src(l.Src), Alt(l.Alt), Class("trust-logo"), g.Attr("loading", "lazy"))
			})),
		),
	)
}

// PreviewPanel renders the illustrative status feed and chat transcript.
func PreviewPanel(p page.Preview) g.Node {
	if len(p.Status) == 0 && len(p.Chat) == 0 {
		return nil
	}
	return Div(
		Class("preview"),
		g.Attr("aria-hidden", "true"),
		Div(Class("preview-status"), g.Group(g.Map(p.Status, statusRow))),
		Div(Class("preview-chat"), g.Group(g.Map(p.Chat, chatTurn))),
	)
}

func statusRow(r page.StatusRow) g.Node {
	return Div(
		Class("status status-"+string(r.Severity)),
		g.If(r.Tag != "", Span(Class("tag tag-"+string(r.Severity)), g.Text(r.Tag))),
		meter(r.Progress),
		Span(Class("status-message"), g.Text(r.Message)),
	)
}

func meter(m *page.Meter) g.Node {
	if m == nil {
		return nil
	}
	return Div(
		Class("meter"),
		g.Attr("role", "progressbar"),
		g.Attr("aria-label", m.Label),
		g.Attr("aria-valuemin", "0"),
		g.Attr("aria-valuemax", strconv.Itoa(m.Max)),
		g.Attr("aria-valuenow", strconv.Itoa(m.Value)),
		Div(Class("meter-fill"), Style(fmt.Sprintf("width: %d%%", m.Percent))),
	)
}

func chatTurn(t page.ChatTurn) g.Node {
	return Div(
		Class("chat chat-"+string(t.Side)),
		P(g.Text(t.Text)),
		g.If(t.Speaking, Span(Class("mic"), g.Attr("title", "Speaking"))),
	)
}
