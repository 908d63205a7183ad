package page

import (
	"time"

	"succeed.ai/succeed-web/internal/nav"
	"succeed.ai/succeed-web/internal/seo"
	"succeed.ai/succeed-web/internal/site"
)

// Kind tells the renderer which body layout to use.
type Kind string

const (
	KindLanding  Kind = "landing"
	KindContent  Kind = "content"
	KindNotFound Kind = "not_found"
)

// Document is the fully resolved render tree for one page. It holds only
// values; renderers never consult the site config directly.
type Document struct {
	Kind      Kind
	Path      string
	VariantID string
	Accent    string
	Brand     Link
	Meta      seo.Meta
	Nav       Navigation
	Hero      Hero
	Trust     Trust
	Preview   Preview
	Content   ContentBody
	Footer    Footer
}

// Link is a resolved hyperlink.
type Link struct {
	Label    string
	Href     string
	External bool
}

// Navigation carries both menus plus the account actions shown in the top bar.
type Navigation struct {
	Primary []nav.RenderedItem
	Menu    []nav.RenderedItem
	Actions []Link
	Crumbs  []nav.Crumb
}

// CTA is the primary call to action. Navigate asks the renderer to move the
// browser programmatically rather than emit a plain anchor.
type CTA struct {
	Label    string
	Href     string
	Navigate bool
	External bool
}

// Affordance is the secondary element next to the CTA; an empty Href renders
// as plain text.
type Affordance struct {
	Label    string
	Href     string
	Navigate bool
	External bool
}

// Hero is the headline region.
type Hero struct {
	HeadlineHTML string // sanitised inline HTML
	Subheadline  string
	CTA          CTA
	Secondary    Affordance
}

// Trust is the logo strip under the hero.
type Trust struct {
	Caption string
	Logos   []site.Logo
}

// Meter is a resolved progress bar.
type Meter struct {
	Label   string
	Value   int
	Max     int
	Percent int
}

// StatusRow is a resolved preview status line. Tag is empty for neutral rows.
type StatusRow struct {
	Severity site.Severity
	Tag      string
	Message  string
	Progress *Meter
}

// ChatTurn is a resolved preview chat bubble.
type ChatTurn struct {
	Side     site.Side
	Text     string
	Speaking bool
}

// Preview is the illustrative panel. It is static content.
type Preview struct {
	Status []StatusRow
	Chat   []ChatTurn
}

// ContentBody is set for KindContent documents.
type ContentBody struct {
	Title     string
	Summary   string
	BodyHTML  string
	UpdatedAt time.Time
}

// Footer repeats the primary navigation and lists community links.
type Footer struct {
	Name        string
	Description string
	Product     []Link
	Community   []Link
}
