package site

// Severity tags a preview status row.
type Severity string

const (
	SeverityAlert   Severity = "alert"
	SeverityActive  Severity = "active"
	SeverityNeutral Severity = "neutral"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityAlert, SeverityActive, SeverityNeutral:
		return true
	}
	return false
}

// Side identifies who speaks a preview chat turn.
type Side string

const (
	SideAgent Side = "agent"
	SideUser  Side = "user"
)

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s == SideAgent || s == SideUser
}

// Action is a labelled call to action bound to a link key. A secondary action
// without Link renders as plain text. Navigate marks a CTA that moves the
// browser programmatically instead of rendering a plain anchor.
type Action struct {
	Label    string  `yaml:"label"`
	Link     LinkKey `yaml:"link,omitempty"`
	Navigate bool    `yaml:"navigate,omitempty"`
}

// Logo is one entry of the trust strip.
type Logo struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// TrustStrip lists customer logos under a caption.
type TrustStrip struct {
	Caption string `yaml:"caption"`
	Logos   []Logo `yaml:"logos"`
}

// Meter is an optional progress bar attached to a status row.
type Meter struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
	Max   int    `yaml:"max"`
}

// StatusRow is a mock detection/status line in the preview panel.
type StatusRow struct {
	Severity Severity `yaml:"severity"`
	Message  string   `yaml:"message"`
	Progress *Meter   `yaml:"progress,omitempty"`
}

// ChatTurn is a mock conversation bubble in the preview panel.
type ChatTurn struct {
	Side     Side   `yaml:"side"`
	Text     string `yaml:"text"`
	Speaking bool   `yaml:"speaking,omitempty"`
}

// Preview describes the illustrative panel beside the hero copy.
type Preview struct {
	Status []StatusRow `yaml:"status"`
	Chat   []ChatTurn  `yaml:"chat"`
}

// Variant is the data-described bundle rendered for a single route.
type Variant struct {
	ID          string     `yaml:"id"`
	Route       string     `yaml:"route"`
	Title       string     `yaml:"title,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Accent      string     `yaml:"accent,omitempty"`
	Headline    string     `yaml:"headline"`
	Subheadline string     `yaml:"subheadline"`
	PrimaryCTA  Action     `yaml:"primary_cta"`
	Secondary   Action     `yaml:"secondary"`
	Trust       TrustStrip `yaml:"trust"`
	Preview     Preview    `yaml:"preview"`
}

// LinkRefs returns every link key the variant references, primary CTA first.
func (v Variant) LinkRefs() []LinkKey {
	refs := []LinkKey{v.PrimaryCTA.Link}
	if v.Secondary.Link != "" {
		refs = append(refs, v.Secondary.Link)
	}
	return refs
}

func (v Variant) clone() Variant {
	out := v
	if v.Trust.Logos != nil {
		out.Trust.Logos = append([]Logo(nil), v.Trust.Logos...)
	}
	if v.Preview.Status != nil {
		out.Preview.Status = make([]StatusRow, len(v.Preview.Status))
		for i, row := range v.Preview.Status {
			if row.Progress != nil {
				m := *row.Progress
				row.Progress = &m
			}
			out.Preview.Status[i] = row
		}
	}
	if v.Preview.Chat != nil {
		out.Preview.Chat = append([]ChatTurn(nil), v.Preview.Chat...)
	}
	return out
}
