package nav

import (
	"path"
	"strings"

	"succeed.ai/succeed-web/internal/site"
)

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Label    string
	External bool
	Active   bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Resolver answers link and navigation queries against a loaded site config.
// It holds no state of its own and is safe for concurrent use.
type Resolver struct {
	cfg *site.Config
}

// New returns a Resolver bound to cfg.
func New(cfg *site.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// ResolveLink returns the destination for key, or an error matching
// site.ErrUnknownLinkKey. Callers must not substitute an empty URL.
func (r *Resolver) ResolveLink(key site.LinkKey) (string, error) {
	return r.cfg.Link(key)
}

// PrimaryNav returns the primary navigation exactly as configured.
func (r *Resolver) PrimaryNav() []site.NavEntry {
	return r.cfg.NavItems()
}

// SecondaryNav returns the overflow navigation exactly as configured.
func (r *Resolver) SecondaryNav() []site.NavEntry {
	return r.cfg.NavMenuItems()
}

// Build renders navigation items with active state given the current path.
func Build(entries []site.NavEntry, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(entries))
	for _, it := range entries {
		external := IsExternal(it.Href)
		items = append(items, RenderedItem{
			Href:     it.Href,
			Label:    it.Label,
			External: external,
			Active:   !external && isActive(it.Href, currentPath),
		})
	}
	return items
}

// IsExternal reports whether href leaves the site.
func IsExternal(href string) bool {
	return !strings.HasPrefix(href, "/")
}

func isActive(itemPath, currentPath string) bool {
	if i := strings.IndexAny(itemPath, "?#"); i != -1 {
		itemPath = itemPath[:i]
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/features" or "/features/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with the first primary entry pointing at "/" (or "Home")
// - Top-level segments take their label from the primary nav when present
// - Deeper segments use a prettified segment label
func (r *Resolver) Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	primary := r.PrimaryNav()
	labels := make(map[string]string, len(primary))
	for _, it := range primary {
		labels[it.Href] = it.Label
	}

	homeLabel := labels["/"]
	if homeLabel == "" {
		homeLabel = "Home"
	}
	crumbs := []Crumb{{Href: "/", Label: homeLabel, Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href = href + "/" + part
		label := labels[href]
		if label == "" {
			label = titleFromSegment(part)
		}
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  label,
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	// replace hyphens/underscores with spaces and capitalize first letter
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
