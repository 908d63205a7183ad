package site

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"sort"
	"strings"
)

var (
	linkKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	variantPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

	// Routes owned by the HTTP server; variants may not shadow them.
	reservedRoutes = []string{"/healthz", "/metrics", "/assets"}
)

// validate checks src and returns a trimmed copy with nav link references
// resolved to hrefs. All problems are collected before returning.
func validate(src Source) (Source, error) {
	var p problems
	out := Source{
		Name:        strings.TrimSpace(src.Name),
		Description: strings.TrimSpace(src.Description),
		Links:       make(map[LinkKey]string, len(src.Links)),
	}

	if out.Name == "" {
		p.addf("name: must not be empty")
	}

	keys := make([]LinkKey, 0, len(src.Links))
	for key := range src.Links {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, key := range keys {
		raw := src.Links[key]
		value := strings.TrimSpace(raw)
		if !linkKeyPattern.MatchString(string(key)) {
			p.addf("links[%s]: invalid key", key)
			continue
		}
		if !ValidHref(value) {
			p.addf("links[%s]: %q is not an absolute URL or root-relative path", key, raw)
			continue
		}
		out.Links[key] = value
	}

	out.NavItems = validateNav(&p, "nav_items", src.NavItems, out.Links)
	out.NavMenuItems = validateNav(&p, "nav_menu_items", src.NavMenuItems, out.Links)
	out.Variants = validateVariants(&p, src.Variants, out.Links)

	if err := p.err(); err != nil {
		return Source{}, err
	}
	return out, nil
}

func validateNav(p *problems, field string, entries []NavEntry, links map[LinkKey]string) []NavEntry {
	out := make([]NavEntry, 0, len(entries))
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		ref := fmt.Sprintf("%s[%d]", field, i)
		e := NavEntry{
			Label: strings.TrimSpace(entry.Label),
			Href:  strings.TrimSpace(entry.Href),
			Link:  LinkKey(strings.TrimSpace(string(entry.Link))),
		}
		if e.Label == "" {
			p.addf("%s: label must not be empty", ref)
		}
		switch {
		case e.Href != "" && e.Link != "":
			p.addf("%s: set either href or link, not both", ref)
			continue
		case e.Link != "":
			target, ok := links[e.Link]
			if !ok {
				p.addErr(&UnknownLinkKeyError{Key: e.Link, Ref: ref})
				continue
			}
			e.Href = target
		case e.Href == "":
			p.addf("%s: href must not be empty", ref)
			continue
		case !ValidHref(e.Href):
			p.addf("%s: %q is not an absolute URL or root-relative path", ref, e.Href)
			continue
		}
		if prev, dup := seen[e.Href]; dup {
			p.addf("%s: duplicate href %q (first used by %s[%d])", ref, e.Href, field, prev)
			continue
		}
		seen[e.Href] = i
		out = append(out, e)
	}
	return out
}

func validateVariants(p *problems, variants []Variant, links map[LinkKey]string) []Variant {
	out := make([]Variant, 0, len(variants))
	ids := make(map[string]struct{}, len(variants))
	routes := make(map[string]string, len(variants))
	for i, raw := range variants {
		v := raw.clone()
		v.ID = strings.TrimSpace(v.ID)
		v.Route = strings.TrimSpace(v.Route)
		v.Headline = strings.TrimSpace(v.Headline)
		v.Subheadline = strings.TrimSpace(v.Subheadline)

		ref := fmt.Sprintf("variants[%d]", i)
		if v.ID != "" {
			ref = fmt.Sprintf("variants[%s]", v.ID)
		}

		switch {
		case v.ID == "":
			p.addf("%s: id must not be empty", ref)
		case !variantPattern.MatchString(v.ID):
			p.addf("%s: id must be lowercase letters, digits or dashes", ref)
		default:
			if _, dup := ids[v.ID]; dup {
				p.addf("%s: duplicate id", ref)
			}
			ids[v.ID] = struct{}{}
		}

		if err := checkRoute(v.Route); err != "" {
			p.addf("%s: route %s", ref, err)
		} else if owner, dup := routes[v.Route]; dup {
			p.addf("%s: route %q already served by %s", ref, v.Route, owner)
		} else {
			routes[v.Route] = ref
		}

		if v.Headline == "" {
			p.addf("%s: headline must not be empty", ref)
		}
		if strings.TrimSpace(v.PrimaryCTA.Label) == "" {
			p.addf("%s.primary_cta: label must not be empty", ref)
		}
		if v.PrimaryCTA.Link == "" {
			p.addf("%s.primary_cta: link must not be empty", ref)
		} else if _, ok := links[v.PrimaryCTA.Link]; !ok {
			p.addErr(&UnknownLinkKeyError{Key: v.PrimaryCTA.Link, Ref: ref + ".primary_cta"})
		}
		if v.Secondary.Link != "" {
			if _, ok := links[v.Secondary.Link]; !ok {
				p.addErr(&UnknownLinkKeyError{Key: v.Secondary.Link, Ref: ref + ".secondary"})
			}
			if strings.TrimSpace(v.Secondary.Label) == "" {
				p.addf("%s.secondary: label must not be empty when link is set", ref)
			}
		}
		if v.Secondary.Navigate && v.Secondary.Link == "" {
			p.addf("%s.secondary: navigate requires a link", ref)
		}

		for j, logo := range v.Trust.Logos {
			if strings.TrimSpace(logo.Src) == "" {
				p.addf("%s.trust.logos[%d]: src must not be empty", ref, j)
			}
		}
		for j, row := range v.Preview.Status {
			if !row.Severity.Valid() {
				p.addf("%s.preview.status[%d]: unknown severity %q", ref, j, row.Severity)
			}
			if strings.TrimSpace(row.Message) == "" && row.Progress == nil {
				p.addf("%s.preview.status[%d]: message must not be empty", ref, j)
			}
			if m := row.Progress; m != nil && (m.Max <= 0 || m.Value < 0 || m.Value > m.Max) {
				p.addf("%s.preview.status[%d].progress: value must be within 0..max and max positive", ref, j)
			}
		}
		for j, turn := range v.Preview.Chat {
			if !turn.Side.Valid() {
				p.addf("%s.preview.chat[%d]: unknown side %q", ref, j, turn.Side)
			}
			if strings.TrimSpace(turn.Text) == "" {
				p.addf("%s.preview.chat[%d]: text must not be empty", ref, j)
			}
		}
		out = append(out, v)
	}
	return out
}

// checkRoute returns a non-empty description when route is unusable.
func checkRoute(route string) string {
	if route == "" {
		return "must not be empty"
	}
	if !strings.HasPrefix(route, "/") || strings.HasPrefix(route, "//") {
		return fmt.Sprintf("%q must be a root-relative path", route)
	}
	if path.Clean(route) != route {
		return fmt.Sprintf("%q must be a clean path", route)
	}
	if strings.ContainsAny(route, "?#{}*") {
		return fmt.Sprintf("%q must not contain query, fragment or pattern characters", route)
	}
	if IsReservedRoute(route) {
		return fmt.Sprintf("%q is reserved", route)
	}
	return ""
}

// IsReservedRoute reports whether route falls under a path the HTTP server
// keeps for itself.
func IsReservedRoute(route string) bool {
	for _, reserved := range reservedRoutes {
		if route == reserved || strings.HasPrefix(route, reserved+"/") {
			return true
		}
	}
	return false
}

// ValidHref reports whether v is an absolute http(s)/mailto URL or a
// root-relative path.
func ValidHref(v string) bool {
	if v == "" || strings.ContainsAny(v, " \t\r\n") {
		return false
	}
	if strings.HasPrefix(v, "/") {
		if strings.HasPrefix(v, "//") {
			return false
		}
		_, err := url.Parse(v)
		return err == nil
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}
