// Package site holds the read-only site configuration: product identity,
// navigation, named link destinations and the landing page variants.
package site

import (
	"sort"
)

// LinkKey names an external or internal destination stored in Config links.
type LinkKey string

// Well-known link keys used by the default site.
const (
	LinkGitHub  LinkKey = "github"
	LinkTwitter LinkKey = "twitter"
	LinkDocs    LinkKey = "docs"
	LinkDiscord LinkKey = "discord"
	LinkSponsor LinkKey = "sponsor"
	LinkLogin   LinkKey = "login"
	LinkSignup  LinkKey = "signup"
)

// NavEntry is a single navigation item. Either Href or Link is set in a Source;
// after loading, Href always holds the destination and Link records the key it
// was resolved from, if any.
type NavEntry struct {
	Label string  `yaml:"label"`
	Href  string  `yaml:"href,omitempty"`
	Link  LinkKey `yaml:"link,omitempty"`
}

// Config is the validated site configuration. It is built once by New, Parse,
// LoadFile or Default and never changes afterwards; accessors return copies.
type Config struct {
	name         string
	description  string
	navItems     []NavEntry
	navMenuItems []NavEntry
	links        map[LinkKey]string
	variants     []Variant
	byID         map[string]int
	byRoute      map[string]int
}

// Name returns the product display name.
func (c *Config) Name() string { return c.name }

// Description returns the product summary used for page metadata.
func (c *Config) Description() string { return c.description }

// NavItems returns the primary navigation in display order.
func (c *Config) NavItems() []NavEntry {
	return cloneEntries(c.navItems)
}

// NavMenuItems returns the overflow navigation in display order.
func (c *Config) NavMenuItems() []NavEntry {
	return cloneEntries(c.navMenuItems)
}

// Link resolves key to its destination.
func (c *Config) Link(key LinkKey) (string, error) {
	v, ok := c.links[key]
	if !ok {
		return "", &UnknownLinkKeyError{Key: key}
	}
	return v, nil
}

// HasLink reports whether key is configured.
func (c *Config) HasLink(key LinkKey) bool {
	_, ok := c.links[key]
	return ok
}

// LinkKeys returns the configured keys sorted alphabetically.
func (c *Config) LinkKeys() []LinkKey {
	keys := make([]LinkKey, 0, len(c.links))
	for k := range c.links {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Variants returns all page variants in declaration order.
func (c *Config) Variants() []Variant {
	out := make([]Variant, 0, len(c.variants))
	for _, v := range c.variants {
		out = append(out, v.clone())
	}
	return out
}

// Variant looks up a variant by id.
func (c *Config) Variant(id string) (Variant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Variant{}, false
	}
	return c.variants[i].clone(), true
}

// VariantByRoute looks up the variant served at route.
func (c *Config) VariantByRoute(route string) (Variant, bool) {
	i, ok := c.byRoute[route]
	if !ok {
		return Variant{}, false
	}
	return c.variants[i].clone(), true
}

func cloneEntries(in []NavEntry) []NavEntry {
	out := make([]NavEntry, len(in))
	copy(out, in)
	return out
}
