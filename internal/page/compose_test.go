package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/site"
)

func minimalSource() site.Source {
	return site.Source{
		Name:        "Succeed",
		Description: "Product analytics that talks back.",
		NavItems: []site.NavEntry{
			{Label: "Home", Href: "/"},
			{Label: "Pricing", Href: "/pricing"},
		},
		NavMenuItems: []site.NavEntry{
			{Label: "Help", Href: "/help"},
		},
		Links: map[site.LinkKey]string{
			site.LinkDocs: "https://docs.succeed.ai",
		},
		Variants: []site.Variant{{
			ID:       "home",
			Route:    "/",
			Headline: "Never lose a **struggling user** again.",
			PrimaryCTA: site.Action{
				Label: "Try Now",
				Link:  site.LinkDocs,
			},
			Secondary: site.Action{Label: "Integrates with Mixpanel"},
		}},
	}
}

func mustConfig(t *testing.T, src site.Source) *site.Config {
	t.Helper()
	cfg, err := site.New(src)
	require.NoError(t, err)
	return cfg
}

func TestComposeResolvesCTA(t *testing.T) {
	t.Parallel()

	doc, err := Compose(mustConfig(t, minimalSource()), "home")
	require.NoError(t, err)

	require.Equal(t, KindLanding, doc.Kind)
	require.Equal(t, "https://docs.succeed.ai", doc.Hero.CTA.Href)
	require.Equal(t, "Try Now", doc.Hero.CTA.Label)
	require.True(t, doc.Hero.CTA.External)
	require.Equal(t, "Never lose a <strong>struggling user</strong> again.", doc.Hero.HeadlineHTML)
	require.Equal(t, "Integrates with Mixpanel", doc.Hero.Secondary.Label)
	require.Empty(t, doc.Hero.Secondary.Href)
	require.Equal(t, "Succeed", doc.Meta.Title)
	require.Equal(t, "Product analytics that talks back.", doc.Meta.Description)

	require.Len(t, doc.Nav.Primary, 2)
	require.True(t, doc.Nav.Primary[0].Active)
	require.Empty(t, doc.Nav.Actions, "no login or signup link is configured")
	require.Equal(t, []Link{{Label: "Docs", Href: "https://docs.succeed.ai", External: true}}, doc.Footer.Community)
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, minimalSource())
	first, err := Compose(cfg, "home")
	require.NoError(t, err)
	second, err := Compose(cfg, "home")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestComposeDescriptionOnlyChangesDescription(t *testing.T) {
	t.Parallel()

	src := minimalSource()
	before, err := Compose(mustConfig(t, src), "home")
	require.NoError(t, err)

	src.Description = "A different summary."
	after, err := Compose(mustConfig(t, src), "home")
	require.NoError(t, err)

	require.NotEqual(t, before.Meta.Description, after.Meta.Description)
	require.Equal(t, "A different summary.", after.Meta.Description)
	require.Equal(t, "A different summary.", after.Footer.Description)

	require.Equal(t, before.Meta.Title, after.Meta.Title)
	require.Equal(t, before.Hero, after.Hero)
	require.Equal(t, before.Nav, after.Nav)
	require.Equal(t, before.Trust, after.Trust)
	require.Equal(t, before.Preview, after.Preview)
	require.Equal(t, before.Footer.Product, after.Footer.Product)
	require.Equal(t, before.Footer.Community, after.Footer.Community)
}

func TestComposeUnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := Compose(mustConfig(t, minimalSource()), "pricing")
	require.ErrorIs(t, err, ErrUnknownVariant)
	require.Contains(t, err.Error(), `"pricing"`)
}

func TestComposeDefaultVariants(t *testing.T) {
	t.Parallel()

	cfg, err := site.Default()
	require.NoError(t, err)
	c := New(cfg, Options{BaseURL: "https://succeed.ai"})

	home, err := c.Landing("home")
	require.NoError(t, err)
	require.True(t, home.Hero.CTA.Navigate)
	require.Equal(t, "rainbow", home.Accent)
	require.Equal(t, "https://succeed.ai/", home.Meta.Canonical)
	require.Equal(t, []Link{
		{Label: "Log in", Href: "/login"},
		{Label: "Sign up", Href: "/signup"},
	}, home.Nav.Actions)

	require.Len(t, home.Preview.Status, 3)
	require.Equal(t, "ALERT", home.Preview.Status[0].Tag)
	require.Empty(t, home.Preview.Status[1].Tag)
	require.Equal(t, &Meter{Label: "Export attempts", Value: 1, Max: 3, Percent: 33}, home.Preview.Status[1].Progress)
	require.Equal(t, "ACTIVE", home.Preview.Status[2].Tag)
	require.Len(t, home.Preview.Chat, 3)
	require.True(t, home.Preview.Chat[1].Speaking)
	require.Equal(t, site.SideUser, home.Preview.Chat[1].Side)
	require.Len(t, home.Trust.Logos, 3)

	voice, err := c.Landing("voice")
	require.NoError(t, err)
	require.Equal(t, "/signup", voice.Hero.CTA.Href)
	require.False(t, voice.Hero.CTA.External)
	require.Equal(t, "https://succeed.ai", voice.Hero.Secondary.Href)
	require.Equal(t, "Voice assistance for stuck users | Succeed - AI Product Analytics", voice.Meta.Title)
	require.Equal(t, home.Trust, voice.Trust)
}

func TestComposeContentAndNotFound(t *testing.T) {
	t.Parallel()

	c := New(mustConfig(t, minimalSource()), Options{BaseURL: "https://succeed.ai"})
	updated := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	doc := c.Content(content.Page{
		Slug:      "pricing",
		Path:      "/pricing",
		Title:     "Pricing",
		Summary:   "Plans for every team.",
		Body:      "<p>Free to start.</p>",
		UpdatedAt: updated,
	})
	require.Equal(t, KindContent, doc.Kind)
	require.Equal(t, "Pricing | Succeed", doc.Meta.Title)
	require.Equal(t, "Plans for every team.", doc.Meta.Description)
	require.Equal(t, "https://succeed.ai/pricing", doc.Meta.Canonical)
	require.Len(t, doc.Meta.JSONLD, 3, "organization, website and breadcrumbs")
	require.True(t, doc.Nav.Primary[1].Active)
	require.Equal(t, "<p>Free to start.</p>", doc.Content.BodyHTML)
	require.Equal(t, updated, doc.Content.UpdatedAt)

	missing := c.NotFound("/nope")
	require.Equal(t, KindNotFound, missing.Kind)
	require.Equal(t, "noindex,nofollow", missing.Meta.Robots)
	require.Empty(t, missing.Nav.Crumbs)
	require.Empty(t, missing.VariantID)
}

func TestShellShowsOnlyConfiguredOptionalLinks(t *testing.T) {
	t.Parallel()

	src := minimalSource()
	src.Links[site.LinkLogin] = "/login"
	src.Links[site.LinkDiscord] = "https://discord.gg/succeed"

	doc, err := Compose(mustConfig(t, src), "home")
	require.NoError(t, err)
	require.Equal(t, []Link{{Label: "Log in", Href: "/login"}}, doc.Nav.Actions)
	require.Equal(t, []Link{
		{Label: "Docs", Href: "https://docs.succeed.ai", External: true},
		{Label: "Discord", Href: "https://discord.gg/succeed", External: true},
	}, doc.Footer.Community)
}
