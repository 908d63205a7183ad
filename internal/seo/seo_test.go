package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"succeed.ai/succeed-web/internal/site"
)

func testConfig(t *testing.T) *site.Config {
	t.Helper()
	cfg, err := site.New(site.Source{
		Name:        "Succeed",
		Description: "Voice help for stuck users.",
		Links: map[site.LinkKey]string{
			site.LinkTwitter: "https://twitter.com/succeed_ai",
			site.LinkGitHub:  "https://github.com/succeed/succeed",
			site.LinkLogin:   "/login",
		},
	})
	require.NoError(t, err)
	return cfg
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	m := Build(testConfig(t), Page{Path: "/", BaseURL: "https://succeed.ai/"})
	require.Equal(t, "Succeed", m.Title)
	require.Equal(t, "Voice help for stuck users.", m.Description)
	require.Equal(t, "https://succeed.ai/", m.Canonical)
	require.Equal(t, "@succeed_ai", m.Twitter.Site)
	require.Equal(t, "index,follow", m.Robots)
	require.Len(t, m.JSONLD, 2)

	var org map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &org))
	require.Equal(t, "Organization", org["@type"])
	require.Equal(t, []any{"https://github.com/succeed/succeed", "https://twitter.com/succeed_ai"}, org["sameAs"])
}

func TestBuildPageOverrides(t *testing.T) {
	t.Parallel()

	m := Build(testConfig(t), Page{
		Title:       "Pricing",
		Description: "Plans for every team.",
		Path:        "/pricing",
		Image:       "/assets/og.png",
		Crumbs:      []BreadcrumbItem{{Name: "Home", Item: "/"}, {Name: "Pricing", Item: "/pricing"}},
		BaseURL:     "https://succeed.ai",
		NoIndex:     true,
	})
	require.Equal(t, "Pricing | Succeed", m.Title)
	require.Equal(t, "Plans for every team.", m.OG.Description)
	require.Equal(t, "https://succeed.ai/assets/og.png", m.OG.Image)
	require.Equal(t, "noindex,nofollow", m.Robots)
	require.Len(t, m.JSONLD, 3)
	require.Contains(t, m.JSONLD[2], `"item":"https://succeed.ai/pricing"`)
}

func TestBuildWithoutBaseURL(t *testing.T) {
	t.Parallel()

	m := Build(testConfig(t), Page{Path: "/voice"})
	require.Empty(t, m.Canonical)
	require.Empty(t, m.OG.URL)
}
