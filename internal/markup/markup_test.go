package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInlineKeepsEmphasisDropsBlocks(t *testing.T) {
	t.Parallel()

	got, err := Inline("Never lose a **struggling user** again.")
	require.NoError(t, err)
	require.Equal(t, "Never lose a <strong>struggling user</strong> again.", got)

	got, err = Inline("# Heading with _style_")
	require.NoError(t, err)
	require.Equal(t, "Heading with <em>style</em>", got)
}

func TestInlineStripsScripts(t *testing.T) {
	t.Parallel()

	got, err := Inline(`Hi <script>alert(1)</script><img src=x onerror=alert(1)>`)
	require.NoError(t, err)
	require.NotContains(t, got, "<script")
	require.NotContains(t, got, "onerror")
	require.NotContains(t, got, "<img")
}

func TestBlockRendersDocument(t *testing.T) {
	t.Parallel()

	got, err := Block("## Plans\n\nSee [docs](https://succeed.ai) or [pricing](/pricing).\n\n- one\n- two\n")
	require.NoError(t, err)
	require.Contains(t, got, `<h2 id="plans">Plans</h2>`)
	require.Contains(t, got, `<li>one</li>`)
	require.Contains(t, got, `href="https://succeed.ai"`)
	require.Contains(t, got, `nofollow`)
	require.Contains(t, got, `target="_blank"`)
	require.Contains(t, got, `<a href="/pricing">pricing</a>`)
}
