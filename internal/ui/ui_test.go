package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/corey/recall/internal/domain/landing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

// render writes a node to a string, failing the test on error.
func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	return sb.String()
}

func TestButtonClass_Defaults(t *testing.T) {
	c := ButtonClass("", "", "")
	assert.Contains(t, c, "bg-primary")
	assert.Contains(t, c, "h-9 px-4 py-2")
	assert.True(t, strings.HasPrefix(c, "inline-flex"))
}

func TestButtonClass_OutlineLargeAppendsExtra(t *testing.T) {
	c := ButtonClass(VariantOutline, SizeLg, "w-full rounded-full")
	assert.Contains(t, c, "border bg-background")
	assert.Contains(t, c, "h-10 rounded-md px-6")
	assert.True(t, strings.HasSuffix(c, "w-full rounded-full"))
	assert.NotContains(t, c, "bg-primary text-primary-foreground")
}

func TestCN_SkipsEmpty(t *testing.T) {
	assert.Equal(t, "a b", cn("", " a ", "", "b"))
	assert.Equal(t, "", cn())
}

func TestIcon_Known(t *testing.T) {
	out := render(t, Icon(landing.IconGlobe, "h-4 w-4"))
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `class="lucide lucide-globe h-4 w-4"`)
	assert.Contains(t, out, `<circle cx="12" cy="12" r="10"/>`)
}

func TestIcon_UnknownRendersNothing(t *testing.T) {
	assert.Equal(t, "", render(t, Icon("no-such-icon", "x")))
}

func TestLink_PassesHrefThrough(t *testing.T) {
	out := render(t, Link("/dashboard/import", "", g.Text("go")))
	assert.Equal(t, `<a href="/dashboard/import">go</a>`, out)
}

func TestFeatures_RenderEachEntry(t *testing.T) {
	out := render(t, Features(landing.Features()))

	for _, f := range landing.Features() {
		assert.Contains(t, out, strings.ReplaceAll(f.Title, "&", "&amp;"))
		assert.Contains(t, out, f.Description)
		assert.Contains(t, out, `href="`+f.Href+`"`)
		assert.Contains(t, out, "lucide-"+string(f.Icon))
	}
	assert.Equal(t, 3, strings.Count(out, landing.FeatureAction))
}

func TestFeatures_StaggeredDelay(t *testing.T) {
	out := render(t, Features(landing.Features()))
	assert.Contains(t, out, `style="animation-delay: 0ms"`)
	assert.Contains(t, out, `style="animation-delay: 100ms"`)
	assert.Contains(t, out, `style="animation-delay: 200ms"`)
}

func TestFeatures_EmptyList(t *testing.T) {
	out := render(t, Features(nil))
	assert.Contains(t, out, landing.FeaturesHeadline)
	assert.NotContains(t, out, landing.FeatureAction)
}

func TestHero_GetStartedLinksToSignup(t *testing.T) {
	out := render(t, Hero())
	assert.Contains(t, out, landing.HeroAction)
	assert.Contains(t, out, `href="/signup"`)
	assert.Contains(t, out, landing.PreviewURL)
	assert.Equal(t, 4, strings.Count(out, "data-preview-card="))
}

func TestCTA_Links(t *testing.T) {
	out := render(t, CTA())

	signup := strings.Index(out, `href="/signup"`)
	login := strings.Index(out, `href="/login"`)
	require.NotEqual(t, -1, signup)
	require.NotEqual(t, -1, login)
	assert.Less(t, signup, login, "sign-up comes before sign-in")

	assert.Contains(t, out, landing.CTASignup)
	assert.Contains(t, out, landing.CTALogin)
}

func TestFooter_Year(t *testing.T) {
	out := render(t, Footer(2031))
	assert.Contains(t, out, "© 2031 AI Powered Insights. All rights reserved.")
	assert.Contains(t, out, landing.Brand)
}

func TestLandingPage_Document(t *testing.T) {
	out := render(t, LandingPage(PageOptions{Year: 2025}))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Recall - AI Powered Insights</title>")
	assert.Contains(t, out, `<meta name="description" content="Your smart notebook for the web.`)
	assert.Contains(t, out, `<link rel="stylesheet" href="/static/app.css">`)
	assert.NotContains(t, out, `rel="canonical"`)

	// sections appear in page order
	order := []string{"<header", `id="hero"`, `id="features"`, `id="cta"`, "<footer"}
	last := -1
	for _, marker := range order {
		i := strings.Index(out, marker)
		require.NotEqual(t, -1, i, marker)
		assert.Greater(t, i, last, marker)
		last = i
	}
}

func TestLandingPage_EveryTargetLinked(t *testing.T) {
	out := render(t, LandingPage(PageOptions{Year: 2025}))
	for _, p := range landing.Paths() {
		assert.Contains(t, out, `href="`+p+`"`, p)
	}
}

func TestLandingPage_CustomStylesheetsAndCanonical(t *testing.T) {
	out := render(t, LandingPage(PageOptions{
		Year:         2025,
		Stylesheets:  []string{"/a.css", "https://cdn.example.com/b.css"},
		CanonicalURL: "https://recall-app.com/",
	}))
	assert.NotContains(t, out, DefaultStylesheet)
	assert.Contains(t, out, `href="/a.css"`)
	assert.Contains(t, out, `href="https://cdn.example.com/b.css"`)
	assert.Contains(t, out, `<link rel="canonical" href="https://recall-app.com/">`)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestLandingPage_WriterError(t *testing.T) {
	err := LandingPage(PageOptions{Year: 2025}).Render(failWriter{})
	assert.Error(t, err)
}
