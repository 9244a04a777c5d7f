package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_FixedOrder(t *testing.T) {
	fs := Features()
	require.Len(t, fs, 3)

	assert.Equal(t, "Import URLs", fs[0].Title)
	assert.Equal(t, IconGlobe, fs[0].Icon)
	assert.Equal(t, "/dashboard/import", fs[0].Href)

	assert.Equal(t, "AI Summaries", fs[1].Title)
	assert.Equal(t, IconSparkles, fs[1].Icon)
	assert.Equal(t, "/dashboard/items", fs[1].Href)

	assert.Equal(t, "Organize & Review", fs[2].Title)
	assert.Equal(t, IconBookOpen, fs[2].Icon)
	assert.Equal(t, "/dashboard/discover", fs[2].Href)
}

func TestFeatures_ReturnsCopy(t *testing.T) {
	fs := Features()
	fs[0].Title = "changed"
	fs[1].Href = "/elsewhere"

	again := Features()
	assert.Equal(t, "Import URLs", again[0].Title)
	assert.Equal(t, "/dashboard/items", again[1].Href)
}

func TestFeatures_DescriptionsNonEmpty(t *testing.T) {
	for _, f := range Features() {
		assert.NotEmpty(t, f.Description, f.Title)
	}
}

func TestPageMeta(t *testing.T) {
	m := PageMeta()
	assert.Equal(t, "Recall - AI Powered Insights", m.Title)
	assert.Contains(t, m.Description, "smart notebook for the web")
}

func TestPaths_Distinct(t *testing.T) {
	assert.Equal(t, []string{
		"/",
		"/login",
		"/signup",
		"/dashboard/import",
		"/dashboard/items",
		"/dashboard/discover",
	}, Paths())
}

func TestTargets_CallToActions(t *testing.T) {
	var cta []Target
	for _, tg := range Targets() {
		if tg.Source == "cta" {
			cta = append(cta, tg)
		}
	}
	require.Len(t, cta, 2)
	assert.Equal(t, PathSignup, cta[0].Path)
	assert.Equal(t, "Create Free Account", cta[0].Label)
	assert.Equal(t, PathLogin, cta[1].Path)
	assert.Equal(t, "Sign In", cta[1].Label)
}

func TestTargets_OnlyHomeOwned(t *testing.T) {
	for _, tg := range Targets() {
		assert.Equal(t, tg.Path == PathHome, tg.Owned, tg.Path)
	}
}

func TestIsTarget(t *testing.T) {
	assert.True(t, IsTarget("/"))
	assert.True(t, IsTarget("/login"))
	assert.True(t, IsTarget("/login/"))
	assert.True(t, IsTarget("/dashboard/discover"))
	assert.False(t, IsTarget("/dashboard"))
	assert.False(t, IsTarget("/admin"))
	assert.False(t, IsTarget(""))
}
