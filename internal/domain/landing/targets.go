package landing

import "strings"

// Navigation targets. These are opaque to this module: the app router owns them.
const (
	PathHome     = "/"
	PathImport   = "/dashboard/import"
	PathItems    = "/dashboard/items"
	PathDiscover = "/dashboard/discover"
	PathSignup   = "/signup"
	PathLogin    = "/login"
)

// Target is a link destination plus where on the page it appears.
type Target struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Source string `json:"source"` // navbar, hero, features, cta
	Owned  bool   `json:"owned"`  // served by this module
}

// Targets returns every navigation target on the page, in page order.
// A path may appear more than once when several links point at it.
func Targets() []Target {
	out := []Target{
		{Path: PathHome, Label: Brand, Source: "navbar", Owned: true},
		{Path: PathLogin, Label: CTALogin, Source: "navbar"},
		{Path: PathSignup, Label: HeroAction, Source: "navbar"},
		{Path: PathSignup, Label: HeroAction, Source: "hero"},
	}
	for _, f := range features {
		out = append(out, Target{Path: f.Href, Label: f.Title, Source: "features"})
	}
	out = append(out,
		Target{Path: PathSignup, Label: CTASignup, Source: "cta"},
		Target{Path: PathLogin, Label: CTALogin, Source: "cta"},
	)
	return out
}

// Paths returns the distinct target paths, in first-seen order.
func Paths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range Targets() {
		if seen[t.Path] {
			continue
		}
		seen[t.Path] = true
		out = append(out, t.Path)
	}
	return out
}

// IsTarget reports whether path is one of the page's navigation targets.
// A single trailing slash is ignored, so "/login/" matches "/login".
func IsTarget(path string) bool {
	if path != PathHome {
		path = strings.TrimSuffix(path, "/")
	}
	for _, p := range Paths() {
		if p == path {
			return true
		}
	}
	return false
}
