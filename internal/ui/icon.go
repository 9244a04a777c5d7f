package ui

import (
	"github.com/corey/recall/internal/domain/landing"
	g "maragu.dev/gomponents"
)

// iconPaths holds the inner SVG markup of each lucide icon (24x24 viewBox,
// stroke-based). Only icons the page uses are listed.
var iconPaths = map[landing.Icon]string{
	landing.IconArrowRight: `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	landing.IconBookOpen:   `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	landing.IconGlobe:      `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	landing.IconSparkles:   `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/><path d="M20 3v4"/><path d="M22 5h-4"/><path d="M4 17v2"/><path d="M5 18H3"/>`,
}

// Icon renders an inline SVG icon. Unknown names render nothing.
func Icon(name landing.Icon, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return g.Group(nil)
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("class", cn("lucide", "lucide-"+string(name), class)),
		g.Attr("aria-hidden", "true"),
		g.Raw(paths),
	)
}
