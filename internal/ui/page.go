package ui

import (
	"github.com/corey/recall/internal/domain/landing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultStylesheet is the embedded stylesheet served by the web adapter.
const DefaultStylesheet = "/static/app.css"

// PageOptions controls the parts of the document that vary between renders.
type PageOptions struct {
	Year         int      // footer copyright year
	Stylesheets  []string // hrefs linked from <head>; empty means DefaultStylesheet
	CanonicalURL string   // optional <link rel="canonical">
}

// LandingPage returns the complete HTML document for "/".
func LandingPage(opts PageOptions) g.Node {
	meta := landing.PageMeta()
	sheets := opts.Stylesheets
	if len(sheets) == 0 {
		sheets = []string{DefaultStylesheet}
	}

	links := make([]g.Node, 0, len(sheets))
	for _, s := range sheets {
		links = append(links, h.Link(h.Rel("stylesheet"), h.Href(s)))
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(meta.Title)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				h.Meta(g.Attr("property", "og:title"), h.Content(meta.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(meta.Description)),
				g.If(opts.CanonicalURL != "", h.Link(h.Rel("canonical"), h.Href(opts.CanonicalURL))),
				g.Group(links),
			),
			h.Body(
				h.Div(
					h.Class("min-h-screen bg-background"),
					Navbar(),
					h.Main(
						Hero(),
						Features(landing.Features()),
						CTA(),
					),
					Footer(opts.Year),
				),
			),
		),
	)
}
