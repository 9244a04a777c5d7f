package ui

import (
	"fmt"
	"strconv"

	"github.com/corey/recall/internal/domain/landing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Navbar is the sticky top bar: brand on the left, sign-in and sign-up on the right.
func Navbar() g.Node {
	return h.Header(
		h.Class("sticky top-0 z-50 w-full border-b bg-background/80 backdrop-blur-sm"),
		h.Nav(
			h.Class("mx-auto flex h-16 max-w-6xl items-center justify-between px-4"),
			Link(landing.PathHome, "flex items-center gap-2 font-semibold",
				Icon(landing.IconSparkles, "h-5 w-5 text-primary"),
				g.Text(landing.Brand),
			),
			h.Div(
				h.Class("flex items-center gap-2"),
				ButtonLink(landing.PathLogin, VariantGhost, SizeSm, "rounded-full", g.Text(landing.CTALogin)),
				ButtonLink(landing.PathSignup, VariantDefault, SizeSm, "rounded-full", g.Text(landing.HeroAction)),
			),
		),
	)
}

// Hero is the opening section: badge, headline, lead paragraph, primary
// action, and the app preview mockup.
func Hero() g.Node {
	return h.Section(
		h.ID("hero"),
		h.Class("relative flex flex-col items-center justify-center overflow-hidden px-4 py-20 text-center md:py-32"),

		h.Div(
			h.Class("pointer-events-none absolute inset-0 overflow-hidden"),
			Box("animate-blob absolute -left-40 -top-40 h-80 w-80 rounded-full bg-primary/30 opacity-70 blur-3xl"),
			Box("animate-blob animation-delay-2000 absolute -right-40 top-20 h-80 w-80 rounded-full bg-purple-500/30 opacity-70 blur-3xl"),
			Box("animate-blob animation-delay-4000 absolute -bottom-40 left-1/2 h-80 w-80 -translate-x-1/2 rounded-full bg-pink-500/30 opacity-70 blur-3xl"),
		),

		h.Div(
			h.Class("relative z-10 mx-auto max-w-3xl space-y-6 animate-in fade-in slide-in-from-bottom-4 duration-700"),
			h.Div(
				h.Class("inline-flex items-center gap-2 rounded-full border border-primary/20 bg-primary/5 px-4 py-1.5 text-sm text-muted-foreground backdrop-blur-sm"),
				Icon(landing.IconSparkles, "h-4 w-4 text-primary"),
				g.Text(landing.HeroBadge),
			),
			h.H1(
				h.Class("text-4xl font-extrabold tracking-tight lg:text-6xl"),
				g.Text(landing.HeroHeadline+" "),
				h.Span(h.Class("text-primary"), g.Text(landing.HeroAccent)),
			),
			h.P(
				h.Class("text-xl leading-relaxed text-muted-foreground"),
				g.Text(landing.HeroLead),
			),
			h.Div(
				h.Class("flex items-center justify-center gap-4 pt-4"),
				ButtonLink(landing.PathSignup, VariantDefault, SizeLg,
					"group relative overflow-hidden rounded-full px-8 transition-all duration-300 hover:scale-105 hover:shadow-lg hover:shadow-primary/25",
					h.Span(
						h.Class("relative z-10 flex items-center"),
						g.Text(landing.HeroAction),
						Icon(landing.IconArrowRight, "ml-2 h-4 w-4 transition-transform group-hover:translate-x-1"),
					),
				),
			),
		),

		AppPreview(),
	)
}

// previewCards is how many placeholder cards the mockup shows.
const previewCards = 4

// AppPreview is a decorative mockup of the dashboard inside fake browser chrome.
func AppPreview() g.Node {
	cards := make([]g.Node, 0, previewCards)
	for i := 1; i <= previewCards; i++ {
		cards = append(cards, h.Div(
			h.Class("rounded-lg border bg-card p-3 transition-all hover:border-primary/30"),
			g.Attr("data-preview-card", strconv.Itoa(i)),
			h.Div(
				h.Class("mb-2 flex items-center gap-2"),
				Box("h-4 w-4 rounded bg-primary/30"),
				Box("h-3 w-24 rounded bg-muted"),
			),
			h.Div(
				h.Class("space-y-1.5"),
				Box("h-2 w-full rounded bg-muted/50"),
				Box("h-2 w-3/4 rounded bg-muted/50"),
			),
			h.Div(
				h.Class("mt-3 flex gap-1.5"),
				Box("h-5 w-12 rounded-full bg-primary/10"),
				Box("h-5 w-14 rounded-full bg-purple-500/10"),
			),
		))
	}

	return h.Div(
		h.Class("relative z-10 mt-16 w-full max-w-4xl animate-in fade-in slide-in-from-bottom-8 duration-1000"),
		g.Attr("aria-hidden", "true"),
		h.Div(
			h.Class("relative mx-auto overflow-hidden rounded-xl border bg-card/50 p-1 shadow-2xl backdrop-blur-sm"),
			Box("absolute inset-0 bg-linear-to-br from-primary/10 via-transparent to-purple-500/10"),
			h.Div(
				h.Class("relative rounded-lg border bg-background p-4"),
				h.Div(
					h.Class("mb-4 flex items-center gap-2"),
					h.Div(
						h.Class("flex gap-1.5"),
						Box("h-3 w-3 rounded-full bg-red-500/80"),
						Box("h-3 w-3 rounded-full bg-yellow-500/80"),
						Box("h-3 w-3 rounded-full bg-green-500/80"),
					),
					h.Div(
						h.Class("ml-4 flex-1 rounded-md bg-muted/50 px-3 py-1 text-xs text-muted-foreground"),
						g.Text(landing.PreviewURL),
					),
				),
				h.Div(
					h.Class("space-y-3"),
					h.Div(
						h.Class("flex items-center justify-between"),
						Box("h-6 w-32 rounded bg-muted/70"),
						Box("h-8 w-24 rounded-full bg-primary/20"),
					),
					h.Div(h.Class("grid gap-3 md:grid-cols-2"), g.Group(cards)),
				),
			),
		),
		Box("absolute -bottom-10 left-1/2 h-40 w-3/4 -translate-x-1/2 rounded-full bg-primary/20 blur-3xl"),
	)
}

// Features renders one card per feature. Cards animate in with a 100ms stagger.
func Features(features []landing.Feature) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, featureCard(i, f))
	}

	return h.Section(
		h.ID("features"),
		h.Class("relative px-4 py-20"),
		h.Div(
			h.Class("mx-auto max-w-6xl"),
			h.Div(
				h.Class("mb-12 text-center"),
				h.Div(
					h.Class("mb-4 inline-flex items-center gap-2 rounded-full border bg-muted/50 px-4 py-1.5 text-sm text-muted-foreground"),
					Icon(landing.IconGlobe, "h-4 w-4 text-primary"),
					g.Text(landing.FeaturesBadge),
				),
				h.H2(h.Class("mb-3 text-3xl font-bold tracking-tight md:text-4xl"), g.Text(landing.FeaturesHeadline)),
				h.P(h.Class("mx-auto max-w-2xl text-muted-foreground"), g.Text(landing.FeaturesLead)),
			),
			h.Div(h.Class("grid gap-6 sm:grid-cols-2 lg:grid-cols-3"), g.Group(cards)),
		),
	)
}

func featureCard(index int, f landing.Feature) g.Node {
	return Card(
		"group relative flex flex-col overflow-hidden border-transparent bg-card/50 shadow-md backdrop-blur-sm transition-all duration-300 hover:-translate-y-1 hover:shadow-xl",
		g.Attr("style", fmt.Sprintf("animation-delay: %dms", index*100)),
		Box("absolute inset-0 rounded-xl bg-linear-to-br from-primary/20 via-transparent to-purple-500/20 opacity-0 transition-opacity duration-300 group-hover:opacity-100"),
		Box("absolute inset-px rounded-xl bg-card"),
		CardHeader("relative",
			h.Div(
				h.Class("mb-4 flex h-12 w-12 items-center justify-center rounded-xl bg-linear-to-br from-primary/20 to-purple-500/20 text-primary transition-transform duration-300 group-hover:scale-110"),
				Icon(f.Icon, "h-6 w-6"),
			),
			CardTitle("text-xl", g.Text(f.Title)),
			CardDescription("text-sm", g.Text(f.Description)),
		),
		CardContent("relative flex-1"),
		CardFooter("relative",
			ButtonLink(f.Href, VariantOutline, SizeDefault, "w-full rounded-full",
				g.Text(landing.FeatureAction),
				Icon(landing.IconArrowRight, "ml-2 h-4 w-4"),
			),
		),
	)
}

// CTA is the closing call to action: sign up or sign in.
func CTA() g.Node {
	return h.Section(
		h.ID("cta"),
		h.Class("relative overflow-hidden px-4 py-24"),
		h.Div(
			h.Class("pointer-events-none absolute inset-0"),
			Box("absolute left-1/2 top-1/2 h-96 w-96 -translate-x-1/2 -translate-y-1/2 rounded-full bg-primary/10 blur-3xl"),
		),
		h.Div(
			h.Class("relative z-10 mx-auto max-w-2xl text-center"),
			h.H2(h.Class("mb-4 text-3xl font-bold tracking-tight md:text-4xl"), g.Text(landing.CTAHeadline)),
			h.P(h.Class("mb-8 text-lg text-muted-foreground"), g.Text(landing.CTALead)),
			h.Div(
				h.Class("flex flex-col items-center justify-center gap-4 sm:flex-row"),
				ButtonLink(landing.PathSignup, VariantDefault, SizeLg,
					"group rounded-full px-8 transition-all duration-300 hover:scale-105 hover:shadow-lg hover:shadow-primary/25",
					g.Text(landing.CTASignup),
					Icon(landing.IconArrowRight, "ml-2 h-4 w-4 transition-transform group-hover:translate-x-1"),
				),
				ButtonLink(landing.PathLogin, VariantOutline, SizeLg,
					"rounded-full px-8 transition-all duration-300 hover:scale-105",
					g.Text(landing.CTALogin),
				),
			),
		),
	)
}

// Footer shows the brand and a copyright line for year.
func Footer(year int) g.Node {
	return h.Footer(
		h.Class("border-t py-8"),
		h.Div(
			h.Class("mx-auto max-w-6xl px-4"),
			h.Div(
				h.Class("flex flex-col items-center justify-between gap-4 md:flex-row"),
				h.Div(
					h.Class("flex items-center gap-2 text-sm text-muted-foreground"),
					h.Span(h.Class("font-semibold text-foreground"), g.Text(landing.Brand)),
					h.Span(g.Textf("© %d %s", year, landing.FooterTagline)),
				),
			),
		),
	)
}
