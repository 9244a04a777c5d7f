// Package ui is the component library behind the landing page: buttons,
// cards, icons, and the page sections composed from them.
//
// Components are gomponents nodes. Class strings follow the utility-class
// conventions of the app's stylesheet and are treated as opaque text; joining
// is append-only, so a later class never removes an earlier one.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// cn joins class fragments, skipping empty ones.
func cn(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// Variant selects a button color treatment.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantOutline Variant = "outline"
	VariantGhost   Variant = "ghost"
)

// Size selects a button height and padding.
type Size string

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all disabled:pointer-events-none disabled:opacity-50 shrink-0 outline-none focus-visible:border-ring focus-visible:ring-ring/50 focus-visible:ring-[3px]"

var buttonVariants = map[Variant]string{
	VariantDefault: "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantOutline: "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground",
	VariantGhost:   "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizes = map[Size]string{
	SizeDefault: "h-9 px-4 py-2",
	SizeSm:      "h-8 rounded-md gap-1.5 px-3",
	SizeLg:      "h-10 rounded-md px-6",
}

// ButtonClass builds the class list for a button-styled element.
// Unknown variants and sizes fall back to the defaults.
func ButtonClass(v Variant, s Size, class string) string {
	vc, ok := buttonVariants[v]
	if !ok {
		vc = buttonVariants[VariantDefault]
	}
	sc, ok := buttonSizes[s]
	if !ok {
		sc = buttonSizes[SizeDefault]
	}
	return cn(buttonBase, vc, sc, class)
}

// Link renders an anchor to an app route. The href is passed through untouched;
// the app router resolves it.
func Link(href, class string, children ...g.Node) g.Node {
	return h.A(h.Href(href), g.If(class != "", h.Class(class)), g.Group(children))
}

// ButtonLink is a Link styled as a button.
func ButtonLink(href string, v Variant, s Size, class string, children ...g.Node) g.Node {
	return Link(href, ButtonClass(v, s, class), children...)
}

// Card is a bordered surface. Extra attributes (style, data-*) may be passed
// as children alongside content nodes.
func Card(class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class(cn("bg-card text-card-foreground flex flex-col gap-6 rounded-xl border py-6 shadow-sm", class)),
		g.Attr("data-slot", "card"),
		g.Group(children),
	)
}

func CardHeader(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("grid auto-rows-min items-start gap-1.5 px-6", class)), g.Group(children))
}

func CardTitle(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("leading-none font-semibold", class)), g.Group(children))
}

func CardDescription(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("text-muted-foreground text-sm", class)), g.Group(children))
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("px-6", class)), g.Group(children))
}

func CardFooter(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("flex items-center px-6", class)), g.Group(children))
}

// Box is an empty div used for decorative shapes.
func Box(class string) g.Node {
	return h.Div(h.Class(class))
}
