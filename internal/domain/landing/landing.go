// Package landing holds the compiled-in copy of the Recall landing page:
// page metadata, the feature list, and the navigation targets the page links to.
//
// Everything here is constant. Accessors return copies so a caller cannot
// change what the next render sees.
package landing

// ContentVersion identifies the compiled-in copy. Bump it whenever any text,
// feature, or link below changes; rendered snapshots are keyed on it.
const ContentVersion = "2025.1"

// Brand is the product name shown in the navbar and footer.
const Brand = "Recall"

// Icon names a lucide icon. The ui package maps each name to SVG markup.
type Icon string

const (
	IconArrowRight Icon = "arrow-right"
	IconBookOpen   Icon = "book-open"
	IconGlobe      Icon = "globe"
	IconSparkles   Icon = "sparkles"
)

// Feature is one card in the features grid.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
	Href        string `json:"href"`
}

var features = [...]Feature{
	{
		Title:       "Import URLs",
		Description: "Save articles and documents from anywhere on the web.",
		Icon:        IconGlobe,
		Href:        PathImport,
	},
	{
		Title:       "AI Summaries",
		Description: "Get instant, key-point summaries of your saved content.",
		Icon:        IconSparkles,
		Href:        PathItems,
	},
	{
		Title:       "Organize & Review",
		Description: "Automatically categorized insights for easy retrieval.",
		Icon:        IconBookOpen,
		Href:        PathDiscover,
	},
}

// Features returns the feature cards in display order.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features[:])
	return out
}

// Meta is the document-level metadata for the page head.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageMeta returns the title and description of the landing page.
func PageMeta() Meta {
	return Meta{
		Title:       "Recall - AI Powered Insights",
		Description: "Your smart notebook for the web. Save links, get AI-powered summaries, and organize your insights automatically.",
	}
}

// Section copy. Kept next to the features so a content change touches one file.
const (
	HeroBadge    = "AI-Powered Insights"
	HeroHeadline = "Your Smart Notebook for the"
	HeroAccent   = "Web"
	HeroLead     = "Recall acts like a smart notebook. Save links to articles or documents, and let our AI pull out the key points and organize them for you."
	HeroAction   = "Get Started"

	PreviewURL = "recall-app.com/dashboard"

	FeaturesBadge    = "Core Features"
	FeaturesHeadline = "Smart Features for Smart Readers"
	FeaturesLead     = "Everything you need to capture and digest information efficiently."
	FeatureAction    = "Try it now"

	CTAHeadline = "Start Organizing Your Web Today"
	CTALead     = "Join thousands of users who are already using Recall to declutter their reading list and retain more information."
	CTASignup   = "Create Free Account"
	CTALogin    = "Sign In"

	FooterTagline = "AI Powered Insights. All rights reserved."
)
