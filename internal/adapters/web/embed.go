// Package web serves the landing page, its stylesheet, and a small JSON API
// over HTTP. Navigation targets owned by the app are handed off by redirect.
package web

import "embed"

//go:embed static/app.css
var staticFS embed.FS
