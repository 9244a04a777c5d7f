package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/corey/recall/internal/adapters/web"
	"github.com/corey/recall/internal/app"
	"github.com/corey/recall/internal/config"
	"github.com/corey/recall/internal/domain/landing"
	"github.com/corey/recall/internal/ports"
)

// Terminal styles. lipgloss drops the color codes when stdout is not a TTY.
var (
	styleBrand = lipgloss.NewStyle().Bold(true)
	styleURL   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleLabel = lipgloss.NewStyle().Faint(true)
	styleOwned = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleApp   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// formatTargets lists every link on the page:
//
//	⚡ 9 links │ 6 paths
//	  navbar    /         Recall       page
//	  navbar    /login    Sign In      app
func formatTargets(targets []landing.Target) string {
	srcW, pathW, labelW := 0, 0, 0
	for _, t := range targets {
		srcW = max(srcW, len(t.Source))
		pathW = max(pathW, len(t.Path))
		labelW = max(labelW, len(t.Label))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s │ %d paths\n",
		styleBrand.Render(fmt.Sprintf("⚡ %d links", len(targets))), len(landing.Paths()))
	for _, t := range targets {
		owner := styleApp.Render("app")
		if t.Owned {
			owner = styleOwned.Render("page")
		}
		fmt.Fprintf(&sb, "  %s  %s  %s  %s\n",
			styleLabel.Render(pad(t.Source, srcW)),
			styleURL.Render(pad(t.Path, pathW)),
			pad(t.Label, labelW),
			owner)
	}
	return sb.String()
}

// formatConfig renders the effective configuration as aligned key/value rows.
func formatConfig(cfg config.Config, paths *app.Paths) string {
	source := cfg.Path
	if source == "" {
		source = "(defaults)"
	}
	appURL := cfg.AppURL
	if appURL == "" {
		appURL = "(none, app links 404 locally)"
	}
	canonical := cfg.CanonicalURL
	if canonical == "" {
		canonical = "(none)"
	}
	sheets := "(embedded)"
	if len(cfg.Stylesheets) > 0 {
		sheets = strings.Join(cfg.Stylesheets, ", ")
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(stderr)"
	}

	rows := [][2]string{
		{"source", source},
		{"addr", cfg.Addr},
		{"app_url", appURL},
		{"canonical_url", canonical},
		{"stylesheets", sheets},
		{"dev", fmt.Sprint(cfg.Dev)},
		{"data_dir", paths.Root},
		{"db", paths.DB},
		{"port_file", paths.PortFile},
		{"cache.persist", fmt.Sprint(cfg.Cache.Persist)},
		{"log.level", cfg.Log.Level},
		{"log.format", cfg.Log.Format},
		{"log.file", logFile},
	}

	var sb strings.Builder
	sb.WriteString(styleBrand.Render("⚡ recall config") + "\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "  %s  %s\n", styleLabel.Render(pad(r[0], 13)), r[1])
	}
	return sb.String()
}

// formatSnapshots lists stored snapshots, one per line, newest first.
func formatSnapshots(snaps []*ports.Snapshot) string {
	if len(snaps) == 0 {
		return "⚡ no snapshots stored\n"
	}
	var sb strings.Builder
	sb.WriteString(styleBrand.Render(fmt.Sprintf("⚡ %d snapshots", len(snaps))) + "\n")
	for _, s := range snaps {
		fmt.Fprintf(&sb, "  %s  %s  %d  v%s  %s  %s\n",
			styleLabel.Render(s.RenderedAt.UTC().Format(time.RFC3339)),
			s.Route,
			s.Year,
			s.ContentVersion,
			styleURL.Render(s.ETag),
			formatBytes(len(s.HTML)))
	}
	return sb.String()
}

// formatHealth summarizes a /api/health response.
func formatHealth(base string, h *web.HealthResult) string {
	status := styleOwned.Render(h.Status)
	if h.Status != "ok" {
		status = styleWarn.Render(h.Status)
	}
	appURL := h.AppURL
	if appURL == "" {
		appURL = "(none)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s │ %s │ up %s\n",
		styleBrand.Render("⚡ recall"), status, styleURL.Render(base), h.Uptime)
	fmt.Fprintf(&sb, "  content  v%s\n", h.ContentVersion)
	fmt.Fprintf(&sb, "  app url  %s\n", appURL)
	fmt.Fprintf(&sb, "  renders  %d │ cache hits %d │ store hits %d\n", h.Renders, h.CacheHits, h.StoreHits)
	fmt.Fprintf(&sb, "  traffic  %d requests in 5m │ p50 %.2fms\n", h.Requests, h.P50Ms)
	return sb.String()
}

// formatBytes renders a byte count as B, KB, or MB.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
