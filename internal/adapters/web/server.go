package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/corey/recall/internal/adapters/logger"
	"github.com/corey/recall/internal/domain/landing"
	"github.com/corey/recall/internal/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Pages supplies the rendered landing page.
type Pages interface {
	Current(ctx context.Context) (*ports.Snapshot, error)
	Stats() ports.RenderStats
}

// Options configures a Server.
type Options struct {
	AppURL   string // origin for app-owned targets; empty = 404 them
	PortFile string // where the bound URL is written for discovery; empty = none
	Dev      bool   // disables client caching of the page
	Log      *slog.Logger
}

// Server serves the landing page and JSON API over HTTP.
type Server struct {
	pages    Pages
	log      *slog.Logger
	dev      bool
	listener net.Listener
	httpSrv  *http.Server
	started  time.Time
	latency  *latencyTracker
	stopOnce sync.Once

	mu     sync.RWMutex
	appURL string

	portFilePath string
}

// NewServer creates an HTTP server for the landing page.
func NewServer(pages Pages, opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		pages:        pages,
		log:          log,
		dev:          opts.Dev,
		appURL:       opts.AppURL,
		portFilePath: opts.PortFile,
		started:      time.Now(),
		latency:      newLatencyTracker(LatencyWindow),
	}
}

// SetAppURL swaps the hand-off origin. Safe for concurrent use.
func (s *Server) SetAppURL(u string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appURL = u
}

// AppURL returns the current hand-off origin.
func (s *Server) AppURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appURL
}

// Handler builds the router. Exposed for tests and for embedding in another server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log, s.latency))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.Get("/", s.handleLanding)
	r.Handle("/static/*", http.FileServerFS(staticFS))
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/routes", s.handleRoutes)
	r.NotFound(s.handleNotFound)

	return r
}

// Start begins listening on addr and serves in the background.
// Writes the server URL to the port file when one is configured.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.started = time.Now()
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.portFilePath != "" {
		if err := os.WriteFile(s.portFilePath, []byte(s.URL()), 0644); err != nil {
			s.log.Warn("server.port_file_failed", "path", s.portFilePath, "err", err)
		}
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server.serve_failed", "err", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.httpSrv.Shutdown(ctx); err != nil {
				s.log.Warn("server.shutdown", "err", err)
			}
		}
		if s.portFilePath != "" {
			os.Remove(s.portFilePath)
		}
	})
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	tcp, ok := s.listener.Addr().(*net.TCPAddr)
	if !ok {
		return "http://" + s.Addr()
	}
	host := "localhost"
	if !tcp.IP.IsUnspecified() && !tcp.IP.IsLoopback() {
		host = tcp.IP.String()
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, fmt.Sprint(tcp.Port)))
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	snap, err := s.pages.Current(r.Context())
	if err != nil {
		s.log.Error("page.render_failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", snap.ETag)
	if s.dev {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=300")
	}
	if etagMatches(r.Header.Values("If-None-Match"), snap.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(snap.HTML)
}

// etagMatches applies the weak comparison If-None-Match uses: each header
// may hold a comma-separated list, a W/ prefix is ignored, and "*" matches
// any current representation.
func etagMatches(headers []string, etag string) bool {
	want := strings.TrimPrefix(etag, "W/")
	for _, hdr := range headers {
		for _, tok := range strings.Split(hdr, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "*" || (tok != "" && strings.TrimPrefix(tok, "W/") == want) {
				return true
			}
		}
	}
	return false
}

// HealthResult is the /api/health payload.
type HealthResult struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	ContentVersion string  `json:"content_version"`
	AppURL         string  `json:"app_url,omitempty"`
	Requests       int     `json:"requests_5m"` // requests within LatencyWindow
	P50Ms          float64 `json:"p50_ms"`      // median request time within LatencyWindow
	ports.RenderStats
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, p50 := s.latency.Summary()
	result := HealthResult{
		Status:         "ok",
		Uptime:         time.Since(s.started).Round(time.Second).String(),
		ContentVersion: landing.ContentVersion,
		AppURL:         s.AppURL(),
		Requests:       n,
		P50Ms:          float64(p50.Microseconds()) / 1000,
		RenderStats:    s.pages.Stats(),
	}
	writeJSON(w, http.StatusOK, result)
}

// RoutesResult is the /api/routes payload.
type RoutesResult struct {
	Targets []landing.Target `json:"targets"`
	Count   int              `json:"count"`
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	targets := landing.Targets()
	writeJSON(w, http.StatusOK, RoutesResult{Targets: targets, Count: len(targets)})
}

// handleNotFound hands app-owned navigation targets to the app origin.
// Anything else, or any target when no origin is configured, is a 404.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	appURL := s.AppURL()
	if appURL != "" && landing.IsTarget(r.URL.Path) {
		dest := appURL + r.URL.Path
		if r.URL.RawQuery != "" {
			dest += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, dest, http.StatusFound)
		return
	}
	http.NotFound(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
