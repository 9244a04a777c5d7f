package app

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/corey/recall/internal/adapters/logger"
	"github.com/corey/recall/internal/domain/landing"
	"github.com/corey/recall/internal/ports"
	"github.com/corey/recall/internal/ui"
	"github.com/google/uuid"
)

// Renderer produces landing page snapshots and caches them. Lookups go
// memory, then the snapshot store (if any), then a fresh render which is
// written back to both.
//
// A snapshot is fully determined by its key (content version, year, page
// options), so a cached copy is always identical to a fresh render.
type Renderer struct {
	mu    sync.Mutex
	store ports.SnapshotStore // nil = memory only
	log   *slog.Logger
	now   func() time.Time

	stylesheets []string
	canonical   string
	cache       map[string]*ports.Snapshot
	stats       ports.RenderStats
}

// NewRenderer creates a renderer. store may be nil.
func NewRenderer(store ports.SnapshotStore, log *slog.Logger) *Renderer {
	if log == nil {
		log = logger.Discard()
	}
	return &Renderer{
		store: store,
		log:   log,
		now:   time.Now,
		cache: make(map[string]*ports.Snapshot),
	}
}

// SetClock replaces the time source used for the footer year and timestamps.
func (r *Renderer) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// SetOptions changes the document options and drops the memory cache.
// Stored snapshots for the old options stay in the store under their own keys.
func (r *Renderer) SetOptions(stylesheets []string, canonicalURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stylesheets = append([]string(nil), stylesheets...)
	r.canonical = canonicalURL
	r.cache = make(map[string]*ports.Snapshot)
}

// Invalidate drops the memory cache.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*ports.Snapshot)
}

// Stats returns request counters.
func (r *Renderer) Stats() ports.RenderStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Current renders (or returns the cached) page for the current year.
func (r *Renderer) Current(ctx context.Context) (*ports.Snapshot, error) {
	r.mu.Lock()
	year := r.now().Year()
	r.mu.Unlock()
	return r.Render(ctx, year)
}

// Render returns the landing page snapshot for year.
func (r *Renderer) Render(ctx context.Context, year int) (*ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.keyLocked(year)
	if snap, ok := r.cache[key]; ok {
		r.stats.CacheHits++
		return snap, nil
	}

	if r.store != nil {
		snap, err := r.store.LoadSnapshot(key)
		if err != nil {
			r.log.Warn("snapshot.load_failed", "key", key, "err", err)
		} else if snap != nil {
			r.stats.StoreHits++
			r.cache[key] = snap
			return snap, nil
		}
	}

	start := time.Now()
	var buf bytes.Buffer
	page := ui.LandingPage(ui.PageOptions{
		Year:         year,
		Stylesheets:  r.stylesheets,
		CanonicalURL: r.canonical,
	})
	if err := page.Render(&buf); err != nil {
		return nil, &ports.OpError{Op: "render.landing", Kind: ports.KindRender, Err: err}
	}

	sum := sha256.Sum256(buf.Bytes())
	snap := &ports.Snapshot{
		ID:             uuid.NewString(),
		Route:          landing.PathHome,
		Year:           year,
		ContentVersion: landing.ContentVersion,
		ETag:           `"` + hex.EncodeToString(sum[:8]) + `"`,
		HTML:           buf.Bytes(),
		RenderedAt:     r.now().UTC(),
	}
	r.stats.Renders++
	r.cache[key] = snap
	r.log.Debug("page.rendered", "year", year, "bytes", len(snap.HTML), "elapsed", time.Since(start))

	if r.store != nil {
		if err := r.store.SaveSnapshot(key, snap); err != nil {
			// the in-memory copy still serves; persistence is best effort
			r.log.Warn("snapshot.save_failed", "key", key, "err", err)
		}
	}
	return snap, nil
}

// keyLocked builds the cache key. Caller holds r.mu.
func (r *Renderer) keyLocked(year int) string {
	h := sha256.New()
	for _, s := range r.stylesheets {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	h.Write([]byte(r.canonical))
	opts := hex.EncodeToString(h.Sum(nil)[:6])
	return strings.Join([]string{landing.PathHome, landing.ContentVersion, fmt.Sprint(year), opts}, "|")
}
