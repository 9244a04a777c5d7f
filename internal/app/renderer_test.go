package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/corey/recall/internal/adapters/bbolt"
	"github.com/corey/recall/internal/domain/landing"
	"github.com/corey/recall/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, 6, 1, 12, 0, 0, 0, time.UTC) }
}

func newTestBolt(t *testing.T) *bbolt.Store {
	t.Helper()
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "snap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) SaveSnapshot(string, *ports.Snapshot) error { return errors.New("disk full") }
func (brokenStore) LoadSnapshot(string) (*ports.Snapshot, error) { return nil, errors.New("io error") }
func (brokenStore) ListSnapshots() ([]*ports.Snapshot, error) { return nil, errors.New("io error") }
func (brokenStore) ClearSnapshots() (int, error) { return 0, errors.New("io error") }

func TestRenderer_RendersPage(t *testing.T) {
	r := NewRenderer(nil, nil)
	snap, err := r.Render(context.Background(), 2025)
	require.NoError(t, err)

	html := string(snap.HTML)
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "© 2025 AI Powered Insights")
	assert.Equal(t, landing.PathHome, snap.Route)
	assert.Equal(t, landing.ContentVersion, snap.ContentVersion)
	assert.Equal(t, 2025, snap.Year)
	assert.NotEmpty(t, snap.ID)
	assert.Regexp(t, `^"[0-9a-f]{16}"$`, snap.ETag)
}

func TestRenderer_CachesByYear(t *testing.T) {
	r := NewRenderer(nil, nil)
	ctx := context.Background()

	a, err := r.Render(ctx, 2025)
	require.NoError(t, err)
	b, err := r.Render(ctx, 2025)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := r.Render(ctx, 2026)
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, c.ETag)

	stats := r.Stats()
	assert.Equal(t, uint64(2), stats.Renders)
	assert.Equal(t, uint64(1), stats.CacheHits)
}

func TestRenderer_DeterministicETag(t *testing.T) {
	a, err := NewRenderer(nil, nil).Render(context.Background(), 2025)
	require.NoError(t, err)
	b, err := NewRenderer(nil, nil).Render(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, a.ETag, b.ETag)
	assert.Equal(t, a.HTML, b.HTML)
}

func TestRenderer_CurrentUsesClock(t *testing.T) {
	r := NewRenderer(nil, nil)
	r.SetClock(fixedClock(2031))

	snap, err := r.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2031, snap.Year)
	assert.Contains(t, string(snap.HTML), "© 2031")
}

func TestRenderer_SetOptionsInvalidates(t *testing.T) {
	r := NewRenderer(nil, nil)
	ctx := context.Background()

	before, err := r.Render(ctx, 2025)
	require.NoError(t, err)

	r.SetOptions([]string{"/css/site.css"}, "https://recall-app.com/")
	after, err := r.Render(ctx, 2025)
	require.NoError(t, err)

	assert.NotEqual(t, before.ETag, after.ETag)
	assert.Contains(t, string(after.HTML), `href="/css/site.css"`)
	assert.Contains(t, string(after.HTML), `rel="canonical"`)
	assert.Equal(t, uint64(2), r.Stats().Renders)
}

func TestRenderer_Invalidate(t *testing.T) {
	r := NewRenderer(nil, nil)
	ctx := context.Background()

	_, err := r.Render(ctx, 2025)
	require.NoError(t, err)
	r.Invalidate()
	_, err = r.Render(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), r.Stats().Renders)
}

func TestRenderer_StoreWarmsNewRenderer(t *testing.T) {
	store := newTestBolt(t)
	ctx := context.Background()

	first := NewRenderer(store, nil)
	a, err := first.Render(ctx, 2025)
	require.NoError(t, err)

	list, err := store.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, list, 1)

	second := NewRenderer(store, nil)
	b, err := second.Render(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, a.ETag, b.ETag)
	assert.Equal(t, a.ID, b.ID)

	stats := second.Stats()
	assert.Equal(t, uint64(0), stats.Renders)
	assert.Equal(t, uint64(1), stats.StoreHits)
}

func TestRenderer_BrokenStoreStillServes(t *testing.T) {
	r := NewRenderer(brokenStore{}, nil)
	snap, err := r.Render(context.Background(), 2025)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.HTML)
}

func TestRenderer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer(nil, nil).Render(ctx, 2025)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_Concurrent(t *testing.T) {
	r := NewRenderer(nil, nil)
	r.SetClock(fixedClock(2025))

	var wg sync.WaitGroup
	etags := make([]string, 16)
	for i := range etags {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := r.Current(context.Background())
			if err == nil {
				etags[i] = snap.ETag
			}
		}(i)
	}
	wg.Wait()

	for _, e := range etags {
		assert.Equal(t, etags[0], e)
	}
	assert.Equal(t, uint64(1), r.Stats().Renders)
}
