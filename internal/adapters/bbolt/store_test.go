package bbolt

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/corey/recall/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func makeSnapshot(year int, at time.Time) *ports.Snapshot {
	return &ports.Snapshot{
		Route:          "/",
		Year:           year,
		ContentVersion: "test",
		ETag:           `"abc"`,
		HTML:           []byte("<!doctype html><p>hi</p>"),
		RenderedAt:     at,
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	snap := makeSnapshot(2025, at)
	require.NoError(t, store.SaveSnapshot("k1", snap))
	assert.NotEmpty(t, snap.ID, "id assigned on save")

	got, err := store.LoadSnapshot("k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, snap.HTML, got.HTML)
	assert.True(t, at.Equal(got.RenderedAt))
}

func TestStore_KeepsExistingID(t *testing.T) {
	store, _ := newTestStore(t)
	snap := makeSnapshot(2025, time.Now())
	snap.ID = "fixed"
	require.NoError(t, store.SaveSnapshot("k", snap))

	got, err := store.LoadSnapshot("k")
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.ID)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.LoadSnapshot("nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.SaveSnapshot("other", makeSnapshot(2025, time.Now())))
	got, err = store.LoadSnapshot("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_RejectsBadInput(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveSnapshot("k", nil))
	assert.Error(t, store.SaveSnapshot("", makeSnapshot(2025, time.Now())))
}

func TestStore_ListNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveSnapshot("a", makeSnapshot(2024, base)))
	require.NoError(t, store.SaveSnapshot("b", makeSnapshot(2026, base.Add(2*time.Hour))))
	require.NoError(t, store.SaveSnapshot("c", makeSnapshot(2025, base.Add(time.Hour))))

	list, err := store.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 2026, list[0].Year)
	assert.Equal(t, 2025, list[1].Year)
	assert.Equal(t, 2024, list[2].Year)
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)

	n, err := store.ClearSnapshots()
	require.NoError(t, err)
	assert.Equal(t, 0, n, "clearing empty store")

	require.NoError(t, store.SaveSnapshot("a", makeSnapshot(2025, time.Now())))
	require.NoError(t, store.SaveSnapshot("b", makeSnapshot(2025, time.Now())))

	n, err = store.ClearSnapshots()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := store.ListSnapshots()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "persist.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot("k", makeSnapshot(2025, time.Now())))
	require.NoError(t, store.Close())

	store, err = NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.LoadSnapshot("k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year)
}

func TestStore_LockedFileIsStorageError(t *testing.T) {
	_, path := newTestStore(t)

	_, err := NewStore(path)
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindStorage))
	assert.True(t, IsLockTimeout(err))
	assert.True(t, IsLockTimeout(fmt.Errorf("open store: %w", err)))
}

func TestIsLockTimeout_OtherErrors(t *testing.T) {
	assert.False(t, IsLockTimeout(nil))
	assert.False(t, IsLockTimeout(errors.New("timeout")))

	_, err := NewStore(filepath.Join(t.TempDir(), "missing", "recall.db"))
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindStorage))
	assert.False(t, IsLockTimeout(err))
}
