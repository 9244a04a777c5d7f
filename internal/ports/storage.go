// Package ports defines the interfaces (contracts) that adapters must implement.
// The renderer and the HTTP adapter depend only on these interfaces, never on
// concrete storage or watcher implementations.
package ports

import "time"

// SnapshotStore persists rendered pages so a restarted server can answer the
// first request without rendering. Keys are opaque strings built by the renderer.
//
// Concurrent reads are safe; writes are serialized by the adapter.
type SnapshotStore interface {
	// SaveSnapshot stores a snapshot under key. Overwrites any prior value.
	SaveSnapshot(key string, snap *Snapshot) error

	// LoadSnapshot returns the snapshot stored under key.
	// Returns nil, nil if nothing is stored.
	LoadSnapshot(key string) (*Snapshot, error)

	// ListSnapshots returns every stored snapshot, newest first.
	ListSnapshots() ([]*Snapshot, error)

	// ClearSnapshots removes all snapshots and returns how many were removed.
	ClearSnapshots() (int, error)
}

// Snapshot is one rendered HTML document plus its cache metadata.
type Snapshot struct {
	ID             string    `json:"id"`
	Route          string    `json:"route"`
	Year           int       `json:"year"`
	ContentVersion string    `json:"content_version"`
	ETag           string    `json:"etag"`
	HTML           []byte    `json:"html"`
	RenderedAt     time.Time `json:"rendered_at"`
}

// RenderStats counts how page requests were satisfied.
type RenderStats struct {
	Renders   uint64 `json:"renders"`    // full renders
	CacheHits uint64 `json:"cache_hits"` // served from memory
	StoreHits uint64 `json:"store_hits"` // loaded from the snapshot store
}
