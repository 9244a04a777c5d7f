// Package bbolt implements ports.SnapshotStore using bbolt (embedded B+ tree).
// Snapshots live in a single "snapshots" bucket as JSON values keyed by the
// renderer's cache key. Writes are transactional: a crash mid-write cannot
// corrupt previously committed snapshots.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/corey/recall/internal/ports"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"
)

var bucketSnapshots = []byte("snapshots")

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db   *bolt.DB
	path string
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, &ports.OpError{Op: "bbolt.open", Kind: ports.KindStorage, Path: path, Err: err}
	}
	return &Store{db: db, path: path}, nil
}

// IsLockTimeout reports whether err comes from NewStore failing to take the
// file lock because another process holds the database open.
func IsLockTimeout(err error) bool {
	return ports.IsKind(err, ports.KindStorage) && errors.Is(err, berrors.ErrTimeout)
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveSnapshot stores snap under key. A snapshot without an ID is assigned one.
func (s *Store) SaveSnapshot(key string, snap *ports.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	if key == "" {
		return fmt.Errorf("empty snapshot key")
	}
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return &ports.OpError{Op: "bbolt.save_snapshot", Kind: ports.KindStorage, Path: s.path, Err: err}
	}
	return nil
}

// LoadSnapshot returns the snapshot stored under key, or nil, nil if none.
func (s *Store) LoadSnapshot(key string) (*ports.Snapshot, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, &ports.OpError{Op: "bbolt.load_snapshot", Kind: ports.KindStorage, Path: s.path, Err: err}
	}
	if data == nil {
		return nil, nil
	}

	var snap ports.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %s: %w", key, err)
	}
	return &snap, nil
}

// ListSnapshots returns every stored snapshot, newest first.
// Entries that fail to decode are skipped.
func (s *Store) ListSnapshots() ([]*ports.Snapshot, error) {
	var out []*ports.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var snap ports.Snapshot
			if err := json.Unmarshal(v, &snap); err != nil {
				return nil
			}
			out = append(out, &snap)
			return nil
		})
	})
	if err != nil {
		return nil, &ports.OpError{Op: "bbolt.list_snapshots", Kind: ports.KindStorage, Path: s.path, Err: err}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RenderedAt.After(out[j].RenderedAt)
	})
	return out, nil
}

// ClearSnapshots removes every snapshot. Clearing an empty store is not an error.
func (s *Store) ClearSnapshots() (int, error) {
	n := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		if err := b.ForEach(func(_, _ []byte) error { n++; return nil }); err != nil {
			return err
		}
		if err := tx.DeleteBucket(bucketSnapshots); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, &ports.OpError{Op: "bbolt.clear_snapshots", Kind: ports.KindStorage, Path: s.path, Err: err}
	}
	return n, nil
}

var _ ports.SnapshotStore = (*Store)(nil)
