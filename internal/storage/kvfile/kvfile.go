// Package kvfile implements the storage port on plain files.
//
// Each key becomes one <key>.json file inside a data directory — the
// closest server-side analogue to browser local storage. Writes go through
// a temp file plus rename, so a Set is a single atomic replace and a crash
// mid-write never leaves a half-written document behind.
package kvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sakif/achievement-society/internal/storage"
)

// Compile-time check that *Store implements the storage port.
var _ storage.KV = (*Store)(nil)

// Store is a file-per-key KV rooted at a directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvfile: creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value for key. A missing file means the key was never set.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvfile: reading %q: %w", key, err)
	}
	return raw, true, nil
}

// Set writes value under key. The temp file lands in the same directory so
// the final rename stays on one filesystem and is atomic.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("kvfile: creating temp file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("kvfile: writing %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kvfile: closing temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("kvfile: replacing %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvfile: deleting %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed per operation.
func (s *Store) Close() error {
	return nil
}
