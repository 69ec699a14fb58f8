// Package cache implements the persistent build cache store.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store persists the cache as one flat JSON document per cache file.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads the whole cache document at path.
//
// A missing document yields an empty snapshot. So does a malformed one:
// corruption is recoverable by discarding the cache and rebuilding it from
// scratch, so it is reported as a warning, never as a build failure.
func (s *Store) Load(path string) (domain.CacheSnapshot, error) {
	snap := make(domain.CacheSnapshot)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snap, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", path)
	}

	if len(data) == 0 {
		return snap, nil
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("cache file is corrupt, discarding it: " + err.Error())
		return make(domain.CacheSnapshot), nil
	}

	return snap, nil
}

// Write replaces the cache document at path wholesale. The document is
// written to a temporary file and renamed into place so that a crash
// mid-write leaves the previous document intact.
func (s *Store) Write(path string, snap domain.CacheSnapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary cache file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write cache file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close cache file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to replace cache file"), "path", path)
	}
	return nil
}

// Remove deletes the cache document. Missing documents are not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove cache file"), "path", path)
	}
	return nil
}
