package ports

import "github.com/javelin-build/javelin/internal/core/domain"

// CacheStore persists the build cache as one document per cache file.
//
// A corrupt document is recoverable by design: Load discards it with a
// warning and returns an empty snapshot rather than failing the build.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load reads the whole cache document at path. A missing or malformed
	// document yields an empty snapshot.
	Load(path string) (domain.CacheSnapshot, error)

	// Write replaces the cache document at path wholesale.
	Write(path string, snap domain.CacheSnapshot) error

	// Remove deletes the cache document. Missing documents are not an error.
	Remove(path string) error
}
