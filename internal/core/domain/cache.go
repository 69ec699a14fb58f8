package domain

// CacheEntry is the persisted record of a file's last successful compilation.
// The content hash is the sole validity key; modification times are ignored.
type CacheEntry struct {
	Hash         string `json:"hash"`
	ArtifactPath string `json:"artifact"`
}

// CacheSnapshot is the whole cache document keyed by normalized file name.
// It is loaded wholesale at build start and treated as immutable; a build
// produces a new snapshot rather than mutating the loaded one.
type CacheSnapshot map[string]CacheEntry

// Clone returns an independent copy of the snapshot.
func (s CacheSnapshot) Clone() CacheSnapshot {
	out := make(CacheSnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
