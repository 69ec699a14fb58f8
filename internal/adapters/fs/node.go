package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/core/ports"
)

const (
	// HasherNodeID is the Graft node ID of the content hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ResolverNodeID is the Graft node ID of the source resolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceResolver, error) {
			return NewResolver(), nil
		},
	})
}
