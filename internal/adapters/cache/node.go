package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/adapters/logger"
	"github.com/javelin-build/javelin/internal/core/ports"
)

// NodeID is the Graft node ID of the cache store.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
