package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/adapters/logger"
	"github.com/javelin-build/javelin/internal/core/ports"
)

// NodeID is the Graft node ID of the config loader.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
