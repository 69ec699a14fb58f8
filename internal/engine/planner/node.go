package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/adapters/fs"
	"github.com/javelin-build/javelin/internal/adapters/logger"
	"github.com/javelin-build/javelin/internal/core/ports"
)

// NodeID is the Graft node ID of the planner.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			resolver, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, hasher, log), nil
		},
	})
}
