package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"github.com/javelin-build/javelin/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/javelin-build/javelin/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/javelin-build/javelin/internal/adapters/render"
	"github.com/javelin-build/javelin/internal/adapters/telemetry"
	"github.com/javelin-build/javelin/internal/adapters/toolchain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"github.com/javelin-build/javelin/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			planner.NodeID,
			cache.NodeID,
			toolchain.CompilerNodeID,
			toolchain.RuntimeNodeID,
			render.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	pl, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}
	runtime, err := graft.Dep[ports.Runtime](ctx)
	if err != nil {
		return nil, err
	}
	tree, err := graft.Dep[*render.Tree](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, pl, store, compiler, runtime, tree, tel, log), nil
}
