package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/adapters/logger"
	"github.com/javelin-build/javelin/internal/core/ports"
)

const (
	// CompilerNodeID is the Graft node ID of the compiler adapter.
	CompilerNodeID graft.ID = "adapter.toolchain.compiler"
	// RuntimeNodeID is the Graft node ID of the runtime adapter.
	RuntimeNodeID graft.ID = "adapter.toolchain.runtime"
)

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewJavac(log), nil
		},
	})

	graft.Register(graft.Node[ports.Runtime]{
		ID:        RuntimeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Runtime, error) {
			return NewJava(), nil
		},
	})
}
