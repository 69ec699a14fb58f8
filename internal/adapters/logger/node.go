package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/core/ports"
)

// NodeID is the Graft node ID of the logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
