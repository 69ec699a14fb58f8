package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/internal/core/ports"
)

// NodeID is the Graft node ID of the telemetry recorder.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	// The noop recorder is the default; the CLI swaps in the progrock
	// recorder when verbose output is requested.
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoOp(), nil
		},
	})
}
