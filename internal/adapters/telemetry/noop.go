// Package telemetry provides build progress recording adapters.
package telemetry

import (
	"context"
	"io"

	"github.com/javelin-build/javelin/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record starts a new no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a discarding writer.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a discarding writer.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}
