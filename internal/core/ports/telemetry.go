package ports

import (
	"context"
	"io"
)

// Telemetry records build progress as a sequence of vertices, one per unit of
// work (a compiler batch, a runtime invocation, a skipped file).
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the error output stream.
	Stderr() io.Writer
	// Cached marks the vertex as a cache hit.
	Cached()
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
