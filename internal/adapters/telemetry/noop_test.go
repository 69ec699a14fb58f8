package telemetry_test

import (
	"context"
	"io"
	"testing"

	"github.com/javelin-build/javelin/internal/adapters/telemetry"
	"github.com/stretchr/testify/require"
)

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx, v := rec.Record(context.Background(), "javac (2 files)")
	require.Equal(t, context.Background(), ctx)

	// Writers must accept output without error.
	n, err := v.Stdout().Write([]byte("out"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	_, err = io.WriteString(v.Stderr(), "err")
	require.NoError(t, err)

	v.Cached()
	v.Complete(nil)

	require.NoError(t, rec.Close())
}
