package ports

import "context"

// Runtime invokes the external runtime against previously built artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type Runtime interface {
	// Run issues one runtime invocation for the entry symbol className,
	// looking up artifacts in outDir. jvmOpts precede the entry symbol and
	// args follow it, both in order. Exit code and streams are surfaced
	// unmodified; a non-zero exit is returned as an error.
	Run(ctx context.Context, outDir, className string, jvmOpts, args []string) error
}
