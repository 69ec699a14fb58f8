package ports

import "context"

// Compiler invokes the external compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile submits exactly one compiler invocation covering all given
	// files, producing artifacts in outDir. A non-zero exit is returned as
	// an error carrying the exit code and the captured diagnostics verbatim.
	Compile(ctx context.Context, files []string, outDir string) error
}
