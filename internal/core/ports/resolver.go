// Package ports defines the core interfaces for the application.
package ports

// SourceResolver locates source files under the configured source root.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// Resolve maps a declared dependency name to a path under the source
	// root. The second return is false when no such file exists.
	Resolve(srcDir, name string) (string, bool)

	// ResolveEntry locates the entry file: first as given relative to the
	// working directory, then under the source root.
	ResolveEntry(srcDir, name string) (string, bool)

	// Siblings returns the public class names defined by the other source
	// files in the same directory as path, sorted.
	Siblings(path string) ([]string, error)
}
