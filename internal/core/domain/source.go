package domain

import "strings"

// EdgeKind distinguishes how a dependency edge was established.
type EdgeKind uint8

const (
	// EdgeDeclared marks a dependency named in the file's leading annotation comment.
	EdgeDeclared EdgeKind = iota
	// EdgeImplicit marks a dependency inferred by reference scanning.
	EdgeImplicit
)

// String returns a human-readable edge kind.
func (k EdgeKind) String() string {
	if k == EdgeImplicit {
		return "implicit"
	}
	return "declared"
}

// Dependency is a single tagged edge from a source file to a sibling file.
//
// Promoted is set when an auto-include policy lifts an implicit dependency to
// declared-equivalent for the current build. Promoted edges participate in
// ordering and cycle detection; plain implicit edges are advisory only.
type Dependency struct {
	Name     InternedString
	Kind     EdgeKind
	Promoted bool
}

// Orders reports whether this edge constrains compilation order.
func (d Dependency) Orders() bool {
	return d.Kind == EdgeDeclared || d.Promoted
}

// SourceFile is a snapshot of one source file discovered during graph
// construction. Snapshots are rebuilt from disk on every invocation and are
// never mutated in place.
type SourceFile struct {
	// Name is the normalized file name, e.g. "Main.java". It is the node
	// identity within a single source root.
	Name InternedString
	// Path is the resolved on-disk location.
	Path string
	// Deps holds declared edges in declaration order, followed by inferred
	// edges. Display order is significant; correctness order is not.
	Deps []Dependency
}

// ClassName returns the public type name the file is expected to define,
// derived from the file name stem.
func (f SourceFile) ClassName() string {
	return ClassNameOf(f.Name.String())
}

// OrderingDeps returns the edges that constrain compilation order.
func (f SourceFile) OrderingDeps() []Dependency {
	deps := make([]Dependency, 0, len(f.Deps))
	for _, d := range f.Deps {
		if d.Orders() {
			deps = append(deps, d)
		}
	}
	return deps
}

// ClassNameOf strips the source suffix from a file name.
func ClassNameOf(fileName string) string {
	return strings.TrimSuffix(fileName, SourceSuffix)
}

// FileNameOf converts a class name back to its source file name.
func FileNameOf(className string) string {
	return className + SourceSuffix
}

// SourceSuffix is the extension of the source files driven by the orchestrator.
const SourceSuffix = ".java"
