// Package domain contains the core domain models for the source dependency graph.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph represents a dependency graph of source files keyed by normalized
// file name. It is transient: rebuilt from disk on every invocation.
type Graph struct {
	files map[InternedString]SourceFile

	// insertion keeps discovery order so that traversal roots, and therefore
	// the topological order, are deterministic across runs.
	insertion []InternedString

	buildOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		files: make(map[InternedString]SourceFile),
	}
}

// AddFile adds a source file to the graph.
// It returns an error if a file with the same name already exists.
func (g *Graph) AddFile(f *SourceFile) error {
	if _, exists := g.files[f.Name]; exists {
		return zerr.With(zerr.Wrap(ErrFileAlreadyExists, "cannot add file to graph"), "file", f.Name.String())
	}
	g.files[f.Name] = *f
	g.insertion = append(g.insertion, f.Name)
	return nil
}

// File returns the file for the given name.
func (g *Graph) File(name InternedString) (SourceFile, bool) {
	f, ok := g.files[name]
	return f, ok
}

// Len returns the number of files in the graph.
func (g *Graph) Len() int {
	return len(g.files)
}

// Names returns the file names in discovery order.
func (g *Graph) Names() []InternedString {
	out := make([]InternedString, len(g.insertion))
	copy(out, g.insertion)
	return out
}

// Validate checks the graph for cycles along ordering edges using a
// three-color depth-first traversal. On success it populates the build order
// so that every dependency precedes its dependents. Roots are visited in
// discovery order and children in declaration order, which makes the
// resulting order identical across repeated runs over an unchanged graph.
func (g *Graph) Validate() error {
	g.buildOrder = make([]InternedString, 0, len(g.files))
	visited := make(map[InternedString]int, len(g.files)) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		f, exists := g.files[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "graph references unknown file"), "file", u.String())
		}

		for _, dep := range f.Deps {
			if !dep.Orders() {
				continue
			}
			if visited[dep.Name] == 1 {
				return g.buildCycleError(path, dep.Name)
			}
			if visited[dep.Name] == 0 {
				if err := visit(dep.Name); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.buildOrder = append(g.buildOrder, u)
		return nil
	}

	for _, name := range g.insertion {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, "dependency validation failed"), "cycle", cyclePath)
}

// Walk returns an iterator that yields files in build order, dependencies
// first. It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[SourceFile] {
	return func(yield func(SourceFile) bool) {
		for _, name := range g.buildOrder {
			if !yield(g.files[name]) {
				return
			}
		}
	}
}

// Dependents returns, for every file, the set of files whose ordering edges
// point at it. Used to close a changed set transitively over dependents.
func (g *Graph) Dependents() map[InternedString][]InternedString {
	rev := make(map[InternedString][]InternedString, len(g.files))
	for _, name := range g.insertion {
		for _, dep := range g.files[name].Deps {
			if dep.Orders() {
				rev[dep.Name] = append(rev[dep.Name], name)
			}
		}
	}
	return rev
}
