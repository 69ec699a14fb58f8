package domain

// BuildPlan is the topologically ordered sequence of files for one entry
// point, plus the subset selected for recompilation this run. Derived from
// the graph and the cache snapshot, never persisted.
type BuildPlan struct {
	// Order is the full build order, dependencies first.
	Order []InternedString

	// Changed marks the files requiring recompilation.
	Changed map[InternedString]bool

	// Entries holds the freshly computed cache entry for every file in the
	// plan. Entries of changed files are written to the cache only after a
	// successful compiler invocation.
	Entries CacheSnapshot
}

// ChangedInOrder returns the changed files in build order.
func (p *BuildPlan) ChangedInOrder() []InternedString {
	out := make([]InternedString, 0, len(p.Changed))
	for _, name := range p.Order {
		if p.Changed[name] {
			out = append(out, name)
		}
	}
	return out
}

// ChangedCount returns the number of files selected for recompilation.
func (p *BuildPlan) ChangedCount() int {
	return len(p.Changed)
}

// SkippedCount returns the number of files excluded from recompilation.
func (p *BuildPlan) SkippedCount() int {
	return len(p.Order) - len(p.Changed)
}
