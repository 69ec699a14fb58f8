// Package planner builds the dependency graph and the incremental build plan.
package planner

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"github.com/javelin-build/javelin/internal/engine/analyzer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Planner discovers source files from an entry point and computes which of
// them require recompilation.
type Planner struct {
	resolver ports.SourceResolver
	hasher   ports.Hasher
	logger   ports.Logger
}

// New creates a new Planner.
func New(resolver ports.SourceResolver, hasher ports.Hasher, logger ports.Logger) *Planner {
	return &Planner{
		resolver: resolver,
		hasher:   hasher,
		logger:   logger,
	}
}

// DiscoverOptions control graph construction.
type DiscoverOptions struct {
	// SrcDir is the source root declared names resolve against.
	SrcDir string
	// AutoImplicit promotes inferred dependencies to declared-equivalent for
	// this build. Promoted dependencies are discovered transitively, exactly
	// like declared ones.
	AutoImplicit bool
}

// Discover resolves the entry file and every reachable dependency into a
// validated graph. A declared name that does not resolve under the source
// root aborts construction entirely; so does a cycle along ordering edges.
//
// Traversal uses an explicit stack with a visited set rather than unbounded
// recursion; precise cycle paths come from Graph.Validate's three-color walk.
func (p *Planner) Discover(entry string, opts DiscoverOptions) (*domain.Graph, error) {
	entryPath, ok := p.resolver.ResolveEntry(opts.SrcDir, entry)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrEntryNotFound, "cannot resolve entry file"), "file", entry)
	}

	graph := domain.NewGraph()
	stack := []string{entryPath}

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		name := domain.NewInternedString(filepath.Base(path))
		if _, seen := graph.File(name); seen {
			continue
		}

		file, depPaths, err := p.analyze(path, name, opts)
		if err != nil {
			return nil, err
		}

		if err := graph.AddFile(file); err != nil {
			return nil, err
		}

		// Push in reverse so dependencies are visited in declaration order.
		for i := len(depPaths) - 1; i >= 0; i-- {
			stack = append(stack, depPaths[i])
		}
	}

	if err := graph.Validate(); err != nil {
		return nil, err
	}
	return graph, nil
}

// analyze reads one source file and produces its node plus the resolved
// paths of its ordering dependencies.
func (p *Planner) analyze(path string, name domain.InternedString, opts DiscoverOptions) (*domain.SourceFile, []string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // Path resolved under the source root
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}

	declared := analyzer.Directives(string(content))

	siblings, err := p.resolver.Siblings(path)
	if err != nil {
		return nil, nil, err
	}
	implicit := analyzer.References(string(content), domain.ClassNameOf(name.String()), siblings, declared)

	p.warnImplicit(name.String(), implicit, opts.AutoImplicit)

	deps := make([]domain.Dependency, 0, len(declared)+len(implicit))
	for _, d := range declared {
		deps = append(deps, domain.Dependency{Name: domain.NewInternedString(d), Kind: domain.EdgeDeclared})
	}
	for _, class := range implicit {
		deps = append(deps, domain.Dependency{
			Name:     domain.NewInternedString(domain.FileNameOf(class)),
			Kind:     domain.EdgeImplicit,
			Promoted: opts.AutoImplicit,
		})
	}

	var depPaths []string
	for i := range deps {
		dep := &deps[i]
		if !dep.Orders() {
			continue // advisory edges are not resolved or discovered
		}
		depPath, ok := p.resolver.Resolve(opts.SrcDir, dep.Name.String())
		if !ok {
			if dep.Kind == domain.EdgeImplicit {
				// The referenced class lives in a file we cannot guess.
				// Demote the promotion instead of failing the build.
				dep.Promoted = false
				p.logger.Warn("cannot auto-include " + dep.Name.String() + ": file not found under source root")
				continue
			}
			return nil, nil, zerr.With(zerr.With(
				zerr.Wrap(domain.ErrMissingDependency, "declared dependency does not resolve"),
				"file", dep.Name.String()),
				"referrer", name.String())
		}
		depPaths = append(depPaths, depPath)
	}

	return &domain.SourceFile{Name: name, Path: path, Deps: deps}, depPaths, nil
}

func (p *Planner) warnImplicit(file string, implicit []string, autoInclude bool) {
	for _, class := range implicit {
		if autoInclude {
			p.logger.Warn(file + " references " + class + " without declaring it; auto-including " + domain.FileNameOf(class))
		} else {
			p.logger.Warn(file + " references " + class + " without declaring it; add `using \"" + domain.FileNameOf(class) + "\"` to the header comment")
		}
	}
}

// PlanOptions control changed-set computation.
type PlanOptions struct {
	// OutDir is where artifacts are expected.
	OutDir string
	// Force marks the entire plan as changed irrespective of cache state.
	Force bool
	// Invalidation selects the strictness level.
	Invalidation domain.Invalidation
}

// Plan computes the build order and the changed set for the given graph
// against a cache snapshot. A file is selected for recompilation when no
// prior entry exists, its content hash differs from the stored hash, its
// recorded artifact is gone, or a force override is active.
//
// Content hashing fans out over a bounded errgroup; the plan itself is
// assembled sequentially in build order.
func (p *Planner) Plan(graph *domain.Graph, cache domain.CacheSnapshot, opts PlanOptions) (*domain.BuildPlan, error) {
	plan := &domain.BuildPlan{
		Changed: make(map[domain.InternedString]bool),
		Entries: make(domain.CacheSnapshot, graph.Len()),
	}
	for f := range graph.Walk() {
		plan.Order = append(plan.Order, f.Name)
	}

	hashes, err := p.hashAll(graph)
	if err != nil {
		return nil, err
	}

	for _, name := range plan.Order {
		file, _ := graph.File(name)
		artifact := artifactPath(opts.OutDir, file)
		plan.Entries[name.String()] = domain.CacheEntry{
			Hash:         hashes[name],
			ArtifactPath: artifact,
		}

		if opts.Force {
			plan.Changed[name] = true
			continue
		}
		prior, ok := cache[name.String()]
		if !ok || prior.Hash != hashes[name] || !fileExists(prior.ArtifactPath) {
			plan.Changed[name] = true
		}
	}

	if opts.Invalidation == domain.InvalidateTransitive {
		p.closeOverDependents(graph, plan)
	}

	return plan, nil
}

// hashAll computes content hashes for every file in the graph.
func (p *Planner) hashAll(graph *domain.Graph) (map[domain.InternedString]string, error) {
	hashes := make(map[domain.InternedString]string, graph.Len())
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for f := range graph.Walk() {
		g.Go(func() error {
			h, err := p.hasher.HashFile(f.Path)
			if err != nil {
				return err
			}
			mu.Lock()
			hashes[f.Name] = h
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}

// closeOverDependents re-adds every file that depends, directly or
// transitively, on a changed file.
func (p *Planner) closeOverDependents(graph *domain.Graph, plan *domain.BuildPlan) {
	dependents := graph.Dependents()

	queue := plan.ChangedInOrder()
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, dep := range dependents[name] {
			if !plan.Changed[dep] {
				plan.Changed[dep] = true
				queue = append(queue, dep)
			}
		}
	}
}

func artifactPath(outDir string, file domain.SourceFile) string {
	return filepath.Join(outDir, file.ClassName()+".class")
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
