// Package app implements the application layer for javelin.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/adapters/config"
	"github.com/javelin-build/javelin/internal/adapters/render"
	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"github.com/javelin-build/javelin/internal/engine/planner"
	"go.trai.ch/zerr"
)

// Options carry the per-invocation flags shared by the build-driven commands.
type Options struct {
	// Force treats the entire plan as changed, irrespective of cache state.
	Force bool
	// AutoImplicit promotes inferred dependencies into the compilation set.
	AutoImplicit bool
}

// BuildResult summarizes one build invocation.
type BuildResult struct {
	// Compiled is the number of files handed to the compiler.
	Compiled int
	// Skipped is the number of up-to-date files excluded from compilation.
	Skipped int
	// Order is the full build order the result was computed from.
	Order []domain.InternedString
}

// App composes the planner, cache, compiler and runtime into the build
// operations exposed by the CLI.
type App struct {
	configPath string
	loader     ports.ConfigLoader
	planner    *planner.Planner
	store      ports.CacheStore
	compiler   ports.Compiler
	runtime    ports.Runtime
	tree       *render.Tree
	telemetry  ports.Telemetry
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pl *planner.Planner,
	store ports.CacheStore,
	compiler ports.Compiler,
	runtime ports.Runtime,
	tree *render.Tree,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configPath: config.DefaultFilename,
		loader:     loader,
		planner:    pl,
		store:      store,
		compiler:   compiler,
		runtime:    runtime,
		tree:       tree,
		telemetry:  telemetry,
		logger:     logger,
	}
}

// SetConfigPath overrides the configuration file location.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// SetTelemetry swaps the telemetry recorder, e.g. for verbose progress output.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// Build resolves the dependency graph from entry, computes the changed set
// and submits one batched compiler invocation covering it. Cache entries are
// written only after the compiler succeeds, so a failed build leaves the
// cache identical to its pre-build state and a retry recomputes the same
// changed set.
func (a *App) Build(ctx context.Context, entry string, opts Options) (*BuildResult, error) {
	project, err := a.loader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.build(ctx, project, entry, opts)
}

func (a *App) build(ctx context.Context, project *domain.Project, entry string, opts Options) (*BuildResult, error) {
	entry = a.chooseEntry(entry, project)

	graph, err := a.planner.Discover(entry, planner.DiscoverOptions{
		SrcDir:       project.SrcDir,
		AutoImplicit: opts.AutoImplicit || project.AutoImplicit,
	})
	if err != nil {
		return nil, err
	}

	snapshot, err := a.store.Load(project.CacheFile)
	if err != nil {
		return nil, err
	}

	plan, err := a.planner.Plan(graph, snapshot, planner.PlanOptions{
		OutDir:       project.OutDir,
		Force:        opts.Force,
		Invalidation: project.Invalidation,
	})
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Compiled: plan.ChangedCount(),
		Skipped:  plan.SkippedCount(),
		Order:    plan.Order,
	}

	if plan.ChangedCount() == 0 {
		a.logger.Info(fmt.Sprintf("everything up to date (skipped %d files)", result.Skipped))
		return result, nil
	}

	if err := os.MkdirAll(project.OutDir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", project.OutDir)
	}

	if err := a.compile(ctx, graph, plan, project.OutDir); err != nil {
		return nil, err
	}

	// All-or-nothing: merge entries for the compiled files into the loaded
	// snapshot and replace the document wholesale.
	next := snapshot.Clone()
	for _, name := range plan.ChangedInOrder() {
		next[name.String()] = plan.Entries[name.String()]
	}
	if err := a.store.Write(project.CacheFile, next); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("build complete (%d compiled, %d skipped)", result.Compiled, result.Skipped))
	return result, nil
}

// compile submits exactly one compiler invocation covering the changed set.
func (a *App) compile(ctx context.Context, graph *domain.Graph, plan *domain.BuildPlan, outDir string) error {
	changed := plan.ChangedInOrder()

	files := make([]string, 0, len(changed))
	for _, name := range changed {
		file, _ := graph.File(name)
		files = append(files, file.Path)
	}

	for _, name := range plan.Order {
		if !plan.Changed[name] {
			_, v := a.telemetry.Record(ctx, name.String())
			v.Cached()
			v.Complete(nil)
		}
	}

	ctx, vertex := a.telemetry.Record(ctx, fmt.Sprintf("javac (%d files)", len(files)))
	err := a.compiler.Compile(ctx, files, outDir)
	vertex.Complete(err)
	return err
}

// Run builds entry and then issues one runtime invocation against the
// produced artifacts. A runtime failure is reported as such; it is not a
// build failure and never rolls back build state.
func (a *App) Run(ctx context.Context, entry string, opts Options, args []string) error {
	project, err := a.loader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if _, err := a.build(ctx, project, entry, opts); err != nil {
		return err
	}

	className := domain.ClassNameOf(filepath.Base(a.chooseEntry(entry, project)))
	a.logger.Info("running " + className)

	ctx, vertex := a.telemetry.Record(ctx, "java "+className)
	err = a.runtime.Run(ctx, project.OutDir, className, project.JVMOpts, args)
	vertex.Complete(err)
	return err
}

// Tree renders the dependency tree for entry.
func (a *App) Tree(_ context.Context, entry string, opts Options) error {
	project, err := a.loader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	entry = a.chooseEntry(entry, project)
	graph, err := a.planner.Discover(entry, planner.DiscoverOptions{
		SrcDir:       project.SrcDir,
		AutoImplicit: opts.AutoImplicit || project.AutoImplicit,
	})
	if err != nil {
		return err
	}

	a.tree.Render(graph, domain.NewInternedString(filepath.Base(entry)))
	return nil
}

// Clean deletes the output directory and the cache file wholesale.
func (a *App) Clean(_ context.Context) error {
	project, err := a.loader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := os.RemoveAll(project.OutDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove output directory"), "dir", project.OutDir)
	}
	if err := a.store.Remove(project.CacheFile); err != nil {
		return err
	}

	a.logger.Info("cleaned build artifacts")
	return nil
}

// Init writes a starter configuration file.
func (a *App) Init(force bool) error {
	if err := config.WriteTemplate(a.configPath, force); err != nil {
		return err
	}
	a.logger.Info("created " + a.configPath)
	return nil
}

// Close flushes the telemetry recorder.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// chooseEntry falls back from the positional argument to the configured
// entrypoint, then to the conventional default.
func (a *App) chooseEntry(entry string, project *domain.Project) string {
	if entry != "" {
		return entry
	}
	return project.Entrypoint
}
