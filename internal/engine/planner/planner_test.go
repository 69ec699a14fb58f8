package planner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javelin-build/javelin/internal/adapters/fs"
	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/engine/planner"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string)     {}
func (l *recordingLogger) Warn(msg string) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(error)     {}

func newPlanner() (*planner.Planner, *recordingLogger) {
	logger := &recordingLogger{}
	return planner.New(fs.NewResolver(), fs.NewHasher(), logger), logger
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fixtureChain(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeSource(t, dir, "Main.java", `/*
using "Util.java"
*/
public class Main {
    public static void main(String[] args) {
        Util.print();
    }
}
`)
	writeSource(t, dir, "Util.java", `/*
using "Log.java"
*/
public class Util {
    public static void print() { Log.write("hi"); }
}
`)
	writeSource(t, dir, "Log.java", `public class Log {
    public static void write(String s) { System.out.println(s); }
}
`)
	return dir
}

func names(order []domain.InternedString) []string {
	out := make([]string, len(order))
	for i, n := range order {
		out[i] = n.String()
	}
	return out
}

func TestDiscover_Chain(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	require.Equal(t, 3, graph.Len())

	var order []string
	for f := range graph.Walk() {
		order = append(order, f.Name.String())
	}
	require.Equal(t, []string{"Log.java", "Util.java", "Main.java"}, order)
}

func TestDiscover_EntryNotFound(t *testing.T) {
	p, _ := newPlanner()
	dir := t.TempDir()

	_, err := p.Discover("Ghost.java", planner.DiscoverOptions{SrcDir: dir})
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestDiscover_MissingDeclaredDependency(t *testing.T) {
	p, _ := newPlanner()
	dir := t.TempDir()
	writeSource(t, dir, "Main.java", `/*
using "Ghost.java"
*/
public class Main {}
`)

	_, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.ErrorIs(t, err, domain.ErrMissingDependency)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	meta := zErr.Metadata()
	require.Equal(t, "Ghost.java", meta["file"])
	require.Equal(t, "Main.java", meta["referrer"])
}

func TestDiscover_Cycle(t *testing.T) {
	p, _ := newPlanner()
	dir := t.TempDir()
	writeSource(t, dir, "A.java", `/*
using "B.java"
*/
public class A {}
`)
	writeSource(t, dir, "B.java", `/*
using "A.java"
*/
public class B {}
`)

	_, err := p.Discover("A.java", planner.DiscoverOptions{SrcDir: dir})
	require.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestDiscover_ImplicitWarningWithoutPromotion(t *testing.T) {
	p, logger := newPlanner()
	dir := t.TempDir()
	writeSource(t, dir, "Main.java", `public class Main {
    public static void main(String[] args) { Helper.run(); }
}
`)
	writeSource(t, dir, "Helper.java", `public class Helper {
    public static void run() {}
}
`)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)

	// Without auto-include the referenced sibling stays out of the graph.
	require.Equal(t, 1, graph.Len())
	require.Len(t, logger.warnings, 1)
	require.Contains(t, logger.warnings[0], "Helper")

	main, ok := graph.File(domain.NewInternedString("Main.java"))
	require.True(t, ok)
	require.Len(t, main.Deps, 1)
	require.Equal(t, domain.EdgeImplicit, main.Deps[0].Kind)
	require.False(t, main.Deps[0].Promoted)
}

func TestDiscover_AutoImplicitPromotes(t *testing.T) {
	p, _ := newPlanner()
	dir := t.TempDir()
	writeSource(t, dir, "Main.java", `public class Main {
    public static void main(String[] args) { Helper.run(); }
}
`)
	// Helper itself pulls in one more level, so promotion must recurse.
	writeSource(t, dir, "Helper.java", `/*
using "Log.java"
*/
public class Helper {
    public static void run() { Log.write("x"); }
}
`)
	writeSource(t, dir, "Log.java", `public class Log {
    public static void write(String s) {}
}
`)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir, AutoImplicit: true})
	require.NoError(t, err)
	require.Equal(t, 3, graph.Len())

	var order []string
	for f := range graph.Walk() {
		order = append(order, f.Name.String())
	}
	require.Equal(t, []string{"Log.java", "Helper.java", "Main.java"}, order)
}

func TestDiscover_AutoImplicitDemotesUnresolvable(t *testing.T) {
	p, logger := newPlanner()
	dir := t.TempDir()
	// Widget is defined inside Toolkit.java, so the guessed file name
	// Widget.java does not exist. The promotion must back off with a
	// warning rather than fail the build.
	writeSource(t, dir, "Main.java", `public class Main {
    public static void main(String[] args) { Widget.draw(); }
}
`)
	writeSource(t, dir, "Toolkit.java", `public class Widget {
    public static void draw() {}
}
`)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir, AutoImplicit: true})
	require.NoError(t, err)
	require.Equal(t, 1, graph.Len())

	var demoted bool
	for _, w := range logger.warnings {
		if w == "cannot auto-include Widget.java: file not found under source root" {
			demoted = true
		}
	}
	require.True(t, demoted, "expected demotion warning, got %v", logger.warnings)
}

func TestPlan_FirstBuildMarksEverything(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)

	plan, err := p.Plan(graph, domain.CacheSnapshot{}, planner.PlanOptions{OutDir: filepath.Join(dir, "out")})
	require.NoError(t, err)

	require.Equal(t, []string{"Log.java", "Util.java", "Main.java"}, names(plan.Order))
	require.Equal(t, 3, plan.ChangedCount())
	require.Equal(t, 0, plan.SkippedCount())
}

// buildOnce discovers, plans and simulates a successful compilation by
// touching every planned artifact, returning the snapshot a real build would
// have persisted.
func buildOnce(t *testing.T, p *planner.Planner, dir, outDir string) domain.CacheSnapshot {
	t.Helper()
	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, domain.CacheSnapshot{}, planner.PlanOptions{OutDir: outDir})
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(outDir, 0o750))
	for _, entry := range plan.Entries {
		require.NoError(t, os.WriteFile(entry.ArtifactPath, []byte{0xCA, 0xFE}, 0o600))
	}
	return plan.Entries
}

func TestPlan_UnchangedInputsYieldEmptyChangedSet(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	outDir := filepath.Join(dir, "out")
	snapshot := buildOnce(t, p, dir, outDir)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, snapshot, planner.PlanOptions{OutDir: outDir})
	require.NoError(t, err)

	require.Equal(t, 0, plan.ChangedCount())
	require.Equal(t, 3, plan.SkippedCount())
}

func TestPlan_EditedFileAloneIsChanged(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	outDir := filepath.Join(dir, "out")
	snapshot := buildOnce(t, p, dir, outDir)

	// Edit Util.java only. Under content invalidation its dependent
	// Main.java stays cached.
	writeSource(t, dir, "Util.java", `/*
using "Log.java"
*/
public class Util {
    public static void print() { Log.write("edited"); }
}
`)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, snapshot, planner.PlanOptions{OutDir: outDir})
	require.NoError(t, err)

	require.Equal(t, []string{"Util.java"}, names(plan.ChangedInOrder()))
}

func TestPlan_TransitiveInvalidationAddsDependents(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	outDir := filepath.Join(dir, "out")
	snapshot := buildOnce(t, p, dir, outDir)

	writeSource(t, dir, "Log.java", `public class Log {
    public static void write(String s) { System.err.println(s); }
}
`)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, snapshot, planner.PlanOptions{
		OutDir:       outDir,
		Invalidation: domain.InvalidateTransitive,
	})
	require.NoError(t, err)

	// Editing the leaf pulls in the whole dependent chain.
	require.Equal(t, []string{"Log.java", "Util.java", "Main.java"}, names(plan.ChangedInOrder()))
}

func TestPlan_MissingArtifactInvalidates(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	outDir := filepath.Join(dir, "out")
	snapshot := buildOnce(t, p, dir, outDir)

	require.NoError(t, os.Remove(filepath.Join(outDir, "Util.class")))

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, snapshot, planner.PlanOptions{OutDir: outDir})
	require.NoError(t, err)

	require.Equal(t, []string{"Util.java"}, names(plan.ChangedInOrder()))
}

func TestPlan_ForceMarksEverything(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	outDir := filepath.Join(dir, "out")
	snapshot := buildOnce(t, p, dir, outDir)

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, snapshot, planner.PlanOptions{OutDir: outDir, Force: true})
	require.NoError(t, err)

	require.Equal(t, 3, plan.ChangedCount())
}

func TestPlan_EntriesCarryFreshHashes(t *testing.T) {
	p, _ := newPlanner()
	dir := fixtureChain(t)
	outDir := filepath.Join(dir, "out")

	graph, err := p.Discover("Main.java", planner.DiscoverOptions{SrcDir: dir})
	require.NoError(t, err)
	plan, err := p.Plan(graph, domain.CacheSnapshot{}, planner.PlanOptions{OutDir: outDir})
	require.NoError(t, err)

	require.Len(t, plan.Entries, 3)
	for name, entry := range plan.Entries {
		require.Len(t, entry.Hash, 16, "hash of %s should be a fixed-width digest", name)
		require.Equal(t, filepath.Join(outDir, domain.ClassNameOf(name)+".class"), entry.ArtifactPath)
	}
}
