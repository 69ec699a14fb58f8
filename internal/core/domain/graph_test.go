package domain_test

import (
	"errors"
	"testing"

	"github.com/javelin-build/javelin/internal/core/domain"
	"go.trai.ch/zerr"
)

func declared(name string) domain.Dependency {
	return domain.Dependency{Name: domain.NewInternedString(name), Kind: domain.EdgeDeclared}
}

func implicit(name string) domain.Dependency {
	return domain.Dependency{Name: domain.NewInternedString(name), Kind: domain.EdgeImplicit}
}

func TestGraph_AddFile(t *testing.T) {
	g := domain.NewGraph()
	f := domain.SourceFile{Name: domain.NewInternedString("Main.java")}

	if err := g.AddFile(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := g.AddFile(&f); err == nil {
		t.Error("expected error when adding duplicate file, got nil")
	} else {
		if !errors.Is(err, domain.ErrFileAlreadyExists) {
			t.Errorf("expected ErrFileAlreadyExists, got %v", err)
		}
		var zErr *zerr.Error
		ok := errors.As(err, &zErr)
		if !ok {
			t.Errorf("expected *zerr.Error, got %T", err)
		}
		meta := zErr.Metadata()
		if name, ok := meta["file"].(string); !ok || name != "Main.java" {
			t.Errorf("expected metadata file=Main.java, got %v", meta["file"])
		}
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("B.java")},
	}
	b := domain.SourceFile{
		Name: domain.NewInternedString("B.java"),
		Deps: []domain.Dependency{declared("A.java")},
	}

	if err := g.AddFile(&a); err != nil {
		t.Fatalf("failed to add A.java: %v", err)
	}
	if err := g.AddFile(&b); err != nil {
		t.Fatalf("failed to add B.java: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if cycle, ok := meta["cycle"].(string); !ok || cycle != "A.java -> B.java -> A.java" {
		t.Errorf("unexpected cycle metadata: %v", meta["cycle"])
	}
}

func TestGraph_Validate_SelfCycle(t *testing.T) {
	g := domain.NewGraph()
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("A.java")},
	}
	if err := g.AddFile(&a); err != nil {
		t.Fatalf("failed to add A.java: %v", err)
	}

	err := g.Validate()
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected for self-dependency, got %v", err)
	}
}

func TestGraph_Validate_ImplicitEdgesDoNotCycle(t *testing.T) {
	// Plain implicit edges are advisory: a cycle that exists only through
	// them must not fail validation.
	g := domain.NewGraph()
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("B.java")},
	}
	b := domain.SourceFile{
		Name: domain.NewInternedString("B.java"),
		Deps: []domain.Dependency{implicit("A.java")},
	}

	if err := g.AddFile(&a); err != nil {
		t.Fatalf("failed to add A.java: %v", err)
	}
	if err := g.AddFile(&b); err != nil {
		t.Fatalf("failed to add B.java: %v", err)
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestGraph_Validate_PromotedImplicitCycles(t *testing.T) {
	g := domain.NewGraph()
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("B.java")},
	}
	promoted := implicit("A.java")
	promoted.Promoted = true
	b := domain.SourceFile{
		Name: domain.NewInternedString("B.java"),
		Deps: []domain.Dependency{promoted},
	}

	if err := g.AddFile(&a); err != nil {
		t.Fatalf("failed to add A.java: %v", err)
	}
	if err := g.AddFile(&b); err != nil {
		t.Fatalf("failed to add B.java: %v", err)
	}

	if err := g.Validate(); !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected through promoted edge, got %v", err)
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C
	// Build order: C, B, A
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("B.java")},
	}
	b := domain.SourceFile{
		Name: domain.NewInternedString("B.java"),
		Deps: []domain.Dependency{declared("C.java")},
	}
	c := domain.SourceFile{
		Name: domain.NewInternedString("C.java"),
	}

	for _, f := range []*domain.SourceFile{&a, &b, &c} {
		if err := g.AddFile(f); err != nil {
			t.Fatalf("failed to add %s: %v", f.Name, err)
		}
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	order := make([]string, 0, 3)
	for f := range g.Walk() {
		order = append(order, f.Name.String())
	}

	if len(order) != 3 {
		t.Fatalf("expected 3 files, got %d", len(order))
	}
	if order[0] != "C.java" || order[1] != "B.java" || order[2] != "A.java" {
		t.Errorf("unexpected build order: %v", order)
	}
}

func TestGraph_Walk_Deterministic(t *testing.T) {
	// Two independent roots sharing a dependency: the order must be stable
	// across repeated validations because roots are visited in discovery
	// order, not map order.
	build := func() *domain.Graph {
		g := domain.NewGraph()
		main := domain.SourceFile{
			Name: domain.NewInternedString("Main.java"),
			Deps: []domain.Dependency{declared("Util.java"), declared("Log.java")},
		}
		util := domain.SourceFile{
			Name: domain.NewInternedString("Util.java"),
			Deps: []domain.Dependency{declared("Log.java")},
		}
		log := domain.SourceFile{Name: domain.NewInternedString("Log.java")}
		for _, f := range []*domain.SourceFile{&main, &util, &log} {
			if err := g.AddFile(f); err != nil {
				t.Fatalf("failed to add %s: %v", f.Name, err)
			}
		}
		return g
	}

	var first []string
	for i := 0; i < 10; i++ {
		g := build()
		if err := g.Validate(); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
		var order []string
		for f := range g.Walk() {
			order = append(order, f.Name.String())
		}
		if first == nil {
			first = order
			continue
		}
		for j := range first {
			if order[j] != first[j] {
				t.Fatalf("order changed between runs: %v vs %v", first, order)
			}
		}
	}

	if first[0] != "Log.java" || first[1] != "Util.java" || first[2] != "Main.java" {
		t.Errorf("unexpected build order: %v", first)
	}
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("Ghost.java")},
	}
	if err := g.AddFile(&a); err != nil {
		t.Fatalf("failed to add A.java: %v", err)
	}

	err := g.Validate()
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}

func TestGraph_Dependents(t *testing.T) {
	g := domain.NewGraph()
	a := domain.SourceFile{
		Name: domain.NewInternedString("A.java"),
		Deps: []domain.Dependency{declared("B.java")},
	}
	b := domain.SourceFile{
		Name: domain.NewInternedString("B.java"),
		Deps: []domain.Dependency{implicit("A.java")},
	}
	for _, f := range []*domain.SourceFile{&a, &b} {
		if err := g.AddFile(f); err != nil {
			t.Fatalf("failed to add %s: %v", f.Name, err)
		}
	}

	rev := g.Dependents()
	deps := rev[domain.NewInternedString("B.java")]
	if len(deps) != 1 || deps[0].String() != "A.java" {
		t.Errorf("expected A.java as sole dependent of B.java, got %v", deps)
	}
	// The implicit edge from B to A must not appear in the reverse map.
	if len(rev[domain.NewInternedString("A.java")]) != 0 {
		t.Errorf("implicit edge leaked into dependents map: %v", rev[domain.NewInternedString("A.java")])
	}
}
