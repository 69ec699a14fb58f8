package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

var publicClassRe = regexp.MustCompile(`(?m)^\s*public\s+class\s+(\w+)`)

// Resolver locates source files under a single source root.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps a declared dependency name to a path under the source root.
func (r *Resolver) Resolve(srcDir, name string) (string, bool) {
	path := filepath.Join(srcDir, name)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// ResolveEntry locates the entry file: first as given relative to the working
// directory, then under the source root.
func (r *Resolver) ResolveEntry(srcDir, name string) (string, bool) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, true
	}
	return r.Resolve(srcDir, name)
}

// Siblings returns the public class names defined by the other source files
// in the same directory as path, sorted.
func (r *Resolver) Siblings(path string) ([]string, error) {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source directory"), "dir", dir)
	}

	self := filepath.Base(path)
	var classes []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == self || !strings.HasSuffix(name, domain.SourceSuffix) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name)) //nolint:gosec // Path is under the source root
		if err != nil {
			continue // unreadable siblings are simply not scan candidates
		}
		for _, match := range publicClassRe.FindAllStringSubmatch(string(content), -1) {
			classes = append(classes, match[1])
		}
	}

	sort.Strings(classes)
	return classes, nil
}
