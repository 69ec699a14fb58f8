package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/javelin-build/javelin/internal/core/domain"
)

var identifierRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9_]*)\b`)

// References scans the file body for free-standing identifiers naming sibling
// classes that were not declared in the header.
//
// This is a syntactic approximation with a true-positive bias: a name inside
// a string literal may produce a false positive, which callers treat as
// acceptable noise; a genuine reference is never missed. Comment lines and
// the header block are excluded. The result is sorted for determinism.
func References(content, selfClass string, known, declared []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	declaredSet := make(map[string]bool, len(declared))
	for _, d := range declared {
		declaredSet[domain.ClassNameOf(d)] = true
	}

	found := make(map[string]bool)
	inHeader := true
	inBlockComment := false

	for line := range strings.Lines(content) {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "/*") {
			inBlockComment = true
		}
		if inBlockComment {
			if strings.HasSuffix(trimmed, "*/") {
				inBlockComment = false
				inHeader = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, "//") {
			continue
		}
		if inHeader && trimmed != "" {
			inHeader = false
		}
		if inHeader {
			continue
		}

		for _, match := range identifierRe.FindAllStringSubmatch(trimmed, -1) {
			name := match[1]
			if name == selfClass || declaredSet[name] || !knownSet[name] {
				continue
			}
			found[name] = true
		}
	}

	refs := make([]string, 0, len(found))
	for name := range found {
		refs = append(refs, name)
	}
	sort.Strings(refs)
	return refs
}
