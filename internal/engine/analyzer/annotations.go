// Package analyzer extracts declared and inferred dependencies from source files.
package analyzer

import "strings"

// directiveKeyword prefixes a dependency declaration inside the header
// comment, e.g. `using "Helper.java"`.
const directiveKeyword = `using "`

// Directives returns the dependency file names declared in the file's
// leading block comment, in declaration order.
//
// Only the first block comment is honored, and only when nothing but blank
// lines and line comments precede it. Directives appearing later in the file
// are ignored so that declarations stay discoverable at a glance. Malformed
// directive lines are skipped, never errored.
func Directives(content string) []string {
	var deps []string
	inComment := false

	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "/*") {
			inComment = true
		}

		if inComment {
			if dep, ok := parseDirective(line); ok {
				deps = append(deps, dep)
			}
		}

		if strings.HasSuffix(line, "*/") {
			break // only the first comment block declares dependencies
		}

		if !inComment && !strings.HasPrefix(line, "//") && line != "" {
			break // real code before any block comment disables detection
		}
	}

	return deps
}

// parseDirective extracts the quoted file name from a directive line.
func parseDirective(line string) (string, bool) {
	start := strings.Index(line, directiveKeyword)
	if start < 0 {
		return "", false
	}
	rest := line[start+len(directiveKeyword):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
