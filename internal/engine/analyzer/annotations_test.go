package analyzer_test

import (
	"testing"

	"github.com/javelin-build/javelin/internal/engine/analyzer"
	"github.com/stretchr/testify/assert"
)

func TestDirectives(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "single directive",
			content: `/*
using "Helper.java"
*/
public class Main {}
`,
			want: []string{"Helper.java"},
		},
		{
			name: "multiple directives keep declaration order",
			content: `/*
using "Zebra.java"
using "Apple.java"
*/
public class Main {}
`,
			want: []string{"Zebra.java", "Apple.java"},
		},
		{
			name: "single line block comment",
			content: `/* using "Helper.java" */
public class Main {}
`,
			want: []string{"Helper.java"},
		},
		{
			name: "line comments and blanks before the block are tolerated",
			content: `// build notes

/*
using "Helper.java"
*/
public class Main {}
`,
			want: []string{"Helper.java"},
		},
		{
			name: "code before the block disables detection",
			content: `public class Main {}
/*
using "Helper.java"
*/
`,
			want: nil,
		},
		{
			name: "only the first block declares",
			content: `/*
using "First.java"
*/
/*
using "Second.java"
*/
public class Main {}
`,
			want: []string{"First.java"},
		},
		{
			name: "malformed directive is skipped",
			content: `/*
using "Helper.java"
using "Broken.java
using NoQuotes.java
*/
`,
			want: []string{"Helper.java"},
		},
		{
			name:    "no header",
			content: "public class Main {}\n",
			want:    nil,
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzer.Directives(tt.content))
		})
	}
}
