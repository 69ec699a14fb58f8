package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/javelin-build/javelin/internal/core/domain"
)

// Tree renders a dependency graph as an indented tree, with implicit edges
// shown distinctly from declared ones. Traversal follows the same
// deterministic order as the build plan, so repeated runs over an unchanged
// graph produce identical output.
type Tree struct {
	w        io.Writer
	root     lipgloss.Style
	declared lipgloss.Style
	implicit lipgloss.Style
	note     lipgloss.Style
	branch   lipgloss.Style
}

// NewTree creates a tree renderer writing styled output to w.
func NewTree(w io.Writer) *Tree {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())

	return &Tree{
		w:        w,
		root:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		declared: r.NewStyle().Foreground(lipgloss.Color("2")),
		implicit: r.NewStyle().Foreground(lipgloss.Color("5")),
		note:     r.NewStyle().Faint(true),
		branch:   r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// Render writes the dependency tree rooted at entry.
func (t *Tree) Render(g *domain.Graph, entry domain.InternedString) {
	visited := make(map[domain.InternedString]bool)
	t.renderNode(g, entry, 0, visited)
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, t.note.Render("implicit dependencies are inferred from references, not declared"))
}

func (t *Tree) renderNode(g *domain.Graph, name domain.InternedString, depth int, visited map[domain.InternedString]bool) {
	indent := strings.Repeat("  ", depth)

	if visited[name] {
		fmt.Fprintf(t.w, "%s%s %s %s\n", indent, t.branch.Render("└─"), name.String(), t.note.Render("(already shown)"))
		return
	}
	visited[name] = true

	file, ok := g.File(name)
	if !ok {
		return
	}

	if depth == 0 {
		fmt.Fprintln(t.w, t.root.Render(name.String()))
	} else {
		fmt.Fprintf(t.w, "%s%s %s\n", indent, t.branch.Render("└─"), t.declared.Render(name.String()))
	}

	for _, dep := range file.Deps {
		if dep.Orders() {
			t.renderNode(g, dep.Name, depth+1, visited)
			continue
		}

		// Advisory edge: tagged, and descended into only when the file was
		// discovered through some declared path.
		fmt.Fprintf(t.w, "%s%s %s %s\n",
			strings.Repeat("  ", depth+1),
			t.branch.Render("└─"),
			t.implicit.Render(dep.Name.String()),
			t.note.Render("(implicit)"))
		if _, known := g.File(dep.Name); known && !visited[dep.Name] {
			t.renderNode(g, dep.Name, depth+2, visited)
		}
	}
}
