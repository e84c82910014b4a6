// Deterministic textual rendering of the whole graph. The format is
// compatibility-significant; tests pin it byte for byte.

package core

import (
	"fmt"
	"strings"
)

// Format renders the graph under the given label:
//
//	label = (V,E)
//	V = {a, b, c}
//	E = {
//	(a, b, 5),
//	(b, c, 2)
//	}
//
// Vertices ascend lexicographically; each edge appears once with its smaller
// endpoint first, ordered ascending by (U, V). An empty label falls back to
// "Graph". The result is newline-terminated.
// Complexity: O(V + E).
func (g *Graph) Format(label string) string {
	if label == "" {
		label = "Graph"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s = (V,E)\n", label)

	// Vertex set on one line.
	b.WriteString("V = {")
	for i, v := range g.vertices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.name)
	}
	b.WriteString("}\n")

	// Edge set, one edge per line, comma-separated between lines.
	b.WriteString("E = {\n")
	for i, e := range g.Edges() {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "(%s, %s, %d)", e.U, e.V, e.Weight)
	}
	b.WriteString("\n}\n")

	return b.String()
}

// String renders the graph under the default label.
func (g *Graph) String() string { return g.Format("Graph") }
