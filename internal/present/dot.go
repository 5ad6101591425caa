package present

import (
	"fmt"
	"io"
	"strings"
)

var shapes = map[string]string{"start": "box", "mid": "oval", "end": "diamond"}

// WriteDOT prints the Graphviz representation of g to w.
func WriteDOT(w io.Writer, g *Graph) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", g.Name)
	sb.WriteString("    rankdir=LR;\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "    n%d [label=%s, shape=%s];\n", n.ID, quote(n.Label), shapes[n.Type])
	}
	for _, e := range g.Edges {
		if e.Label == "" {
			fmt.Fprintf(&sb, "    n%d -> n%d;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&sb, "    n%d -> n%d [label=%s];\n", e.From, e.To, quote(e.Label))
		}
	}
	if g.Start != nil {
		fmt.Fprintf(&sb, "    _start [shape=point]; _start -> n%d;\n", *g.Start)
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
