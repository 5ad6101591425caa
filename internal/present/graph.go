// Package present maps a compiled automaton into node-and-edge graphs for
// display. It only reads the automaton.
package present

import (
	"fmt"
	"sort"

	"regexdfa/internal/automaton"
)

type Node struct {
	ID    int    `yaml:"id"`
	Label string `yaml:"label"`
	Type  string `yaml:"type"`
}

type Edge struct {
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Label string `yaml:"label,omitempty"`
}

// Graph is a renderable description of an automaton. Start is the ID of the
// initial node, or nil when there is none.
type Graph struct {
	Name  string `yaml:"name"`
	Start *int   `yaml:"start,omitempty"`
	Nodes []Node `yaml:"nodes"`
	Edges []Edge `yaml:"edges"`
}

// Positions describes the leaf graph: one node per position and an edge to
// every position in its followpos.
func Positions(a *automaton.Attributes) *Graph {
	g := &Graph{Name: "positions"}
	for _, p := range a.Positions() {
		typ := automaton.Mid
		sym := string(p.Sym)
		if p.End {
			typ = automaton.EndState
			sym = "#"
		}
		g.Nodes = append(g.Nodes, Node{ID: p.Pos, Label: fmt.Sprintf("%d:%s", p.Pos, sym), Type: typ.String()})
		for _, q := range p.Follow {
			g.Edges = append(g.Edges, Edge{From: p.Pos, To: q})
		}
	}
	return g
}

// Automaton describes the DFA: one node per state labelled with its
// position set and one edge per transition labelled with its symbol.
func Automaton(d *automaton.DFA) *Graph {
	start := d.Start().ID
	g := &Graph{Name: "dfa", Start: &start}
	for _, s := range d.States {
		g.Nodes = append(g.Nodes, Node{ID: s.ID, Label: s.Label(), Type: s.Type().String()})
		syms := make([]rune, 0, len(s.Trans))
		for r := range s.Trans {
			syms = append(syms, r)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		for _, r := range syms {
			g.Edges = append(g.Edges, Edge{From: s.ID, To: s.Trans[r], Label: string(r)})
		}
	}
	return g
}
