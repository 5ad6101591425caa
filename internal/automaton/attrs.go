package automaton

import (
	"fmt"

	"regexdfa/internal/logutil"
	"regexdfa/internal/syntax"
)

var logger = logutil.GetLogger("[automaton] ")

// InvalidTreeError is returned when a tree did not come out of a successful
// syntax.Parse, or was modified afterwards.
type InvalidTreeError struct {
	Reason string
}

func (e *InvalidTreeError) Error() string { return "invalid syntax tree: " + e.Reason }

func invalid(format string, args ...interface{}) error {
	return &InvalidTreeError{Reason: fmt.Sprintf(format, args...)}
}

// Position is one row of the position table.
type Position struct {
	Pos    int
	Sym    rune
	End    bool
	Follow PosSet
}

// Attributes holds nullable, firstpos and lastpos for every node of a tree,
// indexed by node ID, and the position table with followpos for every leaf.
// Returned sets are shared and must not be modified.
type Attributes struct {
	tree *syntax.Tree

	hasNullable []bool
	nullables   []bool
	firsts      []PosSet
	lasts       []PosSet
	positions   []Position

	// number of attribute computations, one per node and attribute
	evals int
}

// Evaluate validates t and computes all attributes for it.
func Evaluate(t *syntax.Tree) (*Attributes, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	n := len(t.Nodes)
	a := &Attributes{
		tree:        t,
		hasNullable: make([]bool, n),
		nullables:   make([]bool, n),
		firsts:      make([]PosSet, n),
		lasts:       make([]PosSet, n),
		positions:   make([]Position, len(t.Leaves)),
	}
	a.nullable(t.Root)
	a.firstpos(t.Root)
	a.lastpos(t.Root)

	raw := make([][]int, len(t.Leaves))
	a.follow(t.Root, raw)
	for i, l := range t.Leaves {
		a.positions[i] = Position{Pos: l.Pos, Sym: l.Sym, End: l.End, Follow: canonical(raw[i])}
	}
	logger.Printf("evaluated %d nodes, %d positions", n, len(t.Leaves))
	return a, nil
}

func validate(t *syntax.Tree) error {
	if t == nil || t.Root == nil {
		return invalid("no root")
	}
	if len(t.Leaves) == 0 {
		return invalid("no leaves")
	}
	seen := make([]bool, len(t.Nodes))
	leafSeen := make([]bool, len(t.Leaves))
	var walk func(n syntax.Node) error
	walk = func(n syntax.Node) error {
		if n == nil {
			return invalid("nil child")
		}
		id := n.ID()
		if id < 0 || id >= len(t.Nodes) || t.Nodes[id] != n {
			return invalid("node %d is not in the arena", id)
		}
		if seen[id] {
			return invalid("node %d reached twice", id)
		}
		seen[id] = true
		switch n := n.(type) {
		case *syntax.Char:
			if n.Pos < 1 || n.Pos > len(t.Leaves) || t.Leaves[n.Pos-1] != n {
				return invalid("leaf %d has position %d out of the table", id, n.Pos)
			}
			if leafSeen[n.Pos-1] {
				return invalid("duplicate position %d", n.Pos)
			}
			leafSeen[n.Pos-1] = true
			if n.End && n.Pos != len(t.Leaves) {
				return invalid("end marker at position %d, want %d", n.Pos, len(t.Leaves))
			}
			return nil
		case *syntax.Star:
			return walk(n.Child)
		case *syntax.Or:
			if err := walk(n.Left); err != nil {
				return err
			}
			return walk(n.Right)
		case *syntax.Cat:
			if err := walk(n.Left); err != nil {
				return err
			}
			return walk(n.Right)
		default:
			return invalid("unknown node %T", n)
		}
	}
	if err := walk(t.Root); err != nil {
		return err
	}
	for i, ok := range seen {
		if !ok {
			return invalid("node %d unreachable from the root", i)
		}
	}
	for i, ok := range leafSeen {
		if !ok {
			return invalid("position %d missing", i+1)
		}
	}
	root, ok := t.Root.(*syntax.Cat)
	if !ok {
		return invalid("root is %T, want end-marker concatenation", t.Root)
	}
	end, ok := root.Right.(*syntax.Char)
	if !ok || !end.End {
		return invalid("root does not end with the end marker")
	}
	return nil
}

func (a *Attributes) nullable(n syntax.Node) bool {
	id := n.ID()
	if a.hasNullable[id] {
		return a.nullables[id]
	}
	var v bool
	switch n := n.(type) {
	case *syntax.Char:
		v = false
	case *syntax.Star:
		a.nullable(n.Child)
		v = true
	case *syntax.Or:
		l := a.nullable(n.Left)
		r := a.nullable(n.Right)
		v = l || r
	case *syntax.Cat:
		l := a.nullable(n.Left)
		r := a.nullable(n.Right)
		v = l && r
	}
	a.evals++
	a.hasNullable[id] = true
	a.nullables[id] = v
	return v
}

func (a *Attributes) firstpos(n syntax.Node) PosSet {
	id := n.ID()
	if s := a.firsts[id]; s != nil {
		return s
	}
	var s PosSet
	switch n := n.(type) {
	case *syntax.Char:
		s = PosSet{n.Pos}
	case *syntax.Star:
		s = a.firstpos(n.Child)
	case *syntax.Or:
		s = union(a.firstpos(n.Left), a.firstpos(n.Right))
	case *syntax.Cat:
		s = a.firstpos(n.Left)
		if a.nullable(n.Left) {
			s = union(s, a.firstpos(n.Right))
		}
	}
	a.evals++
	a.firsts[id] = s
	return s
}

func (a *Attributes) lastpos(n syntax.Node) PosSet {
	id := n.ID()
	if s := a.lasts[id]; s != nil {
		return s
	}
	var s PosSet
	switch n := n.(type) {
	case *syntax.Char:
		s = PosSet{n.Pos}
	case *syntax.Star:
		s = a.lastpos(n.Child)
	case *syntax.Or:
		s = union(a.lastpos(n.Left), a.lastpos(n.Right))
	case *syntax.Cat:
		s = a.lastpos(n.Right)
		if a.nullable(n.Right) {
			s = union(a.lastpos(n.Left), s)
		}
	}
	a.evals++
	a.lasts[id] = s
	return s
}

// follow fires the two followpos rules once per Cat and Star node.
func (a *Attributes) follow(n syntax.Node, raw [][]int) {
	switch n := n.(type) {
	case *syntax.Star:
		a.follow(n.Child, raw)
		first := a.firstpos(n.Child)
		for _, p := range a.lastpos(n.Child) {
			raw[p-1] = append(raw[p-1], first...)
		}
	case *syntax.Or:
		a.follow(n.Left, raw)
		a.follow(n.Right, raw)
	case *syntax.Cat:
		a.follow(n.Left, raw)
		a.follow(n.Right, raw)
		first := a.firstpos(n.Right)
		for _, p := range a.lastpos(n.Left) {
			raw[p-1] = append(raw[p-1], first...)
		}
	}
}

func (a *Attributes) Tree() *syntax.Tree { return a.tree }

func (a *Attributes) Nullable(n syntax.Node) bool   { return a.nullable(n) }
func (a *Attributes) Firstpos(n syntax.Node) PosSet { return a.firstpos(n) }
func (a *Attributes) Lastpos(n syntax.Node) PosSet  { return a.lastpos(n) }

// Followpos returns followpos of the leaf at position p.
func (a *Attributes) Followpos(p int) PosSet { return a.positions[p-1].Follow }

// Positions returns the position table, indexed by position-1.
func (a *Attributes) Positions() []Position { return a.positions }

// EndPos is the position of the end marker.
func (a *Attributes) EndPos() int { return a.tree.EndPos() }
