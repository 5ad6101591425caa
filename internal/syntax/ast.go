package syntax

import (
	"sort"
	"strings"
)

// Node is one of *Char, *Star, *Or, *Cat.
type Node interface {
	// ID is the node's index in Tree.Nodes.
	ID() int
	node()
}

// Char is a leaf. The end marker is a Char with End set and no symbol.
type Char struct {
	id  int
	Pos int
	Sym rune
	End bool
}

type Star struct {
	id    int
	Child Node
}

type Or struct {
	id          int
	Left, Right Node
}

type Cat struct {
	id          int
	Left, Right Node
}

func (n *Char) ID() int { return n.id }
func (n *Star) ID() int { return n.id }
func (n *Or) ID() int   { return n.id }
func (n *Cat) ID() int  { return n.id }

func (*Char) node() {}
func (*Star) node() {}
func (*Or) node()   {}
func (*Cat) node()  {}

// Tree is a parsed expression stored as an arena: Nodes[i].ID() == i and
// Leaves[p-1] is the leaf at position p. The last leaf is the end marker.
type Tree struct {
	Root   Node
	Nodes  []Node
	Leaves []*Char
}

// builder hands out arena slots and positions in construction order.
type builder struct {
	t *Tree
}

func newBuilder() *builder { return &builder{t: &Tree{}} }

func (b *builder) add(n Node) { b.t.Nodes = append(b.t.Nodes, n) }

func (b *builder) char(r rune) *Char {
	n := &Char{id: len(b.t.Nodes), Pos: len(b.t.Leaves) + 1, Sym: r}
	b.add(n)
	b.t.Leaves = append(b.t.Leaves, n)
	return n
}

func (b *builder) end() *Char {
	n := b.char(0)
	n.End = true
	return n
}

func (b *builder) star(c Node) *Star {
	n := &Star{id: len(b.t.Nodes), Child: c}
	b.add(n)
	return n
}

func (b *builder) or(l, r Node) *Or {
	n := &Or{id: len(b.t.Nodes), Left: l, Right: r}
	b.add(n)
	return n
}

func (b *builder) cat(l, r Node) *Cat {
	n := &Cat{id: len(b.t.Nodes), Left: l, Right: r}
	b.add(n)
	return n
}

// EndPos returns the position of the end marker.
func (t *Tree) EndPos() int { return len(t.Leaves) }

// Symbols returns the sorted distinct leaf symbols, end marker excluded.
func (t *Tree) Symbols() []rune {
	seen := map[rune]struct{}{}
	for _, l := range t.Leaves {
		if !l.End {
			seen[l.Sym] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String prints the tree as a fully parenthesised expression. Literal
// operators and backslashes come out escaped, so the result reparses under
// Options{Escapes: true}.
func (t *Tree) String() string {
	var sb strings.Builder
	writeNode(&sb, t.Root)
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Char:
		switch {
		case n.End:
			sb.WriteByte('#')
		case isSpecial(n.Sym) || n.Sym == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(n.Sym)
		default:
			sb.WriteRune(n.Sym)
		}
	case *Star:
		writeNode(sb, n.Child)
		sb.WriteByte('*')
	case *Or:
		sb.WriteByte('(')
		writeNode(sb, n.Left)
		sb.WriteByte('|')
		writeNode(sb, n.Right)
		sb.WriteByte(')')
	case *Cat:
		sb.WriteByte('(')
		writeNode(sb, n.Left)
		writeNode(sb, n.Right)
		sb.WriteByte(')')
	}
}
