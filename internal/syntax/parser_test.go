package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, pat string) *Tree {
	t.Helper()
	tree, err := Parse(pat)
	if err != nil {
		t.Fatalf("parse %q: %v", pat, err)
	}
	return tree
}

func TestParseShape(t *testing.T) {
	tree := mustParse(t, "(a|b)*abb")

	root, ok := tree.Root.(*Cat)
	if !ok {
		t.Fatalf("root is %T, want *Cat", tree.Root)
	}
	end, ok := root.Right.(*Char)
	if !ok || !end.End || end.Pos != 6 {
		t.Fatalf("root right = %#v, want end marker at 6", root.Right)
	}

	// ((((a|b)* a) b) b)
	c3 := root.Left.(*Cat)
	if b := c3.Right.(*Char); b.Sym != 'b' || b.Pos != 5 {
		t.Errorf("c3 right = %#v", b)
	}
	c2 := c3.Left.(*Cat)
	if b := c2.Right.(*Char); b.Sym != 'b' || b.Pos != 4 {
		t.Errorf("c2 right = %#v", b)
	}
	c1 := c2.Left.(*Cat)
	if a := c1.Right.(*Char); a.Sym != 'a' || a.Pos != 3 {
		t.Errorf("c1 right = %#v", a)
	}
	star := c1.Left.(*Star)
	or := star.Child.(*Or)
	if l := or.Left.(*Char); l.Sym != 'a' || l.Pos != 1 {
		t.Errorf("or left = %#v", l)
	}
	if r := or.Right.(*Char); r.Sym != 'b' || r.Pos != 2 {
		t.Errorf("or right = %#v", r)
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "(a#)"},
		{"ab", "((ab)#)"},
		{"abc", "(((ab)c)#)"},
		{"a|b|c", "(((a|b)|c)#)"},
		{"ab|c*", "(((ab)|c*)#)"},
		{"(a|b)*abb", "(((((a|b)*a)b)b)#)"},
		{"a(b|c)*d", "(((a(b|c)*)d)#)"},
		{"((a))", "(a#)"},
		{"(ab)*", "((ab)*#)"},
	}
	for _, tt := range tests {
		got := mustParse(t, tt.input).String()
		if got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePositionsDense(t *testing.T) {
	for _, pat := range []string{"a", "abc", "(a|b)*abb", "((a|b)*|c(d|e)*)f", "x*y*z*", "é*ü"} {
		tree := mustParse(t, pat)
		k := 0
		for _, l := range tree.Leaves {
			if !l.End {
				k++
			}
		}
		var got, want []int
		for i, l := range tree.Leaves {
			got = append(got, l.Pos)
			want = append(want, i+1)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q positions (-want +got):\n%s", pat, diff)
		}
		if len(tree.Leaves) != k+1 {
			t.Errorf("%q: %d leaves for %d symbols", pat, len(tree.Leaves), k)
		}
		last := tree.Leaves[len(tree.Leaves)-1]
		if !last.End || last.Pos != tree.EndPos() {
			t.Errorf("%q: last leaf %#v is not the end marker", pat, last)
		}
		for i, n := range tree.Nodes {
			if n.ID() != i {
				t.Errorf("%q: node %d has id %d", pat, i, n.ID())
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		found  string
	}{
		{"", 0, "end of input"},
		{"a|", 2, "end of input"},
		{"|a", 0, `"|"`},
		{"a||b", 2, `"|"`},
		{"(a", 2, "end of input"},
		{"a)", 1, `")"`},
		{"a**", 2, `"*"`},
		{"*a", 0, `"*"`},
		{"()", 1, `")"`},
		{"(a|)b", 3, `")"`},
		{"ab(", 3, "end of input"},
	}
	for _, tt := range tests {
		tree, err := Parse(tt.input)
		if tree != nil {
			t.Errorf("Parse(%q) returned a tree along with the error", tt.input)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%q) error = %v, want *SyntaxError", tt.input, err)
			continue
		}
		if se.Offset != tt.offset || se.Found != tt.found {
			t.Errorf("Parse(%q) = offset %d found %s, want offset %d found %s",
				tt.input, se.Offset, se.Found, tt.offset, tt.found)
		}
	}
}

func TestHashIsOrdinarySymbol(t *testing.T) {
	tree := mustParse(t, "abc#")
	if diff := cmp.Diff([]rune{'#', 'a', 'b', 'c'}, tree.Symbols()); diff != "" {
		t.Errorf("symbols (-want +got):\n%s", diff)
	}
	if tree.EndPos() != 5 {
		t.Errorf("end position = %d, want 5", tree.EndPos())
	}
}

func TestEscapes(t *testing.T) {
	plain := mustParse(t, `a\*b`)
	if got := plain.String(); got != `(((a\\*)b)#)` {
		t.Errorf("default grammar: %q", got)
	}

	esc, err := ParseWith(`a\*b\|`, Options{Escapes: true})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]rune{'*', 'a', 'b', '|'}, esc.Symbols()); diff != "" {
		t.Errorf("symbols (-want +got):\n%s", diff)
	}
	again, err := ParseWith(esc.String(), Options{Escapes: true})
	if err != nil {
		t.Fatalf("reparse %q: %v", esc.String(), err)
	}
	if again.String() != "("+esc.String()+"#)" {
		t.Errorf("reparse of %q gave %q", esc.String(), again.String())
	}
}

func TestSyntaxErrorShow(t *testing.T) {
	_, err := Parse("a|")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v", err)
	}
	want := "syntax error: expected symbol or ( (found end of input)\n  a|\n    ^"
	if diff := cmp.Diff(want, se.Show("a|", false)); diff != "" {
		t.Errorf("Show (-want +got):\n%s", diff)
	}
}
