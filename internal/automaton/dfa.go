package automaton

import (
	"fmt"

	"regexdfa/internal/syntax"
)

// StateType classifies a state for presentation.
type StateType int

const (
	Mid StateType = iota
	StartState
	EndState
)

func (t StateType) String() string {
	switch t {
	case StartState:
		return "start"
	case EndState:
		return "end"
	default:
		return "mid"
	}
}

// State is a DFA state identified by its canonical position set.
type State struct {
	ID        int
	Positions PosSet
	Trans     map[rune]int
	Start     bool
	Accept    bool
}

// Type returns EndState for accepting states (including an accepting start
// state), StartState for a non-accepting start state and Mid otherwise.
func (s *State) Type() StateType {
	switch {
	case s.Accept:
		return EndState
	case s.Start:
		return StartState
	default:
		return Mid
	}
}

// Label is the comma-joined position set.
func (s *State) Label() string { return s.Positions.Key() }

type DFA struct {
	States   []*State
	Alphabet []rune
	EndPos   int
}

// Start returns the initial state.
func (d *DFA) Start() *State { return d.States[0] }

// Step returns the target of the transition from state on sym.
func (d *DFA) Step(state int, sym rune) (int, bool) {
	to, ok := d.States[state].Trans[sym]
	return to, ok
}

// Construct builds the DFA whose states are the position sets reachable
// from firstpos of the root.
func Construct(a *Attributes) *DFA {
	t := a.Tree()
	d := &DFA{Alphabet: t.Symbols(), EndPos: a.EndPos()}
	index := map[string]int{}

	intern := func(set PosSet) int {
		k := set.Key()
		if id, ok := index[k]; ok {
			return id
		}
		id := len(d.States)
		d.States = append(d.States, &State{
			ID:        id,
			Positions: set,
			Trans:     map[rune]int{},
			Start:     id == 0,
			Accept:    set.Contains(d.EndPos),
		})
		index[k] = id
		logger.Printf("state %d = %s", id, set)
		return id
	}

	intern(a.firstpos(t.Root))
	// States are appended in discovery order, so walking the slice is the
	// worklist.
	for i := 0; i < len(d.States); i++ {
		s := d.States[i]
		for _, sym := range d.Alphabet {
			u := move(a, s.Positions, sym)
			if len(u) == 0 {
				continue
			}
			s.Trans[sym] = intern(u)
		}
	}
	return d
}

// move returns the union of followpos(p) over p in set labelled sym.
func move(a *Attributes, set PosSet, sym rune) PosSet {
	var u []int
	for _, p := range set {
		pos := a.positions[p-1]
		if !pos.End && pos.Sym == sym {
			u = append(u, pos.Follow...)
		}
	}
	return canonical(u)
}

// Result bundles every stage of a compilation.
type Result struct {
	Tree  *syntax.Tree
	Attrs *Attributes
	DFA   *DFA
}

// Compile parses pattern and builds its DFA. opts enables grammar
// extensions; at most one is used.
func Compile(pattern string, opts ...syntax.Options) (*Result, error) {
	var o syntax.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	tree, err := syntax.ParseWith(pattern, o)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}
	attrs, err := Evaluate(tree)
	if err != nil {
		return nil, err
	}
	return &Result{Tree: tree, Attrs: attrs, DFA: Construct(attrs)}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Result {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}
