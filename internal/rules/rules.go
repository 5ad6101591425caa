// Package rules reads lexer definitions: named patterns, one per rule,
//
//	// comment
//	ident = "(a|b)*abb";
//
// and compiles every pattern into its own DFA.
package rules

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexdfa/internal/automaton"
	"regexdfa/internal/syntax"
)

type File struct {
	Rules []*Rule `parser:"@@*"`
}

type Rule struct {
	Pos     lexer.Position
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@String ';'"`
}

var parser = participle.MustBuild[File](participle.Unquote("String"))

// Parse parses a rule file. filename is used in error positions only.
func Parse(filename string, src []byte) (*File, error) {
	return parser.ParseBytes(filename, src)
}

// Compiled is a rule together with its automaton.
type Compiled struct {
	Rule   *Rule
	Result *automaton.Result
}

// Compile compiles every rule. It reports all failing rules at once, each
// with its position; no partial result is returned.
func (f *File) Compile(opts syntax.Options) ([]Compiled, error) {
	var (
		out  []Compiled
		errs []error
	)
	seen := map[string]*Rule{}
	for _, r := range f.Rules {
		if prev, ok := seen[r.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: rule %s already defined at %s", r.Pos, r.Name, prev.Pos))
			continue
		}
		seen[r.Name] = r
		res, err := automaton.Compile(r.Pattern, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: rule %s: %w", r.Pos, r.Name, err))
			continue
		}
		out = append(out, Compiled{Rule: r, Result: res})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
