package syntax

import (
	"unicode/utf8"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tLParen           // (
	tRParen           // )
	tStar             // *
	tUnion            // |
)

type token struct {
	typ tokenType
	ch  rune // for tChar
	off int  // byte offset in the pattern
	raw string
}

func (t token) String() string {
	if t.typ == tEOF {
		return "end of input"
	}
	return t.raw
}

type lexer struct {
	input   string
	pos     int
	escapes bool
}

func newLexer(s string, escapes bool) *lexer { return &lexer{input: s, escapes: escapes} }

func isSpecial(r rune) bool {
	switch r {
	case '(', ')', '*', '|':
		return true
	}
	return false
}

func (l *lexer) next() token {
	start := l.pos
	if l.pos >= len(l.input) {
		return token{typ: tEOF, off: start}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	tok := func(typ tokenType) token {
		return token{typ: typ, ch: r, off: start, raw: l.input[start:l.pos]}
	}
	switch r {
	case '(':
		return tok(tLParen)
	case ')':
		return tok(tRParen)
	case '*':
		return tok(tStar)
	case '|':
		return tok(tUnion)
	case '\\':
		if !l.escapes || l.pos >= len(l.input) {
			// standalone backslash is a literal
			return tok(tChar)
		}
		r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += s2
		return token{typ: tChar, ch: r2, off: start, raw: l.input[start:l.pos]}
	default:
		return tok(tChar)
	}
}
