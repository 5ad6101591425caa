package syntax

// Grammar:
//
//	regexp -> or
//	or     -> cat ('|' cat)*
//	cat    -> star+
//	star   -> term '*'?
//	term   -> '(' or ')' | char
//	char   -> any symbol not in { '|', '*', '(', ')' }

// Options enables extensions to the core grammar.
type Options struct {
	// Escapes makes \x a literal x for any rune x, so operators can be
	// matched literally.
	Escapes bool
}

type parser struct {
	lex  *lexer
	look token
	b    *builder
}

func newParser(pat string, opts Options) *parser {
	p := &parser{lex: newLexer(pat, opts.Escapes), b: newBuilder()}
	p.look = p.lex.next()
	return p
}

func (p *parser) scan() { p.look = p.lex.next() }

// Parse parses pattern with the core grammar. The returned tree is
// Cat{expr, end marker}.
func Parse(pattern string) (*Tree, error) {
	return ParseWith(pattern, Options{})
}

// ParseWith is like Parse with extensions enabled by opts.
func ParseWith(pattern string, opts Options) (*Tree, error) {
	p := newParser(pattern, opts)
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.look.typ != tEOF {
		return nil, errorf(p.look, "unexpected trailing input")
	}
	t := p.b.t
	t.Root = p.b.cat(expr, p.b.end())
	return t, nil
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseCat()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tUnion {
		p.scan()
		right, err := p.parseCat()
		if err != nil {
			return nil, err
		}
		left = p.b.or(left, right)
	}
	return left, nil
}

func (p *parser) parseCat() (Node, error) {
	left, err := p.parseStar()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tChar || p.look.typ == tLParen {
		right, err := p.parseStar()
		if err != nil {
			return nil, err
		}
		left = p.b.cat(left, right)
	}
	return left, nil
}

func (p *parser) parseStar() (Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.look.typ == tStar {
		p.scan()
		return p.b.star(n), nil
	}
	return n, nil
}

func (p *parser) parseTerm() (Node, error) {
	switch p.look.typ {
	case tLParen:
		p.scan()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, errorf(p.look, "expected )")
		}
		p.scan()
		return inner, nil
	case tChar:
		n := p.b.char(p.look.ch)
		p.scan()
		return n, nil
	default:
		return nil, errorf(p.look, "expected symbol or (")
	}
}
