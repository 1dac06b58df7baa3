package formula

import "fmt"

// Parse tokenizes and parses f's text into an AST, per the grammar in
// doc.go. Parse is the reference parser used by the bundled oracle
// implementation; it is not invoked by the dataset/kernel/hstree/search
// packages, which treat Formula as opaque.
//
// Precedence, loosest to tightest: <=>, =>(right-assoc), ^^, ||, &&, !.
func Parse(f Formula) (*Node, error) {
	if f.Empty() {
		return nil, ErrEmptyFormula
	}

	p := &parser{lex: newLexer(string(f))}
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w at position %d", ErrTrailingInput, p.cur.pos)
	}
	return node, nil
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) parseIff() (*Node, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokIff {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: KindIff, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseImplies() (*Node, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokImplies {
		if err := p.advance(); err != nil {
			return nil, err
		}
		// right-associative: recurse back into parseImplies
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindImplies, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseXor() (*Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokXor {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: KindXor, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseOr() (*Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: KindOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (*Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: KindAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (*Node, error) {
	switch p.cur.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindNot, Child: child}, nil
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: KindTrue}, nil
	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: KindFalse}, nil
	case tokAtom:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: KindAtom, Atom: name}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w at position %d", ErrUnterminatedParen, p.cur.pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokEOF:
		return nil, ErrUnexpectedEOF
	default:
		return nil, fmt.Errorf("%w %q at position %d", ErrUnexpectedToken, p.cur.text, p.cur.pos)
	}
}
