// parser.go — recursive-descent parser for lambda-calculus expressions.
//
// Grammar (highest to lowest precedence):
//
//	expr        := abstraction | application
//	abstraction := LAMBDA IDENT body        -- body is the remaining expr,
//	                                           extending as far right as possible
//	application := atom atom*               -- left-associative: a b c == ((a b) c)
//	atom        := IDENT | LROUND expr RROUND
//
// An abstraction may also appear as the final argument of an application
// ("f \x x" parses as (f (\x x))), because the abstraction body consumes
// everything to its right.
//
// Parse handles exactly one expression per call; splitting a file into lines
// is the caller's job (see cmd/lam). Blank input is not an error — it yields
// (nil, nil).
//
// Failures are *ParseError values. Each carries a Code naming the grammar
// violation so callers (and tests) can distinguish the subcases without
// string matching.
package lam

import "fmt"

// ParseCode names a grammar violation subcase.
type ParseCode int

const (
	// MissingVariable: lambda marker not followed by an identifier.
	MissingVariable ParseCode = iota
	// MissingBody: lambda marker and bound variable with no body after them.
	MissingBody
	// UnclosedParenthesis: '(' without a matching ')'.
	UnclosedParenthesis
	// UnexpectedToken: unmatched ')' or trailing tokens after a complete
	// expression.
	UnexpectedToken
)

func (c ParseCode) String() string {
	switch c {
	case MissingVariable:
		return "missing variable"
	case MissingBody:
		return "missing body"
	case UnclosedParenthesis:
		return "unclosed parenthesis"
	case UnexpectedToken:
		return "unexpected token"
	}
	return fmt.Sprintf("ParseCode(%d)", int(c))
}

// ParseError is a structural grammar violation. Col is 0-based.
type ParseError struct {
	Code ParseCode
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("SYNTAX ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// Parse lexes and parses one top-level expression. Blank or whitespace-only
// input yields (nil, nil). Trailing tokens after a complete expression are an
// UnexpectedToken error.
func Parse(src string) (Term, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().Type == EOF {
		return nil, nil
	}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	if g := p.peek(); g.Type != EOF {
		return nil, p.errAt(g, UnexpectedToken, fmt.Sprintf("unexpected %s %q after expression", g.Type, g.Lexeme))
	}
	return t, nil
}

type parser struct {
	toks []Token
	i    int
}

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

func (p *parser) errAt(tok Token, code ParseCode, msg string) error {
	return &ParseError{Code: code, Line: tok.Line, Col: tok.Col, Msg: msg}
}

func (p *parser) expr() (Term, error) {
	if p.peek().Type == LAMBDA {
		return p.abstraction()
	}
	return p.application()
}

// abstraction parses LAMBDA IDENT body with the body extending maximally
// right.
func (p *parser) abstraction() (Term, error) {
	p.next() // LAMBDA
	v := p.peek()
	if v.Type != IDENT {
		return nil, p.errAt(v, MissingVariable, "expected variable after lambda")
	}
	p.next()
	if g := p.peek(); g.Type == EOF || g.Type == RROUND {
		return nil, p.errAt(g, MissingBody, fmt.Sprintf("expected body after lambda variable %q", v.Lexeme))
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return Abs{Param: v.Lexeme, Body: body}, nil
}

// application parses atom atom*, folding left. A trailing abstraction is
// accepted as the final argument.
func (p *parser) application() (Term, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case IDENT, LROUND:
			arg, err := p.atom()
			if err != nil {
				return nil, err
			}
			left = App{Fun: left, Arg: arg}
		case LAMBDA:
			arg, err := p.abstraction()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: arg}, nil
		default:
			return left, nil
		}
	}
}

func (p *parser) atom() (Term, error) {
	switch t := p.peek(); t.Type {
	case IDENT:
		p.next()
		return Var{Name: t.Lexeme}, nil
	case LROUND:
		open := p.next()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != RROUND {
			return nil, p.errAt(open, UnclosedParenthesis, "unclosed parenthesis")
		}
		p.next()
		return inner, nil
	case EOF:
		return nil, p.errAt(t, UnexpectedToken, "unexpected end of input")
	default:
		return nil, p.errAt(t, UnexpectedToken, fmt.Sprintf("unexpected %s %q", t.Type, t.Lexeme))
	}
}
