// lexer.go — tokenizer for the lambda-calculus surface syntax.
//
// The grammar is tiny: identifiers, a lambda marker ('\' or 'λ'), and round
// parentheses. Whitespace (space, tab, CR, newline) separates tokens and is
// otherwise ignored. There is no body separator in this grammar, so '.' is an
// ordinary unexpected character.
//
// Identifier rule: the first character must be a letter; subsequent
// characters may be letters or digits. A token in identifier position that
// starts with a digit is a lexical error, not a number — the language has no
// numeric literals.
//
// Errors are reported as *LexError carrying a 1-based line and a 0-based
// column (rendered 1-based by errors.go).
package lam

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// EOF is the end-of-input sentinel, emitted exactly once.
	EOF TokenType = iota
	// LAMBDA is the lambda marker, '\' or 'λ'.
	LAMBDA
	// IDENT is an identifier: [A-Za-z][A-Za-z0-9]*.
	IDENT
	// LROUND and RROUND are the grouping parentheses.
	LROUND
	RROUND
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "end of input"
	case LAMBDA:
		return `'\'`
	case IDENT:
		return "identifier"
	case LROUND:
		return "'('"
	case RROUND:
		return "')'"
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexical unit. Line is 1-based, Col is a 0-based column within
// the line.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// LexError is an illegal character or malformed identifier. Col is 0-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// Lexer scans a single source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType) Token {
	tok := Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

// scanIdentifier consumes [A-Za-z0-9]* after the leading character.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// 'λ' in UTF-8 is the two-byte sequence 0xCE 0xBB.
const (
	lambdaByte0 = 0xCE
	lambdaByte1 = 0xBB
)

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF), nil
	}

	ch, _ := l.advance()
	switch ch {
	case '\\':
		return l.addToken(LAMBDA), nil
	case '(':
		return l.addToken(LROUND), nil
	case ')':
		return l.addToken(RROUND), nil
	}

	if ch == lambdaByte0 {
		if b, ok := l.peek(); ok && b == lambdaByte1 {
			l.advance()
			return l.addToken(LAMBDA), nil
		}
	}

	if isAlpha(ch) {
		l.scanIdentifier()
		return l.addToken(IDENT), nil
	}

	if isDigit(ch) {
		// Consume the full run so the message names the whole offender.
		lex := l.scanIdentifier()
		return Token{}, l.err(fmt.Sprintf("identifier %q must not start with a digit", lex))
	}

	return Token{}, l.err(fmt.Sprintf("unexpected character: %q", ch))
}

// Scan tokenizes the entire source and returns tokens (EOF included).
// Reading past the EOF sentinel is a caller bug; Scan never emits two.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
