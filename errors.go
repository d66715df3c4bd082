// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// This module turns the package's typed diagnostics into readable snippets
// with a caret pointing at the offending column. The entry point is
// WrapErrorWithName, which recognizes *LexError (lexer.go) and *ParseError
// (parser.go), formats them, and returns a new error containing a multi-line
// snippet:
//
//	SYNTAX ERROR in prog.lam at 3:5: unclosed parenthesis
//
//	   2 | \x x
//	   3 | (y (z
//	     |     ^
//	   4 | w
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places a caret under the 1-based column.
//
// *LimitError has no source position — the term was already well formed — so
// it is rendered as a one-line message carrying the step count. Any other
// error is returned unchanged.
package lam

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// the provided source. It recognizes the package's typed errors and leaves
// other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (file path,
// "<stdin>", ...) included in the header when non-empty.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Lex/parse Col are 0-based; render as 1-based.
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "SYNTAX ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *LimitError:
		if srcName != "" {
			return fmt.Errorf("REDUCTION LIMIT in %s: no normal form after %d steps", srcName, e.Steps)
		}
		return fmt.Errorf("REDUCTION LIMIT: no normal form after %d steps", e.Steps)
	default:
		return err
	}
}

// snippet builds the caret-annotated message. It shows at most one previous
// and one next line when available. Coordinates are treated as 1-based and
// clamped to the source bounds so a bad position can never crash rendering.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
