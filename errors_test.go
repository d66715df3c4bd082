// errors_test.go
package lam

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_LexSnippet(t *testing.T) {
	src := "x @"
	_, err := Parse(src)
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("want *LexError, got %T: %v", err, err)
	}
	wrapped := WrapErrorWithName(err, "input.lam", src)
	msg := wrapped.Error()
	for _, part := range []string{
		"LEXICAL ERROR in input.lam at 1:3",
		"   1 | x @",
		"     |   ^",
	} {
		if !strings.Contains(msg, part) {
			t.Fatalf("snippet missing %q:\n%s", part, msg)
		}
	}
}

func Test_Errors_ParseSnippet_CaretOnOffendingColumn(t *testing.T) {
	src := "f x)"
	_, err := Parse(src)
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("want *ParseError, got %T: %v", err, err)
	}
	if pe.Code != UnexpectedToken {
		t.Fatalf("want UnexpectedToken, got %v", pe.Code)
	}
	msg := WrapErrorWithSource(err, src).Error()
	if !strings.Contains(msg, "SYNTAX ERROR at 1:4") {
		t.Fatalf("header missing:\n%s", msg)
	}
	if !strings.Contains(msg, "     |    ^") {
		t.Fatalf("caret misplaced:\n%s", msg)
	}
}

func Test_Errors_LimitMessage(t *testing.T) {
	_, err := Reduce(mustParse(`(\x (x x))(\x (x x))`))
	msg := WrapErrorWithName(err, "omega.lam", "").Error()
	if !strings.Contains(msg, "REDUCTION LIMIT in omega.lam") {
		t.Fatalf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "1000 steps") {
		t.Fatalf("step count missing: %s", msg)
	}
}

func Test_Errors_ThreeKinds_AreDisjoint(t *testing.T) {
	_, lexErr := Parse("x @")
	_, parseErr := Parse(`\x`)
	_, limitErr := Reduce(mustParse(`(\x (x x))(\x (x x))`))

	if _, ok := lexErr.(*LexError); !ok {
		t.Fatalf("lexical: got %T", lexErr)
	}
	if _, ok := parseErr.(*ParseError); !ok {
		t.Fatalf("syntax: got %T", parseErr)
	}
	if _, ok := limitErr.(*LimitError); !ok {
		t.Fatalf("limit: got %T", limitErr)
	}
	// Never conflated.
	if _, ok := lexErr.(*ParseError); ok {
		t.Fatal("lexical error must not be a parse error")
	}
	if _, ok := limitErr.(*LexError); ok {
		t.Fatal("limit error must not be a lexical error")
	}
}

func Test_Errors_UnknownErrors_PassThrough(t *testing.T) {
	plain := errors.New("boom")
	if got := WrapErrorWithSource(plain, "x"); got != plain {
		t.Fatalf("foreign error should be returned unchanged, got %v", got)
	}
}
