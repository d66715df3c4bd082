// term_test.go
package lam

import (
	"reflect"
	"testing"
)

func Test_Term_Printing(t *testing.T) {
	cases := []struct {
		in   Term
		want string
	}{
		{Var{Name: "x"}, "x"},
		{Abs{Param: "x", Body: Var{Name: "x"}}, `(\x x)`},
		{App{Fun: Var{Name: "f"}, Arg: Var{Name: "a"}}, "(f a)"},
		{
			App{Fun: App{Fun: Var{Name: "f"}, Arg: Var{Name: "x"}}, Arg: Var{Name: "y"}},
			"((f x) y)",
		},
		{
			Abs{Param: "x", Body: Abs{Param: "y", Body: Var{Name: "x"}}},
			`(\x (\y x))`,
		},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("print mismatch: want %q, got %q", tc.want, got)
		}
	}
}

func Test_Term_Equal_IsStructural(t *testing.T) {
	a := parse(t, `\x x`)
	b := parse(t, `\x x`)
	c := parse(t, `\y y`)
	if !Equal(a, b) {
		t.Fatalf("identical structure should be Equal")
	}
	// No implicit alpha-equivalence at the data-model level.
	if Equal(a, c) {
		t.Fatalf(`(\x x) and (\y y) must not be structurally Equal`)
	}
	if !AlphaEqual(a, c) {
		t.Fatalf(`(\x x) and (\y y) should be AlphaEqual`)
	}
}

func Test_Term_AlphaEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{`\x \y x`, `\a \b a`, true},
		{`\x \y x`, `\a \b b`, false},
		{`\x (x y)`, `\z (z y)`, true},
		{`\x (x y)`, `\z (z w)`, false}, // free variables must match by name
		{`x`, `y`, false},
		{`\x x`, `x`, false},
	}
	for _, tc := range cases {
		got := AlphaEqual(parse(t, tc.a), parse(t, tc.b))
		if got != tc.want {
			t.Fatalf("AlphaEqual(%q, %q): want %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func Test_Term_FreeVars(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"x", []string{"x"}},
		{`\x x`, nil},
		{`\x (x y)`, []string{"y"}},
		{`(x y) (x z)`, []string{"x", "y", "z"}},
		{`\x \y (x (y z))`, []string{"z"}},
		{`(\x x) x`, []string{"x"}},
	}
	for _, tc := range cases {
		got := FreeVarNames(parse(t, tc.src))
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("FreeVarNames(%q): want %v, got %v", tc.src, tc.want, got)
		}
	}
}
