// church.go — Church-numeral encoding and the arithmetic front end.
//
// A non-negative integer k is encoded as the two-argument function applying
// its first argument to its second k times:
//
//	0  (\f (\x x))
//	3  (\f (\x (f (f (f x)))))
//
// Arith builds the applied combinator term for one of the three supported
// operators and leaves reduction to the caller. Subtraction is monus: the
// result floors at zero.
package lam

import "fmt"

// InvalidOperatorError rejects operators outside {+, *, -}. It is returned
// before any term is built.
type InvalidOperatorError struct {
	Op string
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator %q: want one of +, *, -", e.Op)
}

// Combinators for Church arithmetic. pred is the standard pairing-free
// predecessor; monus applies it n times to m.
var (
	addCombinator  = mustParse(`\m \n \f \x ((m f) ((n f) x))`)
	mulCombinator  = mustParse(`\m \n \f \x ((m (n f)) x)`)
	predCombinator = mustParse(`\n \f \x (((n (\g \h (h (g f)))) (\u x)) (\u u))`)

	// monus m n = (n pred) m
	subCombinator = Abs{Param: "m", Body: Abs{Param: "n", Body: App{
		Fun: App{Fun: Var{Name: "n"}, Arg: predCombinator},
		Arg: Var{Name: "m"},
	}}}
)

func mustParse(src string) Term {
	t, err := Parse(src)
	if err != nil {
		panic("lam: bad combinator constant: " + err.Error())
	}
	return t
}

// Church encodes a non-negative integer as a Church numeral. It panics on a
// negative argument; Arith validates operands before calling it.
func Church(k int) Term {
	if k < 0 {
		panic("lam: Church numeral of negative integer")
	}
	body := Term(Var{Name: "x"})
	for i := 0; i < k; i++ {
		body = App{Fun: Var{Name: "f"}, Arg: body}
	}
	return Abs{Param: "f", Body: Abs{Param: "x", Body: body}}
}

// Arith builds the term ((op a) b) over the Church encodings of a and b.
// The operator must be "+", "*", or "-" (monus); anything else fails with
// *InvalidOperatorError before any term is built. Operands must be
// non-negative.
func Arith(a int, op string, b int) (Term, error) {
	var comb Term
	switch op {
	case "+":
		comb = addCombinator
	case "*":
		comb = mulCombinator
	case "-":
		comb = subCombinator
	default:
		return nil, &InvalidOperatorError{Op: op}
	}
	if a < 0 || b < 0 {
		return nil, fmt.Errorf("operands must be non-negative, got %d and %d", a, b)
	}
	return App{Fun: App{Fun: comb, Arg: Church(a)}, Arg: Church(b)}, nil
}
