// reduce.go — normal-order (leftmost-outermost) beta-reduction.
//
// The engine is an explicit iterative loop: find the next redex, contract,
// repeat. An App whose function is an Abs is a redex; among all redexes the
// one whose application node comes first in a pre-order traversal (outermost
// before innermost, function before argument) is contracted. Normal order
// guarantees that a normal form is reached whenever one exists — in
// particular, "(\x y)(omega)" reduces to y without ever touching omega.
//
// Beta-reduction is undecidable in general, so a step bound is the only
// termination guarantee: exceeding it yields *LimitError, which carries the
// step count and the partially reduced term for diagnostics. A LimitError is
// terminal for the affected expression but never corrupts state — every
// expression is reduced independently over immutable terms.
package lam

import "fmt"

// MaxSteps is the default contraction bound per expression.
const MaxSteps = 1000

// LimitError reports that a term did not reach normal form within the step
// bound. It is a reduction outcome, not a lexical or syntax error.
type LimitError struct {
	Steps   int  // contractions performed
	Partial Term // best-effort partially reduced term
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("reduction limit reached after %d steps", e.Steps)
}

// Reducer reduces terms to normal form under a step bound.
type Reducer struct {
	// Limit caps the number of contractions; 0 means MaxSteps.
	Limit int
	// Trace, when set, is called after every contraction with the 1-based
	// step number and the new term.
	Trace func(step int, t Term)
}

// Reduce contracts redexes in normal order until t has none left, returning
// the normal form. If the step bound is exceeded while redexes remain, it
// returns the partially reduced term together with a *LimitError.
func (r Reducer) Reduce(t Term) (Term, error) {
	limit := r.Limit
	if limit <= 0 {
		limit = MaxSteps
	}
	for steps := 0; steps < limit; steps++ {
		next, ok := Step(t)
		if !ok {
			return t, nil
		}
		t = next
		if r.Trace != nil {
			r.Trace(steps+1, t)
		}
	}
	if IsNormalForm(t) {
		return t, nil
	}
	return t, &LimitError{Steps: limit, Partial: t}
}

// Reduce reduces t with the default step bound.
func Reduce(t Term) (Term, error) {
	return Reducer{}.Reduce(t)
}

// Step contracts the leftmost-outermost redex of t, returning the new term.
// It reports false when t is already in normal form.
func Step(t Term) (Term, bool) {
	switch t := t.(type) {
	case App:
		if abs, ok := t.Fun.(Abs); ok {
			return Subst(abs.Body, abs.Param, t.Arg), true
		}
		if f, ok := Step(t.Fun); ok {
			return App{Fun: f, Arg: t.Arg}, true
		}
		if a, ok := Step(t.Arg); ok {
			return App{Fun: t.Fun, Arg: a}, true
		}
	case Abs:
		if b, ok := Step(t.Body); ok {
			return Abs{Param: t.Param, Body: b}, true
		}
	}
	return t, false
}

// IsNormalForm reports whether t contains no redex.
func IsNormalForm(t Term) bool {
	switch t := t.(type) {
	case App:
		if _, redex := t.Fun.(Abs); redex {
			return false
		}
		return IsNormalForm(t.Fun) && IsNormalForm(t.Arg)
	case Abs:
		return IsNormalForm(t.Body)
	}
	return true
}
