// term.go — the lambda-calculus term model and its printer.
//
// A Term is an immutable tree with exactly three shapes: Var, Abs, App. All
// operations in this package are exhaustive switches over those three; there
// is no fourth case. Every transformation builds a new tree — unchanged
// subterms may be shared between old and new trees because nothing ever
// mutates a Term in place.
//
// Structural identity (Equal) is decided purely by shape and names.
// Alpha-equivalence is a derived operation (AlphaEqual), never identity.
//
// Printing contract, inverse to the parser up to explicit parenthesization:
//
//	Var("x")        x
//	Abs("x", b)     (\x b')
//	App(f, a)       (f' a')
package lam

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Term is a lambda-calculus term: a Var, an Abs, or an App.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Var is a variable reference.
type Var struct {
	Name string
}

// Abs is an abstraction binding Param in Body.
type Abs struct {
	Param string
	Body  Term
}

// App applies Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func (v Var) String() string { return v.Name }

func (a Abs) String() string { return fmt.Sprintf(`(\%s %s)`, a.Param, a.Body) }

func (a App) String() string { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }

// Equal reports structural identity: same shapes, same names.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.Name == b.Name
	case Abs:
		b, ok := b.(Abs)
		return ok && a.Param == b.Param && Equal(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Fun, b.Fun) && Equal(a.Arg, b.Arg)
	}
	return false
}

// AlphaEqual reports equality up to consistent renaming of bound variables.
func AlphaEqual(a, b Term) bool {
	return alphaEq(a, b, nil, nil)
}

// alphaEq compares a and b with the enclosing binder stacks aEnv and bEnv
// (innermost last). A bound variable matches when both sides resolve to the
// same binder depth; a free variable only matches the same free name.
func alphaEq(a, b Term, aEnv, bEnv []string) bool {
	switch a := a.(type) {
	case Var:
		bv, ok := b.(Var)
		if !ok {
			return false
		}
		ai := lastIndex(aEnv, a.Name)
		bi := lastIndex(bEnv, bv.Name)
		if ai < 0 && bi < 0 {
			return a.Name == bv.Name
		}
		return ai >= 0 && bi >= 0 && len(aEnv)-ai == len(bEnv)-bi
	case Abs:
		bb, ok := b.(Abs)
		if !ok {
			return false
		}
		return alphaEq(a.Body, bb.Body, append(aEnv, a.Param), append(bEnv, bb.Param))
	case App:
		ba, ok := b.(App)
		if !ok {
			return false
		}
		return alphaEq(a.Fun, ba.Fun, aEnv, bEnv) && alphaEq(a.Arg, ba.Arg, aEnv, bEnv)
	}
	return false
}

func lastIndex(env []string, name string) int {
	for i := len(env) - 1; i >= 0; i-- {
		if env[i] == name {
			return i
		}
	}
	return -1
}

// FreeVars returns the set of free variable names in t:
//
//	FV(Var(n))    = {n}
//	FV(Abs(n, b)) = FV(b) \ {n}
//	FV(App(f, a)) = FV(f) ∪ FV(a)
func FreeVars(t Term) map[string]struct{} {
	fv := make(map[string]struct{})
	collectFree(t, nil, fv)
	return fv
}

func collectFree(t Term, bound []string, fv map[string]struct{}) {
	switch t := t.(type) {
	case Var:
		if lastIndex(bound, t.Name) < 0 {
			fv[t.Name] = struct{}{}
		}
	case Abs:
		collectFree(t.Body, append(bound, t.Param), fv)
	case App:
		collectFree(t.Fun, bound, fv)
		collectFree(t.Arg, bound, fv)
	}
}

// FreeVarNames returns the free variable names of t in sorted order.
func FreeVarNames(t Term) []string {
	names := lo.Keys(FreeVars(t))
	slices.Sort(names)
	return names
}
