// subst.go — capture-avoiding substitution with deterministic alpha-renaming.
package lam

import "strconv"

// Subst returns t with every free occurrence of name replaced by value. No
// free variable of value is ever captured by a binder in t: when a binder
// would capture, it is alpha-renamed to a fresh name first. Unchanged
// subterms are returned as-is (structural sharing), which is safe because
// terms are immutable.
func Subst(t Term, name string, value Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == name {
			return value
		}
		return t
	case App:
		return App{
			Fun: Subst(t.Fun, name, value),
			Arg: Subst(t.Arg, name, value),
		}
	case Abs:
		if t.Param == name {
			// name is shadowed; no free occurrence is reachable below.
			return t
		}
		bodyFree := FreeVars(t.Body)
		if _, ok := bodyFree[name]; !ok {
			return t
		}
		valueFree := FreeVars(value)
		if _, hazard := valueFree[t.Param]; !hazard {
			return Abs{Param: t.Param, Body: Subst(t.Body, name, value)}
		}
		// Capture hazard: the binder occurs free in value and name occurs
		// free in the body. Rename the binder before recursing.
		avoid := make(map[string]struct{}, len(bodyFree)+len(valueFree)+1)
		for n := range bodyFree {
			avoid[n] = struct{}{}
		}
		for n := range valueFree {
			avoid[n] = struct{}{}
		}
		avoid[name] = struct{}{}
		fresh := freshName(t.Param, avoid)
		renamed := Subst(t.Body, t.Param, Var{Name: fresh})
		return Abs{Param: fresh, Body: Subst(renamed, name, value)}
	}
	return t
}

// freshName derives a name not present in avoid by appending an increasing
// numeric suffix to base: y, y0, y1, ... The result is a pure function of its
// inputs, so renaming is reproducible across runs.
func freshName(base string, avoid map[string]struct{}) string {
	for i := 0; ; i++ {
		candidate := base + strconv.Itoa(i)
		if _, taken := avoid[candidate]; !taken {
			return candidate
		}
	}
}
