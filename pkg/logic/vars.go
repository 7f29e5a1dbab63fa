package logic

import (
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// IsTerm reports whether n belongs to the term sublanguage: a Variable,
// Const, Application, Tuple or Set. Unification uses it to keep a
// term-position variable from being bound to a whole formula.
func IsTerm(n Node) bool {
	switch n.(type) {
	case *Variable, *Const, *Application, *Tuple, *Set:
		return true
	}
	return false
}

// VarsUsed returns the names of all variables occurring anywhere in n,
// free or bound, including quantifier binders.
func VarsUsed(n Node) *set.Set[string] {
	vars := set.New[string](8)
	collectVarNames(n, vars)
	return vars
}

func collectVarNames(n Node, acc *set.Set[string]) {
	switch t := n.(type) {
	case *Variable:
		acc.Insert(t.Name)
	case *Application:
		for _, a := range t.Args {
			collectVarNames(a, acc)
		}
	case *Tuple:
		for _, e := range t.Elements {
			collectVarNames(e, acc)
		}
	case *Set:
		for _, e := range t.Elements {
			collectVarNames(e, acc)
		}
	case *Quantifier:
		acc.Insert(t.Var.Name)
		collectVarNames(t.Body, acc)
	case *LogicalUnary:
		collectVarNames(t.Body, acc)
	case *LogicalBinary:
		collectVarNames(t.Left, acc)
		collectVarNames(t.Right, acc)
	}
}

// FreeVars returns the names of variables occurring free in n, judged by
// the Bound flag each occurrence carries.
func FreeVars(n Node) *set.Set[string] {
	vars := set.New[string](8)
	collectFree(n, vars)
	return vars
}

func collectFree(n Node, acc *set.Set[string]) {
	switch t := n.(type) {
	case *Variable:
		if !t.Bound {
			acc.Insert(t.Name)
		}
	case *Application:
		for _, a := range t.Args {
			collectFree(a, acc)
		}
	case *Tuple:
		for _, e := range t.Elements {
			collectFree(e, acc)
		}
	case *Set:
		for _, e := range t.Elements {
			collectFree(e, acc)
		}
	case *Quantifier:
		collectFree(t.Body, acc)
	case *LogicalUnary:
		collectFree(t.Body, acc)
	case *LogicalBinary:
		collectFree(t.Left, acc)
		collectFree(t.Right, acc)
	}
}

// SortedNames returns the members of a name set in ascending order.
func SortedNames(s *set.Set[string]) []string {
	names := s.Slice()
	slices.Sort(names)
	return names
}

// BindVar returns a copy of n in which every free occurrence of name is
// marked bound. Metavariables are left untouched.
func BindVar(name string, n Node) Node {
	return setBound(n, name, true)
}

// unbindVar is the inverse of BindVar. It does not descend into a
// quantifier that re-binds name, so shadowed occurrences stay bound.
func unbindVar(name string, n Node) Node {
	return setBound(n, name, false)
}

func setBound(n Node, name string, bound bool) Node {
	switch t := n.(type) {
	case *Variable:
		if t.Name == name && !t.Metavar {
			c := t.clone()
			c.Bound = bound
			return c
		}
		return t.clone()
	case *Application:
		return &Application{Symbol: t.Symbol.Clone(), Args: mapList(t.Args, func(a Node) Node {
			return setBound(a, name, bound)
		})}
	case *Tuple:
		return &Tuple{Elements: mapList(t.Elements, func(e Node) Node {
			return setBound(e, name, bound)
		})}
	case *Set:
		return &Set{Elements: mapList(t.Elements, func(e Node) Node {
			return setBound(e, name, bound)
		})}
	case *Quantifier:
		if !bound && t.Var.Name == name {
			return t.Clone()
		}
		return &Quantifier{Name: t.Name, Var: t.Var.clone(), Body: setBound(t.Body, name, bound)}
	case *LogicalUnary:
		return &LogicalUnary{Name: t.Name, Body: setBound(t.Body, name, bound)}
	case *LogicalBinary:
		return &LogicalBinary{Name: t.Name, Left: setBound(t.Left, name, bound), Right: setBound(t.Right, name, bound)}
	}
	return n.Clone()
}

// mapList applies f to every node, preserving a nil slice as nil.
func mapList(nodes []Node, f func(Node) Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = f(n)
	}
	return out
}
