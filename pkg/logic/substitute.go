package logic

import (
	"github.com/hashicorp/go-set/v3"
)

// Substitute returns a copy of n in which every free variable whose name is
// bound in s is replaced by its value. Replacements are themselves
// substituted, so chained bindings such as {x=y, y=c} resolve fully.
//
// Bound occurrences and quantifier binders are never replaced. When a
// replacement would place a free variable under a quantifier binding the
// same name, that binder is first alpha-renamed to a fresh name.
func Substitute(n Node, s *Substitution) Node {
	if s.Len() == 0 {
		return n.Clone()
	}
	return substitute(n, s)
}

func substitute(n Node, s *Substitution) Node {
	switch t := n.(type) {
	case *Variable:
		if !t.Bound {
			if r := s.Lookup(t.Name); r != nil {
				return substitute(r, s)
			}
		}
		return t.clone()
	case *Application:
		return &Application{Symbol: t.Symbol.Clone(), Args: mapList(t.Args, func(a Node) Node {
			return substitute(a, s)
		})}
	case *Tuple:
		return &Tuple{Elements: mapList(t.Elements, func(e Node) Node {
			return substitute(e, s)
		})}
	case *Set:
		return &Set{Elements: mapList(t.Elements, func(e Node) Node {
			return substitute(e, s)
		})}
	case *Quantifier:
		return substituteQuantifier(t, s)
	case *LogicalUnary:
		return &LogicalUnary{Name: t.Name, Body: substitute(t.Body, s)}
	case *LogicalBinary:
		return &LogicalBinary{Name: t.Name, Left: substitute(t.Left, s), Right: substitute(t.Right, s)}
	}
	return n.Clone()
}

func substituteQuantifier(q *Quantifier, s *Substitution) Node {
	introduced := set.New[string](4)
	for _, name := range FreeVars(q.Body).Slice() {
		if r := s.Lookup(name); r != nil {
			introduced.InsertSet(FreeVars(substitute(r, s)))
		}
	}
	if !introduced.Contains(q.Var.Name) {
		return &Quantifier{Name: q.Name, Var: q.Var.clone(), Body: substitute(q.Body, s)}
	}

	inUse := VarsUsed(q)
	inUse.InsertSet(introduced)
	inUse.InsertSlice(s.Names())
	fresh := freshName(q.Var.Name, inUse)

	v := q.Var.clone()
	v.Name = fresh
	body := renameBound(q.Body, q.Var.Name, fresh)
	return &Quantifier{Name: q.Name, Var: v, Body: substitute(body, s)}
}
