package logic

import (
	"regexp"
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

var indexSuffix = regexp.MustCompile(`^(.*)_(\d+)$`)

// Rename returns a copy of n in which every occurrence of each name in
// needRename, free or bound and including quantifier binders, is replaced
// by a fresh name.
//
// A fresh name is built by stripping a trailing _<integer> suffix from the
// original and probing base_0, base_1, ... until a candidate is neither in
// inUse nor already chosen during this call. Chosen names are inserted into
// inUse, and every occurrence of the same original name receives the same
// replacement. A nil needRename renames nothing; a nil inUse is treated as
// empty and the chosen names are not reported.
func Rename(n Node, needRename, inUse *set.Set[string]) Node {
	if needRename == nil {
		needRename = set.New[string](0)
	}
	if inUse == nil {
		inUse = set.New[string](needRename.Size())
	}
	r := &renamer{need: needRename, inUse: inUse, chosen: map[string]string{}}
	return r.rename(n)
}

type renamer struct {
	need   *set.Set[string]
	inUse  *set.Set[string]
	chosen map[string]string
}

func (r *renamer) newName(name string) string {
	if fresh, ok := r.chosen[name]; ok {
		return fresh
	}
	fresh := freshName(name, r.inUse)
	r.chosen[name] = fresh
	r.inUse.Insert(fresh)
	return fresh
}

func (r *renamer) renameVar(v *Variable) *Variable {
	c := v.clone()
	if r.need.Contains(v.Name) {
		c.Name = r.newName(v.Name)
	}
	return c
}

func (r *renamer) rename(n Node) Node {
	switch t := n.(type) {
	case *Variable:
		return r.renameVar(t)
	case *Application:
		return &Application{Symbol: t.Symbol.Clone(), Args: mapList(t.Args, r.rename)}
	case *Tuple:
		return &Tuple{Elements: mapList(t.Elements, r.rename)}
	case *Set:
		return &Set{Elements: mapList(t.Elements, r.rename)}
	case *Quantifier:
		return &Quantifier{Name: t.Name, Var: r.renameVar(t.Var), Body: r.rename(t.Body)}
	case *LogicalUnary:
		return &LogicalUnary{Name: t.Name, Body: r.rename(t.Body)}
	case *LogicalBinary:
		return &LogicalBinary{Name: t.Name, Left: r.rename(t.Left), Right: r.rename(t.Right)}
	}
	return n.Clone()
}

// freshName returns the first of base_0, base_1, ... absent from inUse.
func freshName(name string, inUse *set.Set[string]) string {
	base := name
	if m := indexSuffix.FindStringSubmatch(name); m != nil {
		base = m[1]
	}
	for i := 0; ; i++ {
		candidate := base + "_" + strconv.Itoa(i)
		if !inUse.Contains(candidate) {
			return candidate
		}
	}
}

// renameBound renames the occurrences bound by a binder called oldName to
// newName. It expects the body of that binder and leaves alone any inner
// quantifier that re-binds oldName.
func renameBound(n Node, oldName, newName string) Node {
	switch t := n.(type) {
	case *Variable:
		c := t.clone()
		if t.Bound && t.Name == oldName {
			c.Name = newName
		}
		return c
	case *Application:
		return &Application{Symbol: t.Symbol.Clone(), Args: mapList(t.Args, func(a Node) Node {
			return renameBound(a, oldName, newName)
		})}
	case *Tuple:
		return &Tuple{Elements: mapList(t.Elements, func(e Node) Node {
			return renameBound(e, oldName, newName)
		})}
	case *Set:
		return &Set{Elements: mapList(t.Elements, func(e Node) Node {
			return renameBound(e, oldName, newName)
		})}
	case *Quantifier:
		if t.Var.Name == oldName {
			return t.Clone()
		}
		return &Quantifier{Name: t.Name, Var: t.Var.clone(), Body: renameBound(t.Body, oldName, newName)}
	case *LogicalUnary:
		return &LogicalUnary{Name: t.Name, Body: renameBound(t.Body, oldName, newName)}
	case *LogicalBinary:
		return &LogicalBinary{
			Name:  t.Name,
			Left:  renameBound(t.Left, oldName, newName),
			Right: renameBound(t.Right, oldName, newName),
		}
	}
	return n.Clone()
}
