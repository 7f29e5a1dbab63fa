package logic

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// IffReading fixes how ModusPonens treats a biconditional premise.
// There is no default: every caller states which reading it wants.
type IffReading int

const (
	// IffReject accepts only implications; a biconditional fails.
	IffReject IffReading = iota + 1

	// IffForward uses A ↔ B as A → B: the consequent is the right side.
	IffForward

	// IffNestedRight takes the consequent from the right side of the right
	// side, failing when the right side is not a binary connective.
	IffNestedRight
)

// String returns the name accepted by ParseIffReading.
func (r IffReading) String() string {
	switch r {
	case IffReject:
		return "reject"
	case IffForward:
		return "forward"
	case IffNestedRight:
		return "nested-right"
	}
	return fmt.Sprintf("IffReading(%d)", int(r))
}

// ParseIffReading maps the names printed by String back to readings.
func ParseIffReading(s string) (IffReading, error) {
	for _, r := range []IffReading{IffReject, IffForward, IffNestedRight} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("ParseIffReading: unknown reading %q", s)
}

// ModusPonens derives the consequent of implication from formula.
//
// The implication is copied, and every variable name used by both premises
// is renamed inside the copy to a name neither uses, so that unrelated
// variables sharing a name are never conflated. The antecedent is then
// unified with formula and the unifier applied to the consequent.
// Neither input is modified.
//
// The boolean result is false when implication is not an implication under
// reading or when the antecedent does not unify with formula.
//
// Example:
//
//	x := NewVariable("x")
//	imp := NewLogicalBinary(Implies, NewPredicate("P", x), NewPredicate("Q", x))
//	q, ok := ModusPonens(imp, NewPredicate("P", NewConst("c")), IffReject)
//	// ok == true, q is Q(c)
func ModusPonens(implication, formula Node, reading IffReading) (Node, bool) {
	if _, _, ok := splitImplication(implication, reading); !ok {
		return nil, false
	}

	impVars := VarsUsed(implication)
	formulaVars := VarsUsed(formula)

	needRename := set.New[string](impVars.Size())
	for _, name := range impVars.Slice() {
		if formulaVars.Contains(name) {
			needRename.Insert(name)
		}
	}
	inUse := impVars.Copy()
	inUse.InsertSet(formulaVars)

	renamed := Rename(implication, needRename, inUse)
	antecedent, consequent, _ := splitImplication(renamed, reading)

	s, ok := Unify(antecedent, formula, nil)
	if !ok {
		return nil, false
	}
	return Substitute(consequent, s), true
}

// splitImplication returns the antecedent and consequent of n under reading.
func splitImplication(n Node, reading IffReading) (Node, Node, bool) {
	b, ok := n.(*LogicalBinary)
	if !ok {
		return nil, nil, false
	}
	switch b.Name {
	case Implies:
		return b.Left, b.Right, true
	case Iff:
		switch reading {
		case IffForward:
			return b.Left, b.Right, true
		case IffNestedRight:
			if r, ok := b.Right.(*LogicalBinary); ok {
				return b.Left, r.Right, true
			}
		}
	}
	return nil, nil, false
}
