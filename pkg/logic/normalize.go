package logic

// UniversalSpecification strips an outer universal quantifier. The
// occurrences its binder captured become free in the returned body.
// Any other node is returned unchanged; callers that need to reject such
// input must check IsForall themselves.
func UniversalSpecification(formula Node) Node {
	q, ok := formula.(*Quantifier)
	if !ok || q.Name != Forall {
		return formula
	}
	return unbindVar(q.Var.Name, q.Body)
}

// Specification strips the whole prefix of universal quantifiers, outside
// in, stopping at the first node that is not a universal quantifier.
func Specification(formula Node) Node {
	for IsForall(formula) {
		formula = UniversalSpecification(formula)
	}
	return formula
}

// IsForall reports whether n is a universally quantified formula.
func IsForall(n Node) bool {
	q, ok := n.(*Quantifier)
	return ok && q.Name == Forall
}

// NegateFormula pushes a negation one level through the outermost
// connective using the classical equivalences
//
//	¬∀x φ ↦ ∃x ¬φ
//	¬∃x φ ↦ ∀x ¬φ
//	¬¬φ   ↦ φ
//	¬(A ∧ B) ↦ ¬A ∨ ¬B
//	¬(A ∨ B) ↦ ¬A ∧ ¬B
//
// where the inner negations are themselves pushed one level. Any other
// formula is wrapped in an explicit negation.
func NegateFormula(formula Node) Node {
	switch t := formula.(type) {
	case *Quantifier:
		switch t.Name {
		case Forall:
			return &Quantifier{Name: Exists, Var: t.Var.clone(), Body: NegateFormula(t.Body)}
		case Exists:
			return &Quantifier{Name: Forall, Var: t.Var.clone(), Body: NegateFormula(t.Body)}
		}
	case *LogicalUnary:
		if t.Name == Neg {
			return t.Body.Clone()
		}
	case *LogicalBinary:
		switch t.Name {
		case Wedge:
			return &LogicalBinary{Name: Vee, Left: NegateFormula(t.Left), Right: NegateFormula(t.Right)}
		case Vee:
			return &LogicalBinary{Name: Wedge, Left: NegateFormula(t.Left), Right: NegateFormula(t.Right)}
		}
	}
	return NewNegation(formula.Clone())
}
