package proof

import (
	"fmt"

	"github.com/wbhart/proofdroid/pkg/logic"
)

// ApplyModusPonens applies line i, an implication, to line j and appends
// the consequent. It returns the index of the new line.
func (c *Context) ApplyModusPonens(i, j int, reading logic.IffReading) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	imp, err := c.premise(i)
	if err != nil {
		return -1, err
	}
	fact, err := c.premise(j)
	if err != nil {
		return -1, err
	}
	result, ok := logic.ModusPonens(imp.Formula, fact.Formula, reading)
	if !ok {
		return -1, fmt.Errorf("%w: modus ponens on lines %d and %d", ErrRuleFailed, i, j)
	}
	return c.derive(result, mergeAssumptions(imp.Assumptions, fact.Assumptions),
		Justification{Rule: RuleModusPonens, Args: []int{i, j}}), nil
}

// ApplySpecification strips the outer universal quantifier of line i.
// Unlike logic.UniversalSpecification it rejects any other formula with
// ErrPrecondition.
func (c *Context) ApplySpecification(i int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, err := c.premise(i)
	if err != nil {
		return -1, err
	}
	if !logic.IsForall(l.Formula) {
		return -1, fmt.Errorf("%w: line %d is not universally quantified", ErrPrecondition, i)
	}
	return c.derive(logic.UniversalSpecification(l.Formula), mergeAssumptions(l.Assumptions, nil),
		Justification{Rule: RuleSpecification, Args: []int{i}}), nil
}

// ApplyNegation pushes the negation of line i, which must be a negated
// formula, one level inwards: ¬(A ∧ B) yields ¬A ∨ ¬B and ¬¬A yields A.
func (c *Context) ApplyNegation(i int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, err := c.premise(i)
	if err != nil {
		return -1, err
	}
	neg, ok := l.Formula.(*logic.LogicalUnary)
	if !ok || neg.Name != logic.Neg {
		return -1, fmt.Errorf("%w: line %d is not a negation", ErrPrecondition, i)
	}
	return c.derive(logic.NegateFormula(neg.Body), mergeAssumptions(l.Assumptions, nil),
		Justification{Rule: RuleNegation, Args: []int{i}}), nil
}
