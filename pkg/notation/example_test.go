package notation_test

import (
	"fmt"

	"github.com/wbhart/proofdroid/pkg/logic"
	"github.com/wbhart/proofdroid/pkg/notation"
)

func Example() {
	x := logic.NewVariable("x")
	f := logic.NewForall(x, logic.NewLogicalBinary(logic.Implies,
		logic.NewLogicalBinary(logic.Wedge, logic.NewPredicate("P", x), logic.NewPredicate("Q", x)),
		logic.NewNegation(logic.NewPredicate("R", x))))

	fmt.Println(notation.Identifier(f))
	fmt.Println(notation.Unicode(f))
	fmt.Println(notation.Polish(f))
	fmt.Println(notation.MathJax(f))
	// Output:
	// forall x (P(x) /\ Q(x) -> ~R(x))
	// ∀x (P(x) ∧ Q(x) → ¬R(x))
	// ∀ x → ∧ P x Q x ¬ R x
	// \forall x (P(x) \wedge Q(x) \implies \neg R(x))
}

func ExamplePrinter_Format() {
	p := notation.NewPrinter(nil)
	s := logic.NewVariable("S")
	union := logic.NewApplication(logic.NewBinaryOp("cup"), s, logic.NewSet())

	out, err := p.Format(union, notation.FormatMathJax)
	fmt.Println(out, err)
	// Output:
	// S \cup \emptyset <nil>
}
