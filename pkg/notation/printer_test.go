package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbhart/proofdroid/pkg/logic"
)

var (
	a = logic.NewMetavar("A")
	b = logic.NewMetavar("B")
	c = logic.NewMetavar("C")
)

func and(l, r logic.Node) logic.Node     { return logic.NewLogicalBinary(logic.Wedge, l, r) }
func or(l, r logic.Node) logic.Node      { return logic.NewLogicalBinary(logic.Vee, l, r) }
func implies(l, r logic.Node) logic.Node { return logic.NewLogicalBinary(logic.Implies, l, r) }
func iff(l, r logic.Node) logic.Node     { return logic.NewLogicalBinary(logic.Iff, l, r) }
func not(n logic.Node) logic.Node        { return logic.NewNegation(n) }

func infix(op string, l, r logic.Node) logic.Node {
	return logic.NewApplication(logic.NewBinaryOp(op), l, r)
}

// TestUnicode_parenthesization tests the precedence and associativity rule.
func TestUnicode_parenthesization(t *testing.T) {
	x, y := logic.NewVariable("x"), logic.NewVariable("y")
	s, u, v := logic.NewVariable("S"), logic.NewVariable("U"), logic.NewVariable("V")
	tests := []struct {
		name string
		node logic.Node
		want string
	}{
		{"left chain", and(and(a, b), c), "A ∧ B ∧ C"},
		{"right nested left-assoc", and(a, and(b, c)), "A ∧ (B ∧ C)"},
		{"right chain right-assoc", iff(a, iff(b, c)), "A ↔ B ↔ C"},
		{"left nested right-assoc", iff(iff(a, b), c), "(A ↔ B) ↔ C"},
		{"non-assoc left", implies(implies(a, b), c), "(A → B) → C"},
		{"non-assoc right", implies(a, implies(b, c)), "A → (B → C)"},
		{"tighter children", implies(and(a, b), or(c, a)), "A ∧ B → C ∨ A"},
		{"looser child", and(implies(a, b), c), "(A → B) ∧ C"},
		{"same precedence other name", and(or(a, b), c), "(A ∨ B) ∧ C"},
		{"iff under implies", implies(iff(a, b), c), "(A ↔ B) → C"},
		{"negated atom", not(logic.NewPredicate("P", x)), "¬P(x)"},
		{"negated conjunction", not(and(a, b)), "¬(A ∧ B)"},
		{"double negation", not(not(a)), "¬(¬A)"},
		{"negation in conjunction", and(not(a), b), "¬A ∧ B"},
		{"equality", and(infix(logic.Equals, x, y), logic.NewPredicate("P", x)), "x = y ∧ P(x)"},
		{"set chain", infix("cup", infix("cup", s, u), v), "S ∪ U ∪ V"},
		{"mixed set ops", infix("cup", s, infix("cap", u, v)), "S ∪ (U ∩ V)"},
		{"membership", infix("in", x, infix("cup", s, u)), "x ∈ S ∪ U"},
		{"function", logic.NewApplication(logic.NewConst("f"), x, logic.NewTuple(x, y)), "f(x, (x, y))"},
		{"set", logic.NewSet(x, y), "{x, y}"},
		{"empty set", logic.NewSet(), "∅"},
		{"infix with wrong arity", logic.NewApplication(logic.NewBinaryOp("cup"), s), "∪(S)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unicode(tt.node))
		})
	}
}

// TestQuantifierRendering tests a quantified implication in all four formats.
func TestQuantifierRendering(t *testing.T) {
	x := logic.NewVariable("x")
	f := logic.NewForall(x, implies(logic.NewPredicate("P", x), logic.NewPredicate("Q", x)))

	assert.Equal(t, "forall x (P(x) -> Q(x))", Identifier(f))
	assert.Equal(t, "∀x (P(x) → Q(x))", Unicode(f))
	assert.Equal(t, `\forall x (P(x) \implies Q(x))`, MathJax(f))
	assert.Equal(t, "∀ x → P x Q x", Polish(f))

	ex := logic.NewExists(x, logic.NewPredicate("P", x))
	assert.Equal(t, "∃x P(x)", Unicode(ex))
}

// TestIdentifier tests the ASCII forms.
func TestIdentifier(t *testing.T) {
	x := logic.NewVariable("x")
	f := iff(not(and(a, b)), or(not(a), not(b)))
	assert.Equal(t, `~(A /\ B) <-> ~A \/ ~B`, Identifier(f))
	assert.Equal(t, "{}", Identifier(logic.NewSet()))
	assert.Equal(t, "x in S", Identifier(infix("in", x, logic.NewVariable("S"))))
}

// TestMathJax tests LaTeX output including set braces.
func TestMathJax(t *testing.T) {
	x := logic.NewVariable("x")
	assert.Equal(t, `\neg P(x) \wedge \{x\} \subseteq S`,
		MathJax(and(not(logic.NewPredicate("P", x)), infix("subseteq", logic.NewSet(x), logic.NewVariable("S")))))
	assert.Equal(t, `\emptyset`, MathJax(logic.NewSet()))
}

// TestPolishNeverParenthesizes tests prefix output.
func TestPolishNeverParenthesizes(t *testing.T) {
	assert.Equal(t, "∧ A ∧ B C", Polish(and(a, and(b, c))))
	assert.Equal(t, "→ → A B C", Polish(implies(implies(a, b), c)))
	assert.Equal(t, "¬ ¬ A", Polish(not(not(a))))
	assert.Equal(t, "∪ S T", Polish(infix("cup", logic.NewVariable("S"), logic.NewVariable("T"))))
}

type bogus struct{}

func (bogus) Kind() logic.Kind  { return logic.Kind(99) }
func (bogus) String() string    { return "bogus" }
func (bogus) Clone() logic.Node { return bogus{} }

func (bogus) Equal(o logic.Node) bool {
	_, ok := o.(bogus)
	return ok
}

// TestFormat_malformed tests that unrepresentable nodes are errors.
func TestFormat_malformed(t *testing.T) {
	p := NewPrinter(nil)
	for _, n := range []logic.Node{
		bogus{},
		and(a, bogus{}),
		nil,
		&logic.Application{Args: []logic.Node{a}},
		&logic.Quantifier{Name: logic.Forall, Body: a},
	} {
		for f := FormatIdentifier; f <= FormatMathJax; f++ {
			_, err := p.Format(n, f)
			assert.ErrorIs(t, err, logic.ErrMalformedNode, "%v in %s", n, f)
		}
	}

	_, err := p.Format(a, Format(7))
	assert.Error(t, err)
}

// TestConvenienceFunctionsPanicOnMalformedInput tests the panicking helpers.
func TestConvenienceFunctionsPanicOnMalformedInput(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, logic.ErrMalformedNode))
	}()
	Unicode(or(a, bogus{}))
}

// TestPrinter_customTable tests rendering with entries added to the default table.
func TestPrinter_customTable(t *testing.T) {
	x := logic.NewVariable("x")
	xor := "⊕"
	table := DefaultTable().Merge(Table{
		"succ": {Associativity: AssocNone, Fixity: FixityPrefix},
		"xor":  {Precedence: 3, Associativity: AssocLeft, Fixity: FixityInfix, Unicode: &xor},
	})
	p := NewPrinter(table)

	got, err := p.Format(logic.NewApplication(logic.NewUnaryOp("succ"), x), FormatUnicode)
	require.NoError(t, err)
	assert.Equal(t, "succ x", got)

	got, err = p.Format(logic.NewLogicalBinary("xor", logic.NewLogicalBinary("xor", a, b), c), FormatUnicode)
	require.NoError(t, err)
	assert.Equal(t, "A ⊕ B ⊕ C", got)

	// Identifier has no entry and falls back to the name.
	got, err = p.Format(logic.NewLogicalBinary("xor", a, b), FormatIdentifier)
	require.NoError(t, err)
	assert.Equal(t, "A xor B", got)
}

// TestPrinter_variableDisplayForms tests that variables render through the
// table like every other leaf.
func TestPrinter_variableDisplayForms(t *testing.T) {
	alpha, mjAlpha := "α", `\alpha`
	p := NewPrinter(DefaultTable().Merge(Table{
		"alpha": {Associativity: AssocNone, Fixity: FixityNone, Unicode: &alpha, MathJax: &mjAlpha},
	}))
	v := logic.NewVariable("alpha")
	f := logic.NewForall(v, logic.NewPredicate("P", v))

	tests := []struct {
		format Format
		want   string
	}{
		{FormatIdentifier, "forall alpha P(alpha)"},
		{FormatUnicode, "∀α P(α)"},
		{FormatPolish, "∀ α P α"},
		{FormatMathJax, `\forall \alpha P(\alpha)`},
	}
	for _, tt := range tests {
		got, err := p.Format(f, tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.format.String())
	}
}

// TestPrinter_colors tests that roles are painted.
func TestPrinter_colors(t *testing.T) {
	bracket := func(s string, _ ...any) string { return "[" + s + "]" }
	p := NewPrinter(nil, WithColors(&Colors{
		Map: map[Role]func(string, ...any) string{
			RoleConnective: bracket,
			RoleQuantifier: bracket,
		},
	}))
	x := logic.NewVariable("x")
	got, err := p.Format(logic.NewForall(x, and(logic.NewPredicate("P", x), not(a))), FormatUnicode)
	require.NoError(t, err)
	assert.Equal(t, "[∀]x (P(x) [∧] [¬]A)", got)
}

func TestFormatNames(t *testing.T) {
	for f := FormatIdentifier; f <= FormatMathJax; f++ {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("latex")
	assert.Error(t, err)
	assert.Equal(t, "Format(9)", Format(9).String())
}
