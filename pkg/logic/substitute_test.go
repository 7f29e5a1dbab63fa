package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubstitute_emptyIsIdentity tests substitution with no bindings.
func TestSubstitute_emptyIsIdentity(t *testing.T) {
	x := NewVariable("x")
	f := NewForall(x, NewLogicalBinary(Wedge, pred("P", x), pred("Q", NewSet(NewVariable("y")))))

	for _, s := range []*Substitution{nil, NewSubstitution()} {
		got := Substitute(f, s)
		if diff := cmp.Diff(Node(f), got); diff != "" {
			t.Fatalf("Substitute mismatch (-want +got):\n%s", diff)
		}
		assert.NotSame(t, f, got)
	}
}

// TestSubstitute_chainedBindings tests that replacements are substituted in turn.
func TestSubstitute_chainedBindings(t *testing.T) {
	x, y, c := NewVariable("x"), NewVariable("y"), NewConst("c")
	s := NewSubstitution().Bind("x", fn("f", y)).Bind("y", c)
	got := Substitute(pred("P", x, NewTuple(y)), s)
	assert.Equal(t, "P(f(c), (c))", got.String())
}

// TestSubstitute_boundOccurrencesUntouched tests that bound variables are not replaced.
func TestSubstitute_boundOccurrencesUntouched(t *testing.T) {
	x, c := NewVariable("x"), NewConst("c")
	f := NewLogicalBinary(Wedge, NewForall(x, pred("P", x)), pred("Q", x))
	got := Substitute(f, NewSubstitution().Bind("x", c))

	want := NewLogicalBinary(Wedge, NewForall(x, pred("P", x)), pred("Q", c))
	if diff := cmp.Diff(Node(want), got); diff != "" {
		t.Fatalf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

// TestSubstitute_avoidsCapture tests binder renaming under a quantifier.
func TestSubstitute_avoidsCapture(t *testing.T) {
	x, y := NewVariable("x"), NewVariable("y")
	f := NewForall(y, pred("P", x, y))
	got := Substitute(f, NewSubstitution().Bind("x", y))

	q, ok := got.(*Quantifier)
	require.True(t, ok)
	assert.Equal(t, "y_0", q.Var.Name)
	args := q.Body.(*Application).Args
	assert.Equal(t, &Variable{Name: "y"}, args[0])
	assert.Equal(t, &Variable{Name: "y_0", Bound: true}, args[1])

	// Stripping the quantifier must not conflate the two variables.
	assert.Equal(t, "P(y, y_0)", UniversalSpecification(got).String())
}

func TestSubstitute_metavariables(t *testing.T) {
	c := NewConst("c")
	a := NewMetavar("A")
	s := NewSubstitution().Bind("A", NewNegation(pred("P", c)))
	got := Substitute(NewLogicalBinary(Vee, a, NewMetavar("B")), s)
	assert.Equal(t, "(vee (neg P(c)) ?B)", got.String())
}

// TestSubstitute_doesNotMutateInput tests that the input tree is unchanged.
func TestSubstitute_doesNotMutateInput(t *testing.T) {
	x := NewVariable("x")
	f := pred("P", x)
	_ = Substitute(f, NewSubstitution().Bind("x", NewConst("c")))
	assert.Equal(t, "P(x)", f.String())
}

// TestSubstitution_bindIsCopyOnWrite tests that Bind leaves its receiver alone.
func TestSubstitution_bindIsCopyOnWrite(t *testing.T) {
	c, d := NewConst("c"), NewConst("d")
	s1 := NewSubstitution().Bind("x", c)
	s2 := s1.Bind("y", d)

	assert.Equal(t, 1, s1.Len())
	assert.False(t, s1.Has("y"))
	assert.Equal(t, []string{"x", "y"}, s2.Names())
	assert.Equal(t, "{x=c, y=d}", s2.String())

	// Self-binding adds nothing, but a bound occurrence of the name does.
	assert.Same(t, s1, s1.Bind("x", NewVariable("x")))
	assert.Same(t, s1, s1.Bind("x", NewMetavar("x")))
	bound := NewSubstitution().Bind("y", &Variable{Name: "y", Bound: true})
	assert.Equal(t, "{y=y}", bound.String())

	var empty *Substitution
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Lookup("x"))
	assert.Equal(t, "{}", empty.String())
}
