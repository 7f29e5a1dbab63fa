package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
)

// TestRename_consistentAcrossOccurrences tests that every occurrence gets the same name.
func TestRename_consistentAcrossOccurrences(t *testing.T) {
	x, y := NewVariable("x"), NewVariable("y")
	f := NewLogicalBinary(Implies, pred("P", x), NewForall(x, pred("Q", x, y)))
	inUse := set.From([]string{"x", "y"})

	got := Rename(f, set.From([]string{"x"}), inUse)

	x0 := NewVariable("x_0")
	want := NewLogicalBinary(Implies, pred("P", x0), NewForall(x0, pred("Q", x0, y)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Rename mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, inUse.Contains("x_0"))
	// The input tree is left alone.
	assert.Equal(t, "x", f.Left.(*Application).Args[0].(*Variable).Name)
}

// TestRename_stripsIndexSuffix tests fresh names built from indexed names.
func TestRename_stripsIndexSuffix(t *testing.T) {
	f := pred("P", NewVariable("x_3"))
	got := Rename(f, set.From([]string{"x_3"}), set.From([]string{"x_3", "x_0"}))
	assert.Equal(t, "P(x_1)", got.String())
}

// TestRename_freshNamesNeverCollide tests fresh names against names in use.
func TestRename_freshNamesNeverCollide(t *testing.T) {
	f := pred("P", NewVariable("x"), NewVariable("x_0"), NewVariable("x"))
	inUse := set.From([]string{"x", "x_0"})
	got := Rename(f, set.From([]string{"x", "x_0"}), inUse)
	assert.Equal(t, "P(x_1, x_2, x_1)", got.String())
	assert.True(t, inUse.Contains("x_1"))
	assert.True(t, inUse.Contains("x_2"))
}

// TestRename_keepsFlags tests that metavariable and bound flags survive renaming.
func TestRename_keepsFlags(t *testing.T) {
	a := NewMetavar("A")
	got := Rename(NewLogicalBinary(Vee, a, NewForall(NewVariable("z"), pred("P", NewVariable("z")))),
		set.From([]string{"A", "z"}), set.From([]string{"A", "z"}))

	b := got.(*LogicalBinary)
	assert.Equal(t, &Variable{Name: "A_0", Metavar: true}, b.Left)
	q := b.Right.(*Quantifier)
	assert.Equal(t, "z_0", q.Var.Name)
	assert.Equal(t, &Variable{Name: "z_0", Bound: true}, q.Body.(*Application).Args[0])
}

func TestRename_leavesOtherNames(t *testing.T) {
	f := pred("P", NewVariable("x"), NewVariable("y"), NewConst("x"))
	got := Rename(f, set.From([]string{"x"}), set.From([]string{"x", "y"}))
	assert.Equal(t, "P(x_0, y, x)", got.String())
}

// TestRename_nilSets tests that missing name sets are treated as empty.
func TestRename_nilSets(t *testing.T) {
	f := pred("P", NewVariable("x"), NewVariable("y"))
	assert.Equal(t, "P(x, y)", Rename(f, nil, nil).String())
	assert.Equal(t, "P(x_0, y)", Rename(f, set.From([]string{"x"}), nil).String())
	assert.Equal(t, "P(x, y)", Rename(f, nil, set.From([]string{"x"})).String())
}
