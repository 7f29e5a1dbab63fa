package logic

// SetMatching selects how set literals are matched during unification.
type SetMatching int

const (
	// MatchBacktrack runs the two-pass matching and, when an element is left
	// with more than one candidate, completes the matching by backtracking
	// over the remaining elements. It finds a pairing whenever one exists.
	MatchBacktrack SetMatching = iota

	// MatchTwoPass commits only unambiguous pairings: first for each element
	// of the left set, deferring ambiguous ones, then for each unclaimed
	// element of the right set, failing on ambiguity. It is incomplete: a
	// failure does not prove that no pairing exists.
	MatchTwoPass
)

// Unifier computes most-general unifiers. The zero value uses MatchBacktrack.
type Unifier struct {
	Sets SetMatching
}

var defaultUnifier Unifier

// Unify computes a most-general unifier of x and y extending s, using
// backtracking set matching. A nil s is the empty substitution.
// The boolean result is false when no unifier exists; the returned
// substitution is then nil and must not be used.
//
// Example:
//
//	x := NewVariable("x")
//	s, ok := Unify(NewPredicate("P", x), NewPredicate("P", NewConst("c")), nil)
//	// ok == true, s == {x=c}
func Unify(x, y Node, s *Substitution) (*Substitution, bool) {
	return defaultUnifier.Unify(x, y, s)
}

// Unify computes a most-general unifier of x and y extending s.
//
// Decision order, first match wins:
//  1. a metavariable on either side unifies with any node
//  2. a free object variable on either side unifies with terms only
//  3. otherwise both nodes must be of the same kind and agree structurally;
//     quantifiers and operator leaves never unify structurally
func (u Unifier) Unify(x, y Node, s *Substitution) (*Substitution, bool) {
	s = s.orEmpty()

	if v, ok := x.(*Variable); ok && v.Metavar {
		return u.unifyMetavar(v, y, s)
	}
	if v, ok := y.(*Variable); ok && v.Metavar {
		return u.unifyMetavar(v, x, s)
	}
	if v, ok := x.(*Variable); ok && !v.Bound {
		if !IsTerm(y) {
			return nil, false
		}
		return u.unifyVar(v, y, s)
	}
	if v, ok := y.(*Variable); ok && !v.Bound {
		if !IsTerm(x) {
			return nil, false
		}
		return u.unifyVar(v, x, s)
	}

	if x.Kind() != y.Kind() {
		return nil, false
	}

	switch a := x.(type) {
	case *Variable:
		if b, ok := y.(*Variable); ok && a.Name == b.Name {
			return s, true
		}
	case *Const:
		if b, ok := y.(*Const); ok && a.Name == b.Name {
			return s, true
		}
	case *Application:
		b, ok := y.(*Application)
		if ok && OperatorName(a.Symbol) == OperatorName(b.Symbol) && len(a.Args) == len(b.Args) {
			return u.unifyLists(a.Args, b.Args, s)
		}
	case *Tuple:
		if b, ok := y.(*Tuple); ok && len(a.Elements) == len(b.Elements) {
			return u.unifyLists(a.Elements, b.Elements, s)
		}
	case *Set:
		if b, ok := y.(*Set); ok {
			return u.unifySets(a.Elements, b.Elements, s)
		}
	case *LogicalBinary:
		b, ok := y.(*LogicalBinary)
		if !ok || a.Name != b.Name {
			return nil, false
		}
		left, ok := u.Unify(a.Left, b.Left, s)
		if !ok {
			return nil, false
		}
		return u.Unify(a.Right, b.Right, left)
	case *LogicalUnary:
		if b, ok := y.(*LogicalUnary); ok && a.Name == b.Name {
			return u.Unify(a.Body, b.Body, s)
		}
	}
	return nil, false
}

// unifyLists unifies two equal-length lists pairwise, left to right.
func (u Unifier) unifyLists(xs, ys []Node, s *Substitution) (*Substitution, bool) {
	for i := range xs {
		var ok bool
		if s, ok = u.Unify(xs[i], ys[i], s); !ok {
			return nil, false
		}
	}
	return s, true
}

// unifyVar unifies a free object variable with a term.
func (u Unifier) unifyVar(v *Variable, x Node, s *Substitution) (*Substitution, bool) {
	if bound := s.Lookup(v.Name); bound != nil {
		return u.Unify(bound, x, s)
	}
	if xv, ok := x.(*Variable); ok && !xv.Metavar {
		if xv.Name == v.Name {
			// A free x never unifies with a bound x: they are different variables.
			if xv.Bound {
				return nil, false
			}
			return s, true
		}
		if !xv.Bound {
			if bound := s.Lookup(xv.Name); bound != nil {
				return u.Unify(v, bound, s)
			}
		}
	}
	if occurs(v.Name, x, s) {
		return nil, false
	}
	return s.Bind(v.Name, x), true
}

// unifyMetavar unifies a metavariable with any node.
func (u Unifier) unifyMetavar(mv *Variable, x Node, s *Substitution) (*Substitution, bool) {
	if bound := s.Lookup(mv.Name); bound != nil {
		return u.Unify(bound, x, s)
	}
	if xv, ok := x.(*Variable); ok && xv.Metavar && xv.Name == mv.Name {
		return s, true
	}
	// Bindings are keyed by name, so ?A cannot be bound to a free A: the
	// occurs check rejects it.
	if occurs(mv.Name, x, s) {
		return nil, false
	}
	return s.Bind(mv.Name, x), true
}

// occurs reports whether binding name to n would make substitution
// application diverge, following existing bindings of free variables.
func occurs(name string, n Node, s *Substitution) bool {
	switch t := n.(type) {
	case *Variable:
		if t.Bound {
			return false
		}
		if t.Name == name {
			return true
		}
		if bound := s.Lookup(t.Name); bound != nil {
			return occurs(name, bound, s)
		}
	case *Application:
		return occursAny(name, t.Args, s)
	case *Tuple:
		return occursAny(name, t.Elements, s)
	case *Set:
		return occursAny(name, t.Elements, s)
	case *Quantifier:
		return occurs(name, t.Body, s)
	case *LogicalUnary:
		return occurs(name, t.Body, s)
	case *LogicalBinary:
		return occurs(name, t.Left, s) || occurs(name, t.Right, s)
	}
	return false
}

func occursAny(name string, nodes []Node, s *Substitution) bool {
	for _, n := range nodes {
		if occurs(name, n, s) {
			return true
		}
	}
	return false
}

// unifySets matches the elements of two set literals one-to-one.
//
// The first pass commits every element of xs that unifies with exactly one
// unclaimed element of ys, each candidate tried against an independent trial
// substitution; ambiguous elements are deferred. The second pass does the
// same for the unclaimed elements of ys against the unclaimed elements of xs,
// failing when an element has no candidate. An element with several
// candidates fails under MatchTwoPass and hands over to backtracking under
// MatchBacktrack. Resolving unambiguous pairings first leaves the harder
// ones a maximally constrained substitution.
func (u Unifier) unifySets(xs, ys []Node, s *Substitution) (*Substitution, bool) {
	if len(xs) != len(ys) {
		return nil, false
	}
	claimedX := make([]bool, len(xs))
	claimedY := make([]bool, len(ys))

	for i, x := range xs {
		next, j, n := u.candidates(x, ys, claimedY, s)
		if n == 1 {
			s = next
			claimedX[i], claimedY[j] = true, true
		}
	}

	for j, y := range ys {
		if claimedY[j] {
			continue
		}
		next, i, n := u.candidates(y, xs, claimedX, s)
		switch {
		case n == 1:
			s = next
			claimedX[i], claimedY[j] = true, true
		case n > 1 && u.Sets == MatchBacktrack:
			return u.backtrackSets(xs, ys, claimedX, claimedY, s)
		default:
			return nil, false
		}
	}

	for _, c := range claimedX {
		if !c {
			return nil, false
		}
	}
	return s, true
}

// candidates unifies x with every unclaimed element of pool. It returns the
// substitution and index of the first success and the number of successes,
// stopping early once a second one is seen.
func (u Unifier) candidates(x Node, pool []Node, claimed []bool, s *Substitution) (*Substitution, int, int) {
	var (
		first *Substitution
		index = -1
		count int
	)
	for j, y := range pool {
		if claimed[j] {
			continue
		}
		trial, ok := u.Unify(x, y, s)
		if !ok {
			continue
		}
		count++
		if count > 1 {
			break
		}
		first, index = trial, j
	}
	return first, index, count
}

// backtrackSets completes a partial matching by depth-first search over the
// unclaimed elements of ys, trying unclaimed elements of xs in order.
func (u Unifier) backtrackSets(xs, ys []Node, claimedX, claimedY []bool, s *Substitution) (*Substitution, bool) {
	j := -1
	for k, c := range claimedY {
		if !c {
			j = k
			break
		}
	}
	if j < 0 {
		for _, c := range claimedX {
			if !c {
				return nil, false
			}
		}
		return s, true
	}

	claimedY[j] = true
	defer func() { claimedY[j] = false }()
	for i, x := range xs {
		if claimedX[i] {
			continue
		}
		trial, ok := u.Unify(ys[j], x, s)
		if !ok {
			continue
		}
		claimedX[i] = true
		if res, ok := u.backtrackSets(xs, ys, claimedX, claimedY, trial); ok {
			return res, true
		}
		claimedX[i] = false
	}
	return nil, false
}
