// Package logic is the symbolic reasoning core of the proof assistant.
// It represents first-order formulas and terms as trees and provides the
// operations natural-deduction rules are built from:
//   - Unification: computes a most-general unifier of two trees, including
//     order-insensitive matching of set literals
//   - Renaming: alpha-renames variables so that unrelated variables sharing a
//     name are never conflated
//   - Substitution: capture-avoiding replacement of free variables
//   - Rules: modus ponens, universal specification and one-step negation
//
// Every operation is a pure function over its inputs. Trees passed in are
// never modified; results are freshly allocated trees owned by the caller.
// Unification failure is an ordinary result value, not an error.
package logic

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindVariable Kind = iota
	KindConst
	KindApplication
	KindTuple
	KindSet
	KindQuantifier
	KindLogicalUnary
	KindLogicalBinary
	KindUnaryOp
	KindBinaryOp
)

var kindNames = [...]string{
	KindVariable:      "Variable",
	KindConst:         "Const",
	KindApplication:   "Application",
	KindTuple:         "Tuple",
	KindSet:           "Set",
	KindQuantifier:    "Quantifier",
	KindLogicalUnary:  "LogicalUnary",
	KindLogicalBinary: "LogicalBinary",
	KindUnaryOp:       "UnaryOp",
	KindBinaryOp:      "BinaryOp",
}

// String returns the variant name used in the JSON encoding.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a variant name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Operator identifiers used by quantifiers and connectives.
const (
	Forall  = "forall"
	Exists  = "exists"
	Neg     = "neg"
	Wedge   = "wedge"
	Vee     = "vee"
	Implies = "implies"
	Iff     = "iff"
	Equals  = "equals"
)

// Node is any vertex of a formula or term tree.
// Nodes are immutable by contract: operations in this package never modify
// a Node they did not allocate themselves.
type Node interface {
	// Kind reports the variant of the node.
	Kind() Kind

	// String returns a compact, table-independent debug form.
	// Use the notation package for user-facing rendering.
	String() string

	// Equal reports structural equality. Set elements are compared
	// without regard to order.
	Equal(other Node) bool

	// Clone returns a deep copy of the node.
	Clone() Node
}

// Variable is a term-level variable.
//
// Metavar marks an inference-rule placeholder that unifies with any node.
// Bound is true iff the variable sits inside the scope of a quantifier that
// binds its name; metavariables are never bound.
type Variable struct {
	Name    string
	Metavar bool
	Bound   bool
}

// NewVariable creates a free object-level variable.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

// NewMetavar creates a metavariable placeholder.
func NewMetavar(name string) *Variable {
	return &Variable{Name: name, Metavar: true}
}

// Kind returns KindVariable.
func (v *Variable) Kind() Kind { return KindVariable }

// String implements Node.
func (v *Variable) String() string {
	if v.Metavar {
		return "?" + v.Name
	}
	return v.Name
}

// Equal implements Node.
func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && *v == *o
}

// Clone returns a deep copy.
func (v *Variable) Clone() Node {
	c := *v
	return &c
}

func (v *Variable) clone() *Variable {
	c := *v
	return &c
}

// Const is a nullary term constant.
type Const struct {
	Name string
}

// NewConst creates a constant.
func NewConst(name string) *Const { return &Const{Name: name} }

// Kind returns KindConst.
func (c *Const) Kind() Kind { return KindConst }

// String implements Node.
func (c *Const) String() string { return c.Name }

// Equal implements Node.
func (c *Const) Equal(other Node) bool {
	o, ok := other.(*Const)
	return ok && c.Name == o.Name
}

// Clone returns a deep copy.
func (c *Const) Clone() Node { return &Const{Name: c.Name} }

// UnaryOp names a unary function or predicate symbol.
type UnaryOp struct {
	Name string
}

// NewUnaryOp creates a unary operator leaf.
func NewUnaryOp(name string) *UnaryOp { return &UnaryOp{Name: name} }

// Kind returns KindUnaryOp.
func (u *UnaryOp) Kind() Kind { return KindUnaryOp }

// String implements Node.
func (u *UnaryOp) String() string { return u.Name }

// Equal implements Node.
func (u *UnaryOp) Equal(other Node) bool {
	o, ok := other.(*UnaryOp)
	return ok && u.Name == o.Name
}

// Clone returns a deep copy.
func (u *UnaryOp) Clone() Node { return &UnaryOp{Name: u.Name} }

// BinaryOp names a binary function or predicate symbol.
type BinaryOp struct {
	Name string
}

// NewBinaryOp creates a binary operator leaf.
func NewBinaryOp(name string) *BinaryOp { return &BinaryOp{Name: name} }

// Kind returns KindBinaryOp.
func (b *BinaryOp) Kind() Kind { return KindBinaryOp }

// String implements Node.
func (b *BinaryOp) String() string { return b.Name }

// Equal implements Node.
func (b *BinaryOp) Equal(other Node) bool {
	o, ok := other.(*BinaryOp)
	return ok && b.Name == o.Name
}

// Clone returns a deep copy.
func (b *BinaryOp) Clone() Node { return &BinaryOp{Name: b.Name} }

// Application applies a function or predicate symbol to arguments.
// Symbol carries the operator identity used for precedence lookup.
type Application struct {
	Symbol Node
	Args   []Node
}

// NewApplication creates an application of symbol to args.
// The symbol is usually a Const, UnaryOp or BinaryOp.
func NewApplication(symbol Node, args ...Node) *Application {
	return &Application{Symbol: symbol, Args: args}
}

// NewPredicate is shorthand for applying a functional symbol by name.
func NewPredicate(name string, args ...Node) *Application {
	return NewApplication(NewConst(name), args...)
}

// Kind returns KindApplication.
func (a *Application) Kind() Kind { return KindApplication }

// String implements Node.
func (a *Application) String() string {
	return fmt.Sprintf("%s(%s)", a.Symbol.String(), joinNodes(a.Args, ", "))
}

// Equal implements Node.
func (a *Application) Equal(other Node) bool {
	o, ok := other.(*Application)
	if !ok || !a.Symbol.Equal(o.Symbol) {
		return false
	}
	return equalLists(a.Args, o.Args)
}

// Clone returns a deep copy.
func (a *Application) Clone() Node {
	return &Application{Symbol: a.Symbol.Clone(), Args: cloneList(a.Args)}
}

// Tuple is an ordered, fixed-arity term tuple.
type Tuple struct {
	Elements []Node
}

// NewTuple creates a tuple.
func NewTuple(elems ...Node) *Tuple { return &Tuple{Elements: elems} }

// Kind returns KindTuple.
func (t *Tuple) Kind() Kind { return KindTuple }

// String implements Node.
func (t *Tuple) String() string { return "(" + joinNodes(t.Elements, ", ") + ")" }

// Equal implements Node.
func (t *Tuple) Equal(other Node) bool {
	o, ok := other.(*Tuple)
	return ok && equalLists(t.Elements, o.Elements)
}

// Clone returns a deep copy.
func (t *Tuple) Clone() Node { return &Tuple{Elements: cloneList(t.Elements)} }

// Set is a set literal. Storage order carries no meaning.
type Set struct {
	Elements []Node
}

// NewSet creates a set literal.
func NewSet(elems ...Node) *Set { return &Set{Elements: elems} }

// Kind returns KindSet.
func (s *Set) Kind() Kind { return KindSet }

// String implements Node.
func (s *Set) String() string { return "{" + joinNodes(s.Elements, ", ") + "}" }

// Equal compares the two sets as multisets of structurally equal elements.
func (s *Set) Equal(other Node) bool {
	o, ok := other.(*Set)
	if !ok || len(s.Elements) != len(o.Elements) {
		return false
	}
	used := make([]bool, len(o.Elements))
	for _, e := range s.Elements {
		found := false
		for j, f := range o.Elements {
			if !used[j] && e.Equal(f) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s *Set) Clone() Node { return &Set{Elements: cloneList(s.Elements)} }

// Quantifier binds Var within Body. Name is Forall or Exists.
type Quantifier struct {
	Name string
	Var  *Variable
	Body Node
}

// NewQuantifier creates a quantified formula and marks every occurrence of
// the binder's name inside body as bound.
func NewQuantifier(name string, v *Variable, body Node) *Quantifier {
	return &Quantifier{Name: name, Var: v.clone(), Body: BindVar(v.Name, body)}
}

// NewForall is shorthand for NewQuantifier(Forall, v, body).
func NewForall(v *Variable, body Node) *Quantifier { return NewQuantifier(Forall, v, body) }

// NewExists is shorthand for NewQuantifier(Exists, v, body).
func NewExists(v *Variable, body Node) *Quantifier { return NewQuantifier(Exists, v, body) }

// Kind returns KindQuantifier.
func (q *Quantifier) Kind() Kind { return KindQuantifier }

// String implements Node.
func (q *Quantifier) String() string {
	return fmt.Sprintf("(%s %s %s)", q.Name, q.Var.String(), q.Body.String())
}

// Equal implements Node.
func (q *Quantifier) Equal(other Node) bool {
	o, ok := other.(*Quantifier)
	return ok && q.Name == o.Name && q.Var.Equal(o.Var) && q.Body.Equal(o.Body)
}

// Clone returns a deep copy.
func (q *Quantifier) Clone() Node {
	return &Quantifier{Name: q.Name, Var: q.Var.clone(), Body: q.Body.Clone()}
}

// LogicalUnary is a unary connective; the only one in use is Neg.
type LogicalUnary struct {
	Name string
	Body Node
}

// NewLogicalUnary creates a unary connective node.
func NewLogicalUnary(name string, body Node) *LogicalUnary {
	return &LogicalUnary{Name: name, Body: body}
}

// NewNegation wraps body in a negation.
func NewNegation(body Node) *LogicalUnary { return NewLogicalUnary(Neg, body) }

// Kind returns KindLogicalUnary.
func (u *LogicalUnary) Kind() Kind { return KindLogicalUnary }

// String implements Node.
func (u *LogicalUnary) String() string {
	return fmt.Sprintf("(%s %s)", u.Name, u.Body.String())
}

// Equal implements Node.
func (u *LogicalUnary) Equal(other Node) bool {
	o, ok := other.(*LogicalUnary)
	return ok && u.Name == o.Name && u.Body.Equal(o.Body)
}

// Clone returns a deep copy.
func (u *LogicalUnary) Clone() Node {
	return &LogicalUnary{Name: u.Name, Body: u.Body.Clone()}
}

// LogicalBinary is a binary connective: Wedge, Vee, Implies, Iff or Equals.
type LogicalBinary struct {
	Name  string
	Left  Node
	Right Node
}

// NewLogicalBinary creates a binary connective node.
func NewLogicalBinary(name string, left, right Node) *LogicalBinary {
	return &LogicalBinary{Name: name, Left: left, Right: right}
}

// Kind returns KindLogicalBinary.
func (b *LogicalBinary) Kind() Kind { return KindLogicalBinary }

// String implements Node.
func (b *LogicalBinary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Name, b.Left.String(), b.Right.String())
}

// Equal implements Node.
func (b *LogicalBinary) Equal(other Node) bool {
	o, ok := other.(*LogicalBinary)
	return ok && b.Name == o.Name && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// Clone returns a deep copy.
func (b *LogicalBinary) Clone() Node {
	return &LogicalBinary{Name: b.Name, Left: b.Left.Clone(), Right: b.Right.Clone()}
}

// OperatorName returns the identifier a node is looked up by in an operator
// table: the connective or quantifier name, an application's symbol name, or
// the literal name of a leaf. Tuples and sets have none.
func OperatorName(n Node) string {
	switch t := n.(type) {
	case *Variable:
		return t.Name
	case *Const:
		return t.Name
	case *UnaryOp:
		return t.Name
	case *BinaryOp:
		return t.Name
	case *Application:
		return OperatorName(t.Symbol)
	case *Quantifier:
		return t.Name
	case *LogicalUnary:
		return t.Name
	case *LogicalBinary:
		return t.Name
	}
	return ""
}

func joinNodes(nodes []Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}

func equalLists(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func cloneList(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
