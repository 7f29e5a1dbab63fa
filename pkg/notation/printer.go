package notation

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/wbhart/proofdroid/pkg/logic"
)

// Format selects an output notation.
type Format int

const (
	// FormatIdentifier is plain ASCII.
	FormatIdentifier Format = iota
	// FormatUnicode uses mathematical symbols.
	FormatUnicode
	// FormatPolish is prefix notation with unicode symbols and no
	// parentheses.
	FormatPolish
	// FormatMathJax is LaTeX source for MathJax.
	FormatMathJax
)

var formatNames = [...]string{
	FormatIdentifier: "identifier",
	FormatUnicode:    "unicode",
	FormatPolish:     "polish",
	FormatMathJax:    "mathjax",
}

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name back to its Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("ParseFormat: unknown format %q", s)
}

// Printer renders nodes using an operator table.
// A Printer is immutable and safe for concurrent use.
type Printer struct {
	table  Table
	colors *Colors
}

// Option configures a Printer.
type Option func(*Printer)

// WithColors styles rendered tokens.
func WithColors(c *Colors) Option {
	return func(p *Printer) { p.colors = c }
}

// NewPrinter creates a Printer over table. A nil table selects the
// default table.
func NewPrinter(table Table, opts ...Option) *Printer {
	if table == nil {
		table = DefaultTable()
	}
	p := &Printer{table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the printer's operator table.
func (p *Printer) Table() Table { return p.table }

// Format renders n in format f. A node the printer cannot represent yields
// an error wrapping logic.ErrMalformedNode.
func (p *Printer) Format(n logic.Node, f Format) (string, error) {
	if f < FormatIdentifier || f > FormatMathJax {
		return "", fmt.Errorf("Format: unknown format %d", int(f))
	}
	r := renderer{Printer: p, format: f}
	return r.render(n)
}

var defaultPrinter = sync.OnceValue(func() *Printer { return NewPrinter(nil) })

// Identifier renders n in ASCII with the default table.
// It panics with an error wrapping logic.ErrMalformedNode on malformed input.
func Identifier(n logic.Node) string { return mustFormat(n, FormatIdentifier) }

// Unicode renders n with mathematical symbols and the default table.
func Unicode(n logic.Node) string { return mustFormat(n, FormatUnicode) }

// Polish renders n in prefix notation with the default table.
func Polish(n logic.Node) string { return mustFormat(n, FormatPolish) }

// MathJax renders n as LaTeX with the default table.
func MathJax(n logic.Node) string { return mustFormat(n, FormatMathJax) }

func mustFormat(n logic.Node, f Format) string {
	s, err := defaultPrinter().Format(n, f)
	if err != nil {
		panic(err)
	}
	return s
}

type side int

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// shape is what the parenthesization rule needs to know about a node.
type shape struct {
	atomic bool
	binary bool
	family logic.Kind
	name   string
	op     Operator
}

type renderer struct {
	*Printer
	format Format
}

func (r *renderer) paint(role Role, s string) string {
	if r.colors == nil {
		return s
	}
	return r.colors.Color(role, s)
}

func (r *renderer) display(name string) string {
	op, _ := r.table.Lookup(name)
	return op.Display(name, r.format)
}

// fixity is the effective fixity of an application: an infix entry
// applied to other than two arguments prints functionally.
func (r *renderer) fixity(a *logic.Application) Fixity {
	op, _ := r.table.Lookup(logic.OperatorName(a))
	if op.Fixity == FixityInfix && len(a.Args) != 2 {
		return FixityFunctional
	}
	return op.Fixity
}

func (r *renderer) shapeOf(n logic.Node) shape {
	switch t := n.(type) {
	case *logic.Variable, *logic.Const, *logic.UnaryOp, *logic.BinaryOp, *logic.Tuple, *logic.Set:
		return shape{atomic: true}
	case *logic.Application:
		switch r.fixity(t) {
		case FixityFunctional:
			return shape{atomic: true}
		case FixityInfix:
			name := logic.OperatorName(t)
			op, _ := r.table.Lookup(name)
			return shape{binary: true, family: logic.KindApplication, name: name, op: op}
		}
	case *logic.LogicalBinary:
		op, _ := r.table.Lookup(t.Name)
		return shape{binary: true, family: logic.KindLogicalBinary, name: t.Name, op: op}
	}
	name := logic.OperatorName(n)
	op, _ := r.table.Lookup(name)
	return shape{name: name, op: op}
}

// needsParens applies the precedence rule to child sitting on side s of
// parent. Lower precedence numbers bind tighter.
func needsParens(child, parent shape, s side) bool {
	switch {
	case child.atomic:
		return false
	case child.op.Precedence < parent.op.Precedence:
		return false
	case child.op.Precedence > parent.op.Precedence:
		return true
	}
	if !child.binary || !parent.binary || child.family != parent.family || child.name != parent.name {
		return true
	}
	if child.op.Associativity != parent.op.Associativity {
		return true
	}
	switch {
	case s == sideLeft && parent.op.Associativity == AssocLeft:
		return false
	case s == sideRight && parent.op.Associativity == AssocRight:
		return false
	}
	return true
}

func (r *renderer) operand(child logic.Node, parent shape, s side) (string, error) {
	out, err := r.render(child)
	if err != nil {
		return "", err
	}
	if r.format == FormatPolish || !needsParens(r.shapeOf(child), parent, s) {
		return out, nil
	}
	return r.paint(RoleBracket, "(") + out + r.paint(RoleBracket, ")"), nil
}

// prefix joins a prefix form to what follows it, separating the two when
// the form ends in a letter.
func (r *renderer) prefix(form string) string {
	if r.format == FormatPolish {
		return form + " "
	}
	last, _ := utf8.DecodeLastRuneInString(form)
	if unicode.IsLetter(last) && last < utf8.RuneSelf {
		return form + " "
	}
	return form
}

func (r *renderer) render(n logic.Node) (string, error) {
	switch t := n.(type) {
	case *logic.Variable:
		return r.paint(RoleVariable, r.display(t.Name)), nil
	case *logic.Const:
		return r.paint(RoleConstant, r.display(t.Name)), nil
	case *logic.UnaryOp:
		return r.paint(RoleSymbol, r.display(t.Name)), nil
	case *logic.BinaryOp:
		return r.paint(RoleSymbol, r.display(t.Name)), nil
	case *logic.Application:
		return r.renderApplication(t)
	case *logic.Tuple:
		elems, err := r.renderList(t.Elements)
		if err != nil {
			return "", err
		}
		return r.paint(RoleBracket, "(") + strings.Join(elems, ", ") + r.paint(RoleBracket, ")"), nil
	case *logic.Set:
		if len(t.Elements) == 0 {
			return r.paint(RoleConstant, r.display("emptyset")), nil
		}
		elems, err := r.renderList(t.Elements)
		if err != nil {
			return "", err
		}
		open, closing := "{", "}"
		if r.format == FormatMathJax {
			open, closing = `\{`, `\}`
		}
		return r.paint(RoleBracket, open) + strings.Join(elems, ", ") + r.paint(RoleBracket, closing), nil
	case *logic.Quantifier:
		if t == nil || t.Var == nil {
			return "", fmt.Errorf("%w: quantifier without a variable", logic.ErrMalformedNode)
		}
		v, err := r.render(t.Var)
		if err != nil {
			return "", err
		}
		body, err := r.operand(t.Body, r.shapeOf(t), sideNone)
		if err != nil {
			return "", err
		}
		return r.paint(RoleQuantifier, r.prefix(r.display(t.Name))) + v + " " + body, nil
	case *logic.LogicalUnary:
		body, err := r.operand(t.Body, r.shapeOf(t), sideNone)
		if err != nil {
			return "", err
		}
		return r.paint(RoleConnective, r.prefix(r.display(t.Name))) + body, nil
	case *logic.LogicalBinary:
		return r.renderInfix(r.shapeOf(t), t.Left, t.Right, RoleConnective)
	case nil:
		return "", fmt.Errorf("%w: nil node", logic.ErrMalformedNode)
	}
	return "", fmt.Errorf("%w: cannot render %T", logic.ErrMalformedNode, n)
}

func (r *renderer) renderInfix(parent shape, left, right logic.Node, role Role) (string, error) {
	form := r.paint(role, r.display(parent.name))
	l, err := r.operand(left, parent, sideLeft)
	if err != nil {
		return "", err
	}
	rr, err := r.operand(right, parent, sideRight)
	if err != nil {
		return "", err
	}
	if r.format == FormatPolish {
		return form + " " + l + " " + rr, nil
	}
	return l + " " + form + " " + rr, nil
}

func (r *renderer) renderApplication(a *logic.Application) (string, error) {
	if a == nil || a.Symbol == nil {
		return "", fmt.Errorf("%w: application without a symbol", logic.ErrMalformedNode)
	}
	switch r.fixity(a) {
	case FixityFunctional:
		sym, err := r.render(a.Symbol)
		if err != nil {
			return "", err
		}
		args, err := r.renderList(a.Args)
		if err != nil {
			return "", err
		}
		if r.format == FormatPolish {
			return strings.Join(append([]string{sym}, args...), " "), nil
		}
		return sym + r.paint(RoleBracket, "(") + strings.Join(args, ", ") + r.paint(RoleBracket, ")"), nil
	case FixityInfix:
		return r.renderInfix(r.shapeOf(a), a.Args[0], a.Args[1], RoleSymbol)
	}
	args, err := r.renderList(a.Args)
	if err != nil {
		return "", err
	}
	op := r.paint(RoleSymbol, r.display(logic.OperatorName(a)))
	return strings.Join(append([]string{op}, args...), " "), nil
}

func (r *renderer) renderList(nodes []logic.Node) ([]string, error) {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		s, err := r.render(n)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
