// Package notation renders logic nodes as text.
//
// Rendering is driven by an operator Table that gives each operator name a
// precedence, an associativity, a fixity and one display form per output
// Format. The default table is embedded in the binary and can be overlaid
// with user tables loaded from YAML.
package notation

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed operators.yaml
var defaultOperators []byte

// ErrInvalidTable reports an operator table that failed validation.
var ErrInvalidTable = errors.New("invalid operator table")

// Associativity says which way a chain of equal operators groups.
type Associativity string

const (
	AssocNone  Associativity = "none"
	AssocLeft  Associativity = "left"
	AssocRight Associativity = "right"
)

// Fixity says where an operator sits relative to its operands.
type Fixity string

const (
	// FixityFunctional renders symbol(args, ...). Names missing from the
	// table are functional.
	FixityFunctional Fixity = "functional"
	FixityInfix      Fixity = "infix"
	FixityPrefix     Fixity = "prefix"
	FixityNone       Fixity = "none"
)

// Operator describes how one operator name is printed.
// A nil display form falls back to the operator's name.
type Operator struct {
	Precedence    int           `yaml:"precedence"`
	Associativity Associativity `yaml:"associativity"`
	Fixity        Fixity        `yaml:"fixity"`
	Identifier    *string       `yaml:"identifier,omitempty"`
	Unicode       *string       `yaml:"unicode,omitempty"`
	Polish        *string       `yaml:"polish,omitempty"`
	MathJax       *string       `yaml:"mathjax,omitempty"`
}

// Display returns the form of the operator called name in format f.
// Polish uses the unicode form unless it has its own.
func (o Operator) Display(name string, f Format) string {
	var form *string
	switch f {
	case FormatIdentifier:
		form = o.Identifier
	case FormatUnicode:
		form = o.Unicode
	case FormatPolish:
		form = o.Polish
		if form == nil {
			form = o.Unicode
		}
	case FormatMathJax:
		form = o.MathJax
	}
	if form == nil {
		return name
	}
	return *form
}

// Validate checks the enumerated fields.
func (o Operator) Validate() error {
	switch o.Associativity {
	case AssocNone, AssocLeft, AssocRight:
	default:
		return fmt.Errorf("unknown associativity %q", o.Associativity)
	}
	switch o.Fixity {
	case FixityFunctional, FixityInfix, FixityPrefix, FixityNone:
	default:
		return fmt.Errorf("unknown fixity %q", o.Fixity)
	}
	if o.Precedence < 0 {
		return fmt.Errorf("negative precedence %d", o.Precedence)
	}
	return nil
}

// withDefaults fills in an omitted associativity or fixity.
func (o Operator) withDefaults() Operator {
	if o.Associativity == "" {
		o.Associativity = AssocNone
	}
	if o.Fixity == "" {
		o.Fixity = FixityFunctional
	}
	return o
}

// functional is the entry assumed for names missing from a table.
var functional = Operator{Associativity: AssocNone, Fixity: FixityFunctional}

// Table maps operator names to their entries.
type Table map[string]Operator

// Lookup returns the entry for name and whether the table has one.
// A missing name yields a functional entry with precedence 0.
func (t Table) Lookup(name string) (Operator, bool) {
	op, ok := t[name]
	if !ok {
		return functional, false
	}
	return op, true
}

// Names returns the operator names in ascending order.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Validate checks every entry, reporting the first bad one in name order.
func (t Table) Validate() error {
	for _, name := range t.Names() {
		if err := t[name].Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTable, name, err)
		}
	}
	return nil
}

// Merge returns a new table holding the entries of t overlaid by those of
// other. Neither input is modified.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	maps.Copy(out, t)
	maps.Copy(out, other)
	return out
}

// LoadTable decodes and validates a YAML operator table. Unknown keys are
// rejected; an entry without associativity is non-associative and one
// without fixity is functional.
func LoadTable(r io.Reader) (Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("LoadTable: %w", err)
	}
	if t == nil {
		t = Table{}
	}
	for name, op := range t {
		t[name] = op.withDefaults()
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("LoadTable: %w", err)
	}
	return t, nil
}

var defaultTable = sync.OnceValue(func() Table {
	var t Table
	if err := yaml.Unmarshal(defaultOperators, &t); err != nil {
		panic(fmt.Sprintf("notation: embedded operator table: %v", err))
	}
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("notation: embedded operator table: %v", err))
	}
	return t
})

// DefaultTable returns a copy of the embedded operator table.
func DefaultTable() Table {
	return maps.Clone(defaultTable())
}
