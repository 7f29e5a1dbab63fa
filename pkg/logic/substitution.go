package logic

import (
	"maps"
	"slices"
	"strings"
)

// Substitution maps variable names to replacement nodes.
//
// A Substitution is never modified after construction: Bind returns a new
// Substitution sharing nothing mutable with its receiver, so a caller may
// keep trying alternatives against the same starting point. The nil
// *Substitution is a valid empty substitution.
type Substitution struct {
	bindings map[string]Node
}

// NewSubstitution creates an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: map[string]Node{}}
}

// Lookup returns the node bound to name, or nil if name is unbound.
func (s *Substitution) Lookup(name string) Node {
	if s == nil {
		return nil
	}
	return s.bindings[name]
}

// Has reports whether name is bound.
func (s *Substitution) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.bindings[name]
	return ok
}

// Bind returns a new substitution with name bound to term.
// Binding a name to a free variable of the same name returns the receiver
// unchanged; a bound occurrence of the name is a real binding.
func (s *Substitution) Bind(name string, term Node) *Substitution {
	if v, ok := term.(*Variable); ok && v.Name == name && !v.Bound {
		return s.orEmpty()
	}
	next := &Substitution{bindings: make(map[string]Node, s.Len()+1)}
	if s != nil {
		maps.Copy(next.bindings, s.bindings)
	}
	next.bindings[name] = term
	return next
}

// Len returns the number of bindings.
func (s *Substitution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

// Names returns the bound names in ascending order.
func (s *Substitution) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.bindings))
}

// String returns a deterministic rendering such as {x=c, y=f(x)}.
func (s *Substitution) String() string {
	names := s.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + s.bindings[name].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Substitution) orEmpty() *Substitution {
	if s == nil {
		return NewSubstitution()
	}
	return s
}
