// Package proof keeps the lines of a proof in progress and applies
// inference rules to them.
//
// A Context is an ordered list of lines. Hypotheses and derived lines are
// established facts; target lines are goals that close once a derived line
// matches them structurally. Rule application never modifies an existing
// formula: each step appends a new line justified by the rule name and the
// indices of its premises.
package proof

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/wbhart/proofdroid/pkg/logic"
)

var (
	// ErrLineIndex is returned for a line index outside the context.
	ErrLineIndex = errors.New("line index out of range")

	// ErrRuleFailed is returned when a rule does not apply to its premises.
	ErrRuleFailed = errors.New("rule does not apply")

	// ErrPrecondition is returned when a premise has the wrong shape or
	// status for the rule.
	ErrPrecondition = errors.New("rule precondition violated")
)

// Context holds the lines of one proof. It is safe for concurrent use.
type Context struct {
	mu      sync.RWMutex
	lines   []Line
	logger  *slog.Logger
	workers int
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger for rule applications. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds the goroutines used by searches. Zero or less means
// one per CPU.
func WithWorkers(n int) Option {
	return func(c *Context) { c.workers = n }
}

// NewContext creates an empty proof context.
func NewContext(opts ...Option) *Context {
	c := &Context{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset removes every line.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Len returns the number of lines.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// Append adds a line and returns its index.
func (c *Context) Append(l Line) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendLocked(l)
}

func (c *Context) appendLocked(l Line) int {
	c.lines = append(c.lines, l.copy())
	return len(c.lines) - 1
}

// Line returns a copy of line i.
func (c *Context) Line(i int) (Line, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkIndex(i); err != nil {
		return Line{}, err
	}
	return c.lines[i].copy(), nil
}

// Update replaces line i.
func (c *Context) Update(i int, l Line) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.lines[i] = l.copy()
	return nil
}

// Lines returns a copy of every line.
func (c *Context) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.copy()
	}
	return out
}

// OpenTargets returns the indices of targets not yet proved.
func (c *Context) OpenTargets() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var open []int
	for i, l := range c.lines {
		if l.Target && !l.Proved {
			open = append(open, i)
		}
	}
	return open
}

// Done reports whether every target has been proved.
func (c *Context) Done() bool {
	return len(c.OpenTargets()) == 0
}

func (c *Context) checkIndex(i int) error {
	if i < 0 || i >= len(c.lines) {
		return fmt.Errorf("%w: %d (have %d lines)", ErrLineIndex, i, len(c.lines))
	}
	return nil
}

// Load appends the hypotheses of ps as proved lines, each depending on
// itself, followed by its targets as open goals.
func (c *Context) Load(ps ProblemSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range ps.Hypotheses {
		i := len(c.lines)
		c.appendLocked(Line{
			Formula:       h,
			Assumptions:   []int{i},
			Proved:        true,
			Justification: Justification{Rule: RuleHypothesis},
		})
	}
	for _, t := range ps.Targets {
		c.appendLocked(Line{
			Formula:       t,
			Target:        true,
			Justification: Justification{Rule: RuleTarget},
		})
	}
	c.logger.Debug("proof: problem set loaded",
		slog.String("name", ps.Name),
		slog.Int("hypotheses", len(ps.Hypotheses)),
		slog.Int("targets", len(ps.Targets)))
}

// mergeAssumptions returns the sorted union of two assumption lists.
func mergeAssumptions(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// premise returns line i if it is an established fact.
func (c *Context) premise(i int) (Line, error) {
	if err := c.checkIndex(i); err != nil {
		return Line{}, err
	}
	l := c.lines[i]
	if l.Target {
		return Line{}, fmt.Errorf("%w: line %d is a target", ErrPrecondition, i)
	}
	if l.Formula == nil {
		return Line{}, fmt.Errorf("%w: line %d has no formula", ErrPrecondition, i)
	}
	return l, nil
}

// derive appends a proved line and closes every open target it matches.
func (c *Context) derive(f logic.Node, assumptions []int, j Justification) int {
	idx := c.appendLocked(Line{
		Formula:       f,
		Assumptions:   assumptions,
		Proved:        true,
		Justification: j,
	})
	c.logger.Debug("proof: rule applied",
		slog.String("rule", j.Rule),
		slog.Any("premises", j.Args),
		slog.Int("line", idx),
		slog.String("formula", f.String()))

	for t := range c.lines[:idx] {
		l := &c.lines[t]
		if !l.Target || l.Proved || l.Formula == nil || !l.Formula.Equal(f) {
			continue
		}
		l.Proved = true
		l.Assumptions = slices.Clone(assumptions)
		l.Justification = Justification{Rule: RuleTarget, Args: []int{idx}}
		c.logger.Debug("proof: target closed", slog.Int("target", t), slog.Int("by", idx))
	}
	return idx
}
