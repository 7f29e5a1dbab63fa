package proof

import (
	"encoding/json"
	"slices"

	"github.com/wbhart/proofdroid/pkg/logic"
)

// Rule names recorded in justifications.
const (
	RuleHypothesis    = "hypothesis"
	RuleTarget        = "target"
	RuleModusPonens   = "modus-ponens"
	RuleSpecification = "specification"
	RuleNegation      = "negation"
)

// Justification records how a line was obtained: the rule name and the
// indices of the lines it was applied to. A closed target records the
// line that proved it.
type Justification struct {
	Rule string `json:"rule"`
	Args []int  `json:"args,omitempty"`
}

// Line is one entry of a proof.
type Line struct {
	Formula logic.Node
	// Target marks a goal rather than an established fact.
	Target bool
	// Assumptions lists, in ascending order, the hypothesis lines this
	// line depends on.
	Assumptions   []int
	Proved        bool
	Justification Justification
}

func (l Line) copy() Line {
	l.Assumptions = slices.Clone(l.Assumptions)
	l.Justification.Args = slices.Clone(l.Justification.Args)
	return l
}

type lineJSON struct {
	Formula       logic.JSONNode `json:"formula"`
	Target        bool           `json:"target"`
	Assumptions   []int          `json:"assumptions"`
	Proved        bool           `json:"proved"`
	Justification Justification  `json:"justification"`
}

func (l Line) MarshalJSON() ([]byte, error) {
	assumptions := l.Assumptions
	if assumptions == nil {
		assumptions = []int{}
	}
	return json.Marshal(lineJSON{
		Formula:       logic.JSONNode{Node: l.Formula},
		Target:        l.Target,
		Assumptions:   assumptions,
		Proved:        l.Proved,
		Justification: l.Justification,
	})
}

func (l *Line) UnmarshalJSON(data []byte) error {
	var w lineJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*l = Line{
		Formula:       w.Formula.Node,
		Target:        w.Target,
		Assumptions:   w.Assumptions,
		Proved:        w.Proved,
		Justification: w.Justification,
	}
	return nil
}
