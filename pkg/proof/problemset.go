package proof

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wbhart/proofdroid/pkg/logic"
)

// ProblemSet is a named collection of hypotheses and targets, stored as
//
//	{"name": "...", "hypotheses": [node, ...], "targets": [node, ...]}
//
// with nodes in the tagged-object form of the logic package.
type ProblemSet struct {
	Name       string         `json:"name"`
	Hypotheses logic.NodeList `json:"hypotheses"`
	Targets    logic.NodeList `json:"targets"`
}

// ReadProblemSet decodes one problem set.
func ReadProblemSet(r io.Reader) (ProblemSet, error) {
	var ps ProblemSet
	if err := json.NewDecoder(r).Decode(&ps); err != nil {
		return ProblemSet{}, fmt.Errorf("ReadProblemSet: %w", err)
	}
	return ps, nil
}

// WriteProblemSet encodes ps with indentation.
func WriteProblemSet(w io.Writer, ps ProblemSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ps); err != nil {
		return fmt.Errorf("WriteProblemSet: %w", err)
	}
	return nil
}
