package proof

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/wbhart/proofdroid/internal/parallel"
	"github.com/wbhart/proofdroid/pkg/logic"
)

// Candidate is a conclusion modus ponens can draw from two lines.
type Candidate struct {
	Implication int
	Premise     int
	Formula     logic.Node
	Assumptions []int
}

// SearchModusPonens tries modus ponens on every ordered pair of distinct
// established lines and returns the successful ones ordered by
// implication, then premise. Nothing is appended to the context.
//
// Pairs are tried on a worker pool; every task works on its own copies of
// the two formulas.
func (c *Context) SearchModusPonens(ctx context.Context, reading logic.IffReading) ([]Candidate, error) {
	lines := c.Lines()

	var facts, implications []int
	for i, l := range lines {
		if l.Target || l.Formula == nil {
			continue
		}
		facts = append(facts, i)
		if b, ok := l.Formula.(*logic.LogicalBinary); ok && (b.Name == logic.Implies || b.Name == logic.Iff) {
			implications = append(implications, i)
		}
	}

	pool := parallel.NewWorkerPool(c.workers)
	defer pool.Shutdown()

	var (
		mu    sync.Mutex
		found []Candidate
		tried int
	)
	for _, i := range implications {
		for _, j := range facts {
			if i == j {
				continue
			}
			imp, fact := lines[i], lines[j]
			tried++
			err := pool.Submit(ctx, func() {
				result, ok := logic.ModusPonens(imp.Formula.Clone(), fact.Formula.Clone(), reading)
				if !ok {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				found = append(found, Candidate{
					Implication: i,
					Premise:     j,
					Formula:     result,
					Assumptions: mergeAssumptions(imp.Assumptions, fact.Assumptions),
				})
			})
			if err != nil {
				pool.Wait()
				return nil, err
			}
		}
	}
	pool.Wait()

	slices.SortFunc(found, func(a, b Candidate) int {
		return cmp.Or(cmp.Compare(a.Implication, b.Implication), cmp.Compare(a.Premise, b.Premise))
	})
	c.logger.Debug("proof: modus ponens search",
		slog.Int("pairs", tried),
		slog.Int("found", len(found)))
	return found, nil
}
