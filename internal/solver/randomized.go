package solver

import (
	"context"

	"svw.info/gridsolver/internal/domain"
)

// DefaultMaxIterations bounds the randomized stage's restart budget.
const DefaultMaxIterations = 50000

// runRandomized is the last-resort stage: fill the first free cell with a
// uniformly random legal candidate, repeat until the board is full or a
// cell has no candidate. A dead end restores the entire attempt to the
// pre-stage checkpoint and starts over; there is no per-cell undo. Bounded
// best-effort search, not verified backtracking — completion is not
// guaranteed within the iteration budget.
//
// Cancellation is honored once per outer iteration; this is the only place
// in the solver where wall-clock time is effectively unbounded.
func (s *StagedSolver) runRandomized(ctx context.Context, b *domain.Board) (int, int, error) {
	snap := b.Snapshot()
	placed := 0
	iters := 0
	for iters < s.maxIterations && !b.IsFull() {
		iters++
		if err := ctx.Err(); err != nil {
			return placed, iters, err
		}
		for {
			free := b.FreeCells()
			if len(free) == 0 {
				break
			}
			idx := free[0]
			cands := s.check.Candidates(b, idx)
			if len(cands) == 0 {
				// abandon the whole attempt
				b.Restore(snap)
				break
			}
			b.SetValue(idx, cands[s.rng.Intn(len(cands))])
			placed++
		}
	}
	return placed, iters, nil
}
