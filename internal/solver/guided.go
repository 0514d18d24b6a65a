package solver

import (
	"context"

	"svw.info/gridsolver/internal/domain"
)

// runGuided makes one trial pass: for each cell that was free on entry, it
// tries that cell's candidates in ascending order, propagating each with
// fillDeterministic; the first trial that fills the board is kept, anything
// else is rolled back to the per-cell checkpoint.
//
// Deliberately not exhaustive: a cell is never revisited after a later
// cell's trials fail, so the pass can leave a solvable board incomplete.
// The randomized stage exists to cover exactly that gap.
func (s *StagedSolver) runGuided(ctx context.Context, b *domain.Board) (int, error) {
	placed := 0
	for _, idx := range b.FreeCells() {
		if b.IsFull() {
			break
		}
		if b.Value(idx) != 0 {
			// filled by an earlier trial's propagation
			continue
		}
		cands := s.check.Candidates(b, idx)
		snap := b.Snapshot()
		for _, v := range cands {
			if err := ctx.Err(); err != nil {
				return placed, err
			}
			b.SetValue(idx, v)
			placed += 1 + s.fillDeterministic(b)
			if b.IsFull() {
				break
			}
			b.Restore(snap)
		}
	}
	return placed, nil
}
