package solver

import "svw.info/gridsolver/internal/domain"

// fillDeterministic places forced values: any free cell with exactly one
// candidate gets it. Full passes over the free cells repeat until a pass
// makes no placement. Terminates because every placement shrinks the free
// set; afterwards the board is either full or every free cell has zero or
// two-plus candidates. Returns the number of placements made.
//
// This is the cheapest stage and also the propagation primitive the guided
// stage re-runs after each trial placement.
func (s *StagedSolver) fillDeterministic(b *domain.Board) int {
	placed := 0
	for changed := true; changed; {
		changed = false
		for _, idx := range b.FreeCells() {
			cands := s.check.Candidates(b, idx)
			if len(cands) == 1 {
				b.SetValue(idx, cands[0])
				placed++
				changed = true
			}
		}
	}
	return placed
}
