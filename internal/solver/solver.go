// Package solver completes sudoku boards with three strategies tried in
// increasing order of cost: deterministic sole-candidate filling, a single
// guided trial pass, and bounded randomized backtracking. Each stage starts
// from the original board, not from the previous stage's partial progress.
package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
	"svw.info/gridsolver/internal/validator"
)

var (
	// ErrContradiction means the initial board already holds a duplicate
	// in some row, column or box; solving is refused.
	ErrContradiction = errors.New("board has a structural contradiction")
	// ErrUnsolvable means the randomized stage exhausted its iteration
	// budget without completing the board.
	ErrUnsolvable = errors.New("resolution impossible within iteration budget")
)

// StagedSolver owns its randomness so a fixed seed reproduces a fixed
// placement sequence for a given board.
type StagedSolver struct {
	check         *validator.FastValidator
	rng           *rand.Rand
	maxIterations int
}

// Option tunes a StagedSolver.
type Option func(*StagedSolver)

// WithRand injects the random source used by the randomized stage.
func WithRand(rng *rand.Rand) Option {
	return func(s *StagedSolver) { s.rng = rng }
}

// WithMaxIterations overrides the randomized stage's restart budget.
func WithMaxIterations(n int) Option {
	return func(s *StagedSolver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// New returns a staged solver. Without WithRand the source is seeded from
// the wall clock.
func New(opts ...Option) *StagedSolver {
	s := &StagedSolver{
		check:         validator.New(),
		maxIterations: DefaultMaxIterations,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Solve validates the board, then runs the stages until one completes it.
// The caller's board is never mutated: work happens on a clone, and the
// solved clone is returned. Stats.Stage records which strategy finished.
func (s *StagedSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}

	if !s.check.StructurallyValid(b) {
		st.Duration = time.Since(start)
		return nil, st, ErrContradiction
	}

	work := b.Clone()
	base := work.Snapshot()

	// stage 1: forced values only
	st.Placements += s.fillDeterministic(work)
	if work.IsFull() {
		st.Stage = ports.StageDeterministic
		st.Duration = time.Since(start)
		return work, st, nil
	}

	// stage 2: one guided trial per free cell
	work.Restore(base)
	placed, err := s.runGuided(ctx, work)
	st.Placements += placed
	if err != nil {
		st.Duration = time.Since(start)
		return nil, st, err
	}
	if work.IsFull() {
		st.Stage = ports.StageGuided
		st.Duration = time.Since(start)
		return work, st, nil
	}

	// stage 3: randomized restarts
	work.Restore(base)
	placed, iters, err := s.runRandomized(ctx, work)
	st.Placements += placed
	st.Iterations = iters
	st.Duration = time.Since(start)
	if err != nil {
		return nil, st, err
	}
	if work.IsFull() {
		st.Stage = ports.StageRandomized
		return work, st, nil
	}
	return nil, st, ErrUnsolvable
}
