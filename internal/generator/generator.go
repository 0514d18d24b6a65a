// Package generator produces playable puzzles: it solves an empty board
// with a seeded randomized solver, then carves cells with the reducer.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
	"svw.info/gridsolver/internal/reducer"
	"svw.info/gridsolver/internal/solver"
)

// CarveGenerator builds a full solution from scratch and removes the
// requested number of cells. Solutions are not checked for uniqueness.
type CarveGenerator struct{}

func New() *CarveGenerator { return &CarveGenerator{} }

// Generate creates a puzzle from seed with removals cells cleared. The
// same seed yields the same puzzle.
func (g *CarveGenerator) Generate(ctx context.Context, seed int64, removals int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// an empty board forces the solve down to the randomized stage
	empty := &domain.Board{}
	full, st, err := solver.New(solver.WithRand(rng)).Solve(ctx, empty)
	if err != nil {
		return nil, st, err
	}

	carved, err := reducer.New(rng).Reduce(ctx, full, removals)
	if err != nil {
		return nil, st, err
	}

	p := &domain.Puzzle{
		ID:        uuid.New().String(),
		Seed:      seed,
		Givens:    carved.CountGivens(),
		Board:     *carved,
		CreatedAt: time.Now().UnixNano(),
	}
	st.Duration = time.Since(start)
	return p, st, nil
}
