// Package reducer turns a solved board into a playable puzzle by clearing
// random cells. No uniqueness-of-solution check is made; the result may
// admit multiple solutions.
package reducer

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/validator"
)

var (
	// ErrRemovalCount means the requested count is outside 1..81.
	ErrRemovalCount = errors.New("removal count out of range")
	// ErrNotComplete means the board is not full and valid, so there is
	// nothing sound to carve from.
	ErrNotComplete = errors.New("board is not a complete solution")
)

// RandomReducer clears cells using its own seedable random source.
type RandomReducer struct {
	check *validator.FastValidator
	rng   *rand.Rand
}

// New returns a reducer backed by rng; a nil rng gets a wall-clock seed.
func New(rng *rand.Rand) *RandomReducer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomReducer{check: validator.New(), rng: rng}
}

// Reduce clears exactly n distinct random cells from a complete board and
// locks every surviving value as a given. The input board is not mutated.
func (r *RandomReducer) Reduce(ctx context.Context, b *domain.Board, n int) (*domain.Board, error) {
	if n < 1 || n > domain.CellCount {
		return nil, ErrRemovalCount
	}
	if !r.check.Complete(b) {
		return nil, ErrNotComplete
	}
	out := b.Clone()
	chosen := make(map[int]bool, n)
	for len(chosen) < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := r.rng.Intn(domain.CellCount)
		if chosen[idx] {
			continue
		}
		chosen[idx] = true
		out.SetValue(idx, 0)
		out.SetLocked(idx, false)
	}
	for i := 0; i < domain.CellCount; i++ {
		if out.Value(i) != 0 {
			out.SetLocked(i, true)
		}
	}
	return out, nil
}
