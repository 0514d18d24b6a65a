package validator

import (
	"context"

	"svw.info/gridsolver/internal/domain"
)

// FastValidator performs row/column/box constraint checks against the
// shared peer table. It is the single source of truth for legality: the
// solver stages, the reducer and the CLI all go through it.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// PlacementLegal reports whether digit v could be placed at index without
// duplicating a value among the cell's peers. The cell's own current value
// is ignored.
func (va *FastValidator) PlacementLegal(b *domain.Board, index int, v uint8) bool {
	for _, j := range domain.Related(index) {
		if b.Value(j) == v {
			return false
		}
	}
	return true
}

// Candidates returns the digits 1..9 that could legally be placed at index,
// in ascending order. Meaningful only for empty cells; values are never
// cached because peer values mutate during solving.
func (va *FastValidator) Candidates(b *domain.Board, index int) []uint8 {
	out := make([]uint8, 0, domain.MaxDigit)
	for v := uint8(1); v <= domain.MaxDigit; v++ {
		if va.PlacementLegal(b, index, v) {
			out = append(out, v)
		}
	}
	return out
}

// Validate scans the whole board and returns the indices of cells whose
// stored value conflicts with an earlier peer in the same row, column or
// box. ok is true iff no conflicts exist. Bulk loads can smuggle in
// contradictions that per-cell validation never saw, so this runs before
// any solve.
func (va *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []int, error) {
	conf := make([]int, 0, 8)
	// rows
	for r := 0; r < domain.GridSize; r++ {
		m := 0
		for c := 0; c < domain.GridSize; c++ {
			m = mark(b, domain.IndexOf(r, c), m, &conf)
		}
	}
	// cols
	for c := 0; c < domain.GridSize; c++ {
		m := 0
		for r := 0; r < domain.GridSize; r++ {
			m = mark(b, domain.IndexOf(r, c), m, &conf)
		}
	}
	// boxes
	for br := 0; br < domain.BoxSize; br++ {
		for bc := 0; bc < domain.BoxSize; bc++ {
			m := 0
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					m = mark(b, domain.IndexOf(br*domain.BoxSize+dr, bc*domain.BoxSize+dc), m, &conf)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

func mark(b *domain.Board, index, m int, conf *[]int) int {
	v := b.Value(index)
	if v == 0 {
		return m
	}
	bit := 1 << v
	if m&bit != 0 {
		*conf = append(*conf, index)
	}
	return m | bit
}

// StructurallyValid reports whether no row, column or box holds a duplicate
// digit. Empty cells are ignored.
func (va *FastValidator) StructurallyValid(b *domain.Board) bool {
	ok, _, _ := va.Validate(context.Background(), b)
	return ok
}

// Complete reports whether the board is full and structurally valid.
func (va *FastValidator) Complete(b *domain.Board) bool {
	return b.IsFull() && va.StructurallyValid(b)
}
