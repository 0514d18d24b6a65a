package ports

import (
	"context"
	"time"

	"svw.info/gridsolver/internal/domain"
)

// Stage identifies which solving strategy completed a board.
type Stage int

const (
	StageNone Stage = iota
	StageDeterministic
	StageGuided
	StageRandomized
)

func (s Stage) String() string {
	switch s {
	case StageDeterministic:
		return "deterministic fill"
	case StageGuided:
		return "guided trial"
	case StageRandomized:
		return "randomized backtracking"
	default:
		return "none"
	}
}

// Stats captures performance characteristics of an operation.
type Stats struct {
	Stage      Stage
	Placements int
	Iterations int
	Duration   time.Duration
}

// Solver completes a board. The input board is never mutated; the solved
// board is returned as a fresh value.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Reducer carves n cells out of a complete board to make a playable puzzle.
type Reducer interface {
	Reduce(ctx context.Context, b *domain.Board, n int) (*domain.Board, error)
}

// Generator creates new puzzles from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, removals int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []int, err error)
	PlacementLegal(b *domain.Board, index int, v uint8) bool
	Candidates(b *domain.Board, index int) []uint8
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
