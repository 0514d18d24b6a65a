package usecase

import (
	"context"
	"errors"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
)

// ErrIllegalPlacement flags a single-cell write that duplicates a peer
// value. Non-fatal: the value stays on the board so the collaborator can
// show it as an error; only solver stages are barred from illegal writes.
var ErrIllegalPlacement = errors.New("digit already present in row, column or box")

var errNotConfigured = errors.New("usecase dependency not configured")

// Service is the facade the external collaborator (CLI, UI) talks to.
type Service struct {
	Solver    ports.Solver
	Reducer   ports.Reducer
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, r ports.Reducer, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Reducer: r, Generator: g, Validator: v, Storage: st}
}

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Reduce(ctx context.Context, b *domain.Board, n int) (*domain.Board, error) {
	if u.Reducer == nil {
		return nil, errNotConfigured
	}
	return u.Reducer.Reduce(ctx, b, n)
}

func (u *Service) Generate(ctx context.Context, seed int64, removals int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, removals)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []int, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Place writes a digit at index on behalf of the collaborator. Locked
// cells are never overwritten. An illegal digit is still written (the UI
// owns the error styling) but the call reports ErrIllegalPlacement.
func (u *Service) Place(ctx context.Context, b *domain.Board, index int, v uint8) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	if index < 0 || index >= domain.CellCount || v > domain.MaxDigit {
		return errors.New("index or digit out of range")
	}
	if b.Locked(index) {
		return errors.New("cell is a given")
	}
	if v == 0 {
		b.SetValue(index, 0)
		return nil
	}
	legal := u.Validator.PlacementLegal(b, index, v)
	b.SetValue(index, v)
	if !legal {
		return ErrIllegalPlacement
	}
	return nil
}

// Candidates exposes the validator's candidate query for display purposes.
func (u *Service) Candidates(b *domain.Board, index int) []uint8 {
	if u.Validator == nil {
		return nil
	}
	return u.Validator.Candidates(b, index)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
