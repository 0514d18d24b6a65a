// Package storage persists puzzles as pretty-printed JSON files, one per
// puzzle, keyed by ID in a flat directory.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"svw.info/gridsolver/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

// Save writes the puzzle to <dir>/<id>.json, minting an ID if missing.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("nil puzzle")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(p.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Givens == 0 {
		out.Givens = out.Board.CountGivens()
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			continue
		}
		givens := p.Givens
		if givens == 0 {
			givens = p.Board.CountGivens()
		}
		out = append(out, domain.PuzzleMeta{
			ID:        p.ID,
			Name:      p.Name,
			Givens:    givens,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}
