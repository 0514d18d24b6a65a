package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/validator"
)

func TestGenerateCarvedPuzzle(t *testing.T) {
	g := New()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, _, err := g.Generate(ctx, 42, 30)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.ID == "" {
		t.Fatal("puzzle must carry an ID")
	}
	if p.Seed != 42 {
		t.Fatalf("seed = %d, want 42", p.Seed)
	}
	if p.Givens != domain.CellCount-30 {
		t.Fatalf("givens = %d, want %d", p.Givens, domain.CellCount-30)
	}
	if ok, conflicts, _ := validator.New().Validate(ctx, &p.Board); !ok {
		t.Fatalf("generated puzzle has conflicts: %v", conflicts)
	}
	for i := 0; i < domain.CellCount; i++ {
		v := p.Board.Value(i)
		if v != 0 && !p.Board.Locked(i) {
			t.Fatalf("given at %d is not locked", i)
		}
		if v == 0 && p.Board.Locked(i) {
			t.Fatalf("empty cell %d is locked", i)
		}
	}
}

func TestGenerateSameSeedSameBoard(t *testing.T) {
	g := New()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	a, _, err := g.Generate(ctx, 7, 40)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	b, _, err := g.Generate(ctx, 7, 40)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if a.Board.Snapshot() != b.Board.Snapshot() {
		t.Fatal("same seed must yield the same board")
	}
	if a.ID == b.ID {
		t.Fatal("IDs must be minted per puzzle")
	}
}

func TestGenerateRejectsBadRemovals(t *testing.T) {
	g := New()
	if _, _, err := g.Generate(context.Background(), 1, 0); err == nil {
		t.Fatal("removals=0 must be rejected")
	}
	if _, _, err := g.Generate(context.Background(), 1, domain.CellCount+1); err == nil {
		t.Fatal("removals=82 must be rejected")
	}
}
