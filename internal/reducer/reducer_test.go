package reducer

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"svw.info/gridsolver/internal/domain"
)

var solvedGrid = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func solvedBoard() *domain.Board {
	b := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.SetValue(domain.IndexOf(r, c), solvedGrid[r][c])
		}
	}
	return b
}

func TestReduceCounts(t *testing.T) {
	r := New(rand.New(rand.NewSource(1)))
	in := solvedBoard()

	out, err := r.Reduce(context.Background(), in, 30)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}

	empty, locked := 0, 0
	for i := 0; i < domain.CellCount; i++ {
		switch {
		case out.Value(i) == 0:
			empty++
			if out.Locked(i) {
				t.Fatalf("cleared cell %d is locked", i)
			}
		default:
			if !out.Locked(i) {
				t.Fatalf("surviving cell %d is not locked", i)
			}
			locked++
			if out.Value(i) != in.Value(i) {
				t.Fatalf("surviving cell %d changed value", i)
			}
		}
	}
	if empty != 30 || locked != 51 {
		t.Fatalf("empty=%d locked=%d, want 30/51", empty, locked)
	}
	// input board untouched
	if in.CountGivens() != domain.CellCount {
		t.Fatal("Reduce mutated its input")
	}
}

func TestReduceFullClear(t *testing.T) {
	r := New(rand.New(rand.NewSource(1)))
	out, err := r.Reduce(context.Background(), solvedBoard(), domain.CellCount)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if out.CountGivens() != 0 {
		t.Fatalf("givens = %d after clearing all cells", out.CountGivens())
	}
}

func TestReduceRejectsBadRequests(t *testing.T) {
	r := New(rand.New(rand.NewSource(1)))
	ctx := context.Background()

	cases := []struct {
		name  string
		board *domain.Board
		n     int
		want  error
	}{
		{"zero count", solvedBoard(), 0, ErrRemovalCount},
		{"negative count", solvedBoard(), -3, ErrRemovalCount},
		{"count too large", solvedBoard(), domain.CellCount + 1, ErrRemovalCount},
		{"incomplete board", &domain.Board{}, 10, ErrNotComplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := r.Reduce(ctx, tc.board, tc.n); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	broken := solvedBoard()
	broken.SetValue(0, broken.Value(1))
	if _, err := r.Reduce(ctx, broken, 10); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("contradictory board: err = %v, want ErrNotComplete", err)
	}
}
