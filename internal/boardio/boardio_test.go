package boardio

import (
	"errors"
	"strings"
	"testing"

	"svw.info/gridsolver/internal/domain"
)

const partialText = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParsePartialBoard(t *testing.T) {
	b, err := Parse(partialText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.Value(domain.IndexOf(0, 0)); got != 5 {
		t.Fatalf("cell (0,0) = %d, want 5", got)
	}
	if got := b.Value(domain.IndexOf(8, 8)); got != 9 {
		t.Fatalf("cell (8,8) = %d, want 9", got)
	}
	if got := b.Value(domain.IndexOf(0, 2)); got != 0 {
		t.Fatalf("cell (0,2) = %d, want empty", got)
	}
	// non-empty cells become givens on a partial board
	for i := 0; i < domain.CellCount; i++ {
		if b.Value(i) != 0 && !b.Locked(i) {
			t.Fatalf("given at %d is not locked", i)
		}
		if b.Value(i) == 0 && b.Locked(i) {
			t.Fatalf("empty cell %d is locked", i)
		}
	}
}

func TestParseZeroMeansEmpty(t *testing.T) {
	text := strings.Replace(partialText, ".", "0", -1)
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want, _ := Parse(partialText)
	if b.Snapshot() != want.Snapshot() {
		t.Fatal("'0' and '.' must load identically")
	}
}

func TestParseFullBoardLocksNothing(t *testing.T) {
	var sb strings.Builder
	rows := [9]string{
		"534678912",
		"672195348",
		"198342567",
		"859761423",
		"426853791",
		"713924856",
		"961537284",
		"287419635",
		"345286179",
	}
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	b, err := Parse(sb.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !b.IsFull() {
		t.Fatal("board should be full")
	}
	for i := 0; i < domain.CellCount; i++ {
		if b.Locked(i) {
			t.Fatalf("cell %d locked on a fully loaded board", i)
		}
	}
}

func TestParseIgnoresSeparatorsAndOverflow(t *testing.T) {
	// separators between cells, plus trailing junk past cell 81
	text := "5 3 | comment\n" + strings.Repeat(".", 100)
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Value(0) != 5 || b.Value(1) != 3 {
		t.Fatalf("cells 0,1 = %d,%d, want 5,3", b.Value(0), b.Value(1))
	}
	if b.CountGivens() != 2 {
		t.Fatalf("givens = %d, want 2", b.CountGivens())
	}
}

func TestParseRejectsCellFreeInput(t *testing.T) {
	if _, err := Parse("no cells here"); !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	b, err := Parse(partialText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	again, err := Parse(Render(b))
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}
	if b.Snapshot() != again.Snapshot() {
		t.Fatal("Render/Parse round trip changed the board")
	}
}
