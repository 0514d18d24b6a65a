package domain

// Cell holds one board square. Value 0 means empty. Locked marks a given
// that no solving stage may overwrite.
type Cell struct {
	Value  uint8 `json:"value"`
	Locked bool  `json:"locked,omitempty"`
}

// Board is the 81-cell grid, indexed row-major (index = row*9 + col).
type Board struct {
	Cells [CellCount]Cell `json:"cells"`
}

// Value returns the digit at index, 0 if empty.
func (b *Board) Value(index int) uint8 { return b.Cells[index].Value }

// SetValue writes a digit (or 0 to clear) without any legality check;
// rule enforcement lives in the validator layer.
func (b *Board) SetValue(index int, v uint8) { b.Cells[index].Value = v }

// Locked reports whether the cell is a given.
func (b *Board) Locked(index int) bool { return b.Cells[index].Locked }

// SetLocked marks or unmarks a cell as a given.
func (b *Board) SetLocked(index int, locked bool) { b.Cells[index].Locked = locked }

// FreeCells returns the indices of all empty, unlocked cells in ascending
// order. Stable ordering keeps the deterministic and guided stages
// reproducible for a fixed board and seed.
func (b *Board) FreeCells() []int {
	out := make([]int, 0, CellCount)
	for i := 0; i < CellCount; i++ {
		if b.Cells[i].Value == 0 && !b.Cells[i].Locked {
			out = append(out, i)
		}
	}
	return out
}

// IsFull reports whether every cell holds a value.
func (b *Board) IsFull() bool {
	for i := 0; i < CellCount; i++ {
		if b.Cells[i].Value == 0 {
			return false
		}
	}
	return true
}

// CountGivens returns the number of non-empty cells.
func (b *Board) CountGivens() int {
	n := 0
	for i := 0; i < CellCount; i++ {
		if b.Cells[i].Value != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Snapshot is a value-only checkpoint. Lock flags are not captured: the
// risky multi-step stages only ever write values, never lock state.
type Snapshot [CellCount]uint8

// Snapshot captures the current cell values.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i := 0; i < CellCount; i++ {
		s[i] = b.Cells[i].Value
	}
	return s
}

// Restore rewrites all cell values from a snapshot.
func (b *Board) Restore(s Snapshot) {
	for i := 0; i < CellCount; i++ {
		b.Cells[i].Value = s[i]
	}
}

// Puzzle is a persisted board with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Givens    int    `json:"givens,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Givens    int    `json:"givens"`
	CreatedAt int64  `json:"createdAt"`
}
