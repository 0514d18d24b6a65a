package domain

// Grid topology. Fixed at the classic 9×9 board with 3×3 boxes, but the
// formulas below are written against these names so the arithmetic stays
// readable and testable on its own.
const (
	GridSize  = 9
	BoxSize   = 3
	CellCount = GridSize * GridSize
	MaxDigit  = uint8(GridSize)
	PeerCount = 3*(GridSize-1) - 2*(BoxSize-1) // 20 for the standard board
)

// RowOf and ColOf convert a flat row-major index back to coordinates.
func RowOf(index int) int { return index / GridSize }
func ColOf(index int) int { return index % GridSize }

// IndexOf converts coordinates to the flat row-major index.
func IndexOf(row, col int) int { return row*GridSize + col }

// peers[i] lists the indices sharing a row, column or box with i, excluding
// i itself. Built once; every legality and candidate check goes through it
// so that the geometry has a single definition.
var peers = buildPeers()

func buildPeers() [CellCount][]int {
	var out [CellCount][]int
	for i := 0; i < CellCount; i++ {
		r, c := RowOf(i), ColOf(i)
		seen := [CellCount]bool{}
		add := func(j int) {
			if j != i && !seen[j] {
				seen[j] = true
				out[i] = append(out[i], j)
			}
		}
		for k := 0; k < GridSize; k++ {
			add(IndexOf(r, k))
			add(IndexOf(k, c))
		}
		br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
		for dr := 0; dr < BoxSize; dr++ {
			for dc := 0; dc < BoxSize; dc++ {
				add(IndexOf(br+dr, bc+dc))
			}
		}
	}
	return out
}

// Related returns the peer indices of a cell: same row, same column and same
// box co-members, deduplicated, never containing index itself. The returned
// slice is shared and must not be modified.
func Related(index int) []int { return peers[index] }
