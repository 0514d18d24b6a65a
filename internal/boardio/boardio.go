// Package boardio converts boards to and from plain text. The format is
// forgiving on input: digits 1-9 fill the next cell, '0' and '.' leave it
// empty, and every other rune is a separator. Cells load in left-to-right,
// top-to-bottom order; input past the 81st cell is ignored.
package boardio

import (
	"errors"
	"strings"

	"svw.info/gridsolver/internal/domain"
)

// ErrTooShort means the text held no cell characters at all.
var ErrTooShort = errors.New("no board cells found in input")

// Parse reads a board from text. After loading, every non-empty cell is
// locked as a given unless the board arrived completely full, in which
// case nothing is locked and lock decisions stay with the caller.
func Parse(text string) (*domain.Board, error) {
	b := &domain.Board{}
	idx := 0
	seen := 0
	for _, r := range text {
		if idx >= domain.CellCount {
			break
		}
		switch {
		case r >= '1' && r <= '9':
			b.SetValue(idx, uint8(r-'0'))
			idx++
			seen++
		case r == '0' || r == '.':
			idx++
			seen++
		}
	}
	if seen == 0 {
		return nil, ErrTooShort
	}
	if !b.IsFull() {
		for i := 0; i < domain.CellCount; i++ {
			if b.Value(i) != 0 {
				b.SetLocked(i, true)
			}
		}
	}
	return b, nil
}

// Render writes the board as nine rows of nine characters, '.' for empty.
func Render(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(domain.CellCount + domain.GridSize)
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			v := b.Value(domain.IndexOf(r, c))
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
