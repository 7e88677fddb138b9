package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/samber/lo"
)

// DisplayRune is the character used for d in text boards.
func (d Disc) DisplayRune() rune {
	switch d {
	case Player1Disc:
		return 'X'
	case Player2Disc:
		return 'O'
	}
	return '.'
}

// Count returns how many cells hold d.
func (b *Board) Count(d Disc) int {
	p1, p2 := 0, 0
	for r := 0; r < Dim; r++ {
		p1 += bits.OnesCount8(b.p1[r])
		p2 += bits.OnesCount8(b.p2[r])
	}
	switch d {
	case Player1Disc:
		return p1
	case Player2Disc:
		return p2
	case Empty:
		return NumCells - p1 - p2
	}
	panic(fmt.Errorf("%w: unknown disc %d", ErrInvariantViolation, d))
}

// ToDisplayText renders the board with column letters across the top and
// row numbers down the side.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	header := lo.Times(Dim, func(i int) string { return string(rune('A' + i)) })
	sb.WriteString("   " + strings.Join(header, " ") + "\n")
	sb.WriteString("   " + strings.Repeat("-", Dim*2-1) + "\n")
	for r := 0; r < Dim; r++ {
		row := lo.Times(Dim, func(c int) string {
			return string(b.At(NewPosition(r, c)).DisplayRune())
		})
		fmt.Fprintf(&sb, "%2d|%s|\n", r+1, strings.Join(row, " "))
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2-1) + "\n")
	fmt.Fprintf(&sb, "X: %d  O: %d\n", b.Count(Player1Disc), b.Count(Player2Disc))
	return "\n" + sb.String()
}

// FromRows builds a board from eight rows of eight characters, using '.'
// for empty, 'X' for player 1 and 'O' for player 2. Spaces are ignored, so
// rows copied from ToDisplayText work as well.
func FromRows(rows []string) (Board, error) {
	var b Board
	if len(rows) != Dim {
		return b, fmt.Errorf("expected %d rows, got %d", Dim, len(rows))
	}
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Dim {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", r+1, Dim, len(line))
		}
		for c, ch := range line {
			d, err := ParseDisc(string(ch))
			if err != nil {
				return b, fmt.Errorf("row %d: %w", r+1, err)
			}
			b.SetPiece(NewPosition(r, c), d)
		}
	}
	return b, nil
}

// MustFromRows is FromRows for fixed layouts known to be well formed.
func MustFromRows(rows ...string) Board {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}
