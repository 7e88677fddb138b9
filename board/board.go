// Package board holds the state of an 8x8 disc-flipping game and answers
// questions about it: what is on a cell, what surrounds it, what lies along
// a straight line from it, and whether a player may place a disc there.
package board

import (
	"fmt"
	"iter"
)

// A Board is two bit-planes, one per player. Bit col of plane[row] is set
// when that player holds (row, col). A cell is never set in both planes;
// SetPiece and the From* constructors are the only writers and they keep
// it that way.
//
// Board is a plain value. Copy it with assignment.
type Board struct {
	p1 [Dim]uint8
	p2 [Dim]uint8
}

// EmptyBoard returns a board with no discs on it.
func EmptyBoard() Board {
	return Board{}
}

// Default returns the starting layout: the centre four cells hold a
// diagonal pattern and everything else is empty.
func Default() Board {
	var b Board
	b.p1[3] = 0b00010000
	b.p1[4] = 0b00001000
	b.p2[3] = 0b00001000
	b.p2[4] = 0b00010000
	return b
}

// FromGrid builds a board from an 8x8 grid indexed [row][col].
func FromGrid(grid [Dim][Dim]Disc) Board {
	var b Board
	for r := range grid {
		for c, d := range grid[r] {
			b.SetPiece(NewPosition(r, c), d)
		}
	}
	return b
}

// FromCells builds a board from 64 discs in row-major order.
func FromCells(cells [NumCells]Disc) Board {
	var b Board
	for i, d := range cells {
		b.SetPiece(Position(i), d)
	}
	return b
}

// At returns the disc at p. It panics with ErrIndexOutOfBounds if p was
// not built through NewPosition and points past the last cell, and with
// ErrInvariantViolation if both planes claim the cell.
func (b *Board) At(p Position) Disc {
	if !p.Valid() {
		panic(fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, p))
	}
	row, col := p.Row(), p.Col()
	p1 := (b.p1[row] >> col) & 1
	p2 := (b.p2[row] >> col) & 1
	switch {
	case p1 == 0 && p2 == 0:
		return Empty
	case p1 == 1 && p2 == 0:
		return Player1Disc
	case p1 == 0 && p2 == 1:
		return Player2Disc
	}
	panic(fmt.Errorf("%w: both players hold %v", ErrInvariantViolation, p))
}

// GetPiece is At under the name the driver side uses.
func (b *Board) GetPiece(p Position) Disc {
	return b.At(p)
}

// SetPiece writes d to p. Empty clears both planes; a player disc sets
// that player's bit and clears the other's.
func (b *Board) SetPiece(p Position, d Disc) {
	if !p.Valid() {
		panic(fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, p))
	}
	row, col := p.Row(), p.Col()
	mask := uint8(1) << col
	switch d {
	case Empty:
		b.p1[row] &^= mask
		b.p2[row] &^= mask
	case Player1Disc:
		b.p1[row] |= mask
		b.p2[row] &^= mask
	case Player2Disc:
		b.p2[row] |= mask
		b.p1[row] &^= mask
	default:
		panic(fmt.Errorf("%w: unknown disc %d", ErrInvariantViolation, d))
	}
}

// Iter returns a fresh cursor over all 64 cells in row-major order.
func (b *Board) Iter() *Iter {
	return &Iter{board: b}
}

// Discs yields the 64 cells in row-major order.
func (b *Board) Discs() iter.Seq[Disc] {
	return func(yield func(Disc) bool) {
		it := b.Iter()
		for d, ok := it.Next(); ok; d, ok = it.Next() {
			if !yield(d) {
				return
			}
		}
	}
}

// Cells is like Discs but also yields each cell's position.
func (b *Board) Cells() iter.Seq2[Position, Disc] {
	return func(yield func(Position, Disc) bool) {
		for p := Position(0); p <= maxValidPos; p++ {
			if !yield(p, b.At(p)) {
				return
			}
		}
	}
}

// An Iter walks the board one cell at a time. It must not be used while
// the board is being modified.
type Iter struct {
	board *Board
	cur   Position
}

// Next returns the disc at the cursor and advances it. ok is false once
// all 64 cells have been returned.
func (it *Iter) Next() (d Disc, ok bool) {
	if it.cur > maxValidPos {
		return Empty, false
	}
	d = it.board.At(it.cur)
	it.cur++
	return d, true
}
