package board

import "fmt"

const (
	// Dim is the side length of the board.
	Dim = 8
	// NumCells is the number of cells on the board.
	NumCells = Dim * Dim

	maxValidPos Position = 0b00111111 // (7, 7)
)

// Integer is any built-in integer type. Coordinates may arrive from either
// narrow or wide types at the boundary.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// A Position is a cell packed into a single byte. The low three bits are
// the column and the next three are the row.
type Position uint8

// NewPosition packs a row and column. It panics with ErrIndexOutOfBounds
// if either coordinate is outside [0, 7]; callers holding untrusted input
// should go through TryPosition first.
func NewPosition[T Integer](row, col T) Position {
	p, err := TryPosition(row, col)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPosition is like NewPosition but returns the error instead.
func TryPosition[T Integer](row, col T) (Position, error) {
	if row < 0 || col < 0 || uint64(row) >= Dim || uint64(col) >= Dim {
		return 0, fmt.Errorf("%w: (%v, %v)", ErrIndexOutOfBounds, row, col)
	}
	return Position(uint8(row)<<3 | uint8(col)), nil
}

// Row returns the row, 0 through 7.
func (p Position) Row() int {
	return int(p>>3) & 0b111
}

// Col returns the column, 0 through 7.
func (p Position) Col() int {
	return int(p) & 0b111
}

// Index returns the packed row-major index, row*8 + col.
func (p Position) Index() int {
	return int(p)
}

// Valid reports whether p is within [0, 63]. Only a Position built by
// arithmetic rather than NewPosition can fail this.
func (p Position) Valid() bool {
	return p <= maxValidPos
}
