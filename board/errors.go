package board

import "errors"

var (
	// ErrIndexOutOfBounds is raised when a row or column exceeds 7 or a
	// packed index exceeds 63.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvariantViolation means the board state or a caller-supplied pair
	// of cells is corrupt: both planes claim a cell, or two cells given as
	// neighbours are not adjacent.
	ErrInvariantViolation = errors.New("board invariant violated")
)
