package board

import "fmt"

// A Direction is one of the eight compass directions on the board. Up is
// towards row 0 and Left is towards column 0.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// Directions lists all eight directions, clockwise from Up.
var Directions = [...]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

var directionNames = [...]string{"up", "upright", "right", "downright", "down", "downleft", "left", "upleft"}

// row and column step for each direction
var directionDeltas = [...][2]int{
	Up:        {-1, 0},
	UpRight:   {-1, 1},
	Right:     {0, 1},
	DownRight: {1, 1},
	Down:      {1, 0},
	DownLeft:  {1, -1},
	Left:      {0, -1},
	UpLeft:    {-1, -1},
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Delta returns the row and column step of one move in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	delta := directionDeltas[d]
	return delta[0], delta[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// blocked reports whether a step from p in direction d would leave the
// board.
func (d Direction) blocked(p Position) bool {
	dr, dc := d.Delta()
	return (dr < 0 && p.Row() == 0) ||
		(dr > 0 && p.Row() == Dim-1) ||
		(dc < 0 && p.Col() == 0) ||
		(dc > 0 && p.Col() == Dim-1)
}

// step moves p one cell in direction d. ok is false at the edge; the
// board never wraps.
func (d Direction) step(p Position) (Position, bool) {
	if d.blocked(p) {
		return p, false
	}
	dr, dc := d.Delta()
	return Position(int(p) + dr*Dim + dc), true
}

// DirectionBetween infers the direction from center to an adjacent
// neighbour using the difference of their packed indices. It panics with
// ErrInvariantViolation if the two cells are not adjacent.
func DirectionBetween(center, neighbour Position) Direction {
	var dir Direction
	switch int(center) - int(neighbour) {
	case 8:
		dir = Up
	case 7:
		dir = UpRight
	case -1:
		dir = Right
	case -9:
		dir = DownRight
	case -8:
		dir = Down
	case -7:
		dir = DownLeft
	case 1:
		dir = Left
	case 9:
		dir = UpLeft
	default:
		panic(fmt.Errorf("%w: %v and %v are not adjacent", ErrInvariantViolation, center, neighbour))
	}
	// A delta of 1, 7 or 9 also matches cells on opposite edges of
	// neighbouring rows.
	if next, ok := dir.step(center); !ok || next != neighbour {
		panic(fmt.Errorf("%w: %v and %v are not adjacent", ErrInvariantViolation, center, neighbour))
	}
	return dir
}
