package board

import "iter"

// A Placement classifies a cell by how much of the board surrounds it.
type Placement uint8

const (
	TopLeftCorner Placement = iota
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner
	TopEdge
	RightEdge
	BottomEdge
	LeftEdge
	Interior
)

var placementNames = [...]string{
	"top-left corner", "top-right corner", "bottom-left corner", "bottom-right corner",
	"top edge", "right edge", "bottom edge", "left edge", "interior",
}

func (pl Placement) String() string {
	return placementNames[pl]
}

// PlacementOf returns the placement of p. Corners have row and column both
// on the rim, edges have exactly one on the rim.
func PlacementOf(p Position) Placement {
	top, bottom := p.Row() == 0, p.Row() == Dim-1
	left, right := p.Col() == 0, p.Col() == Dim-1
	switch {
	case top && left:
		return TopLeftCorner
	case top && right:
		return TopRightCorner
	case bottom && left:
		return BottomLeftCorner
	case bottom && right:
		return BottomRightCorner
	case top:
		return TopEdge
	case right:
		return RightEdge
	case bottom:
		return BottomEdge
	case left:
		return LeftEdge
	}
	return Interior
}

// The order in which each placement visits its neighbours. Callers and
// tests rely on these orders; do not reshuffle them.
var (
	topLeftCornerDirs     = [...]Direction{Right, DownRight, Down}
	topRightCornerDirs    = [...]Direction{Down, DownLeft, Left}
	bottomLeftCornerDirs  = [...]Direction{Up, UpRight, Right}
	bottomRightCornerDirs = [...]Direction{Up, Left, UpLeft}
	topEdgeDirs           = [...]Direction{Right, DownRight, Down, DownLeft, Left}
	rightEdgeDirs         = [...]Direction{Up, Down, DownLeft, Left, UpLeft}
	bottomEdgeDirs        = [...]Direction{Up, UpRight, Right, Left, UpLeft}
	leftEdgeDirs          = [...]Direction{Up, UpRight, Right, DownRight, Down}
	interiorDirs          = Directions
)

// A Neighbour is one cell adjacent to a centre cell, along with its
// contents and the direction it lies in.
type Neighbour struct {
	Pos  Position
	Disc Disc
	Dir  Direction
}

// Neighbours enumerates the cells adjacent to a centre cell: 3 for a
// corner, 5 for an edge and 8 for the interior. It is single pass; build a
// new one to start over.
type Neighbours struct {
	board     *Board
	center    Position
	placement Placement
	count     uint8
}

// NewNeighbours returns the neighbour enumerator for p.
func NewNeighbours(b *Board, p Position) *Neighbours {
	return &Neighbours{board: b, center: p, placement: PlacementOf(p)}
}

// Placement returns which of the nine cases this enumerator covers.
func (n *Neighbours) Placement() Placement {
	return n.placement
}

// Len returns the total number of neighbours, regardless of how many have
// been consumed.
func (n *Neighbours) Len() int {
	return len(n.dirs())
}

func (n *Neighbours) dirs() []Direction {
	switch n.placement {
	case TopLeftCorner:
		return topLeftCornerDirs[:]
	case TopRightCorner:
		return topRightCornerDirs[:]
	case BottomLeftCorner:
		return bottomLeftCornerDirs[:]
	case BottomRightCorner:
		return bottomRightCornerDirs[:]
	case TopEdge:
		return topEdgeDirs[:]
	case RightEdge:
		return rightEdgeDirs[:]
	case BottomEdge:
		return bottomEdgeDirs[:]
	case LeftEdge:
		return leftEdgeDirs[:]
	}
	return interiorDirs[:]
}

// Next returns the next neighbour. ok is false when there are no more.
func (n *Neighbours) Next() (nb Neighbour, ok bool) {
	dirs := n.dirs()
	if int(n.count) >= len(dirs) {
		return Neighbour{}, false
	}
	dir := dirs[n.count]
	n.count++
	p, _ := dir.step(n.center)
	return Neighbour{Pos: p, Disc: n.board.At(p), Dir: dir}, true
}

// All yields the remaining neighbours.
func (n *Neighbours) All() iter.Seq[Neighbour] {
	return func(yield func(Neighbour) bool) {
		for nb, ok := n.Next(); ok; nb, ok = n.Next() {
			if !yield(nb) {
				return
			}
		}
	}
}
