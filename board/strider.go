package board

import "iter"

// A Strider walks outward from a centre cell in one direction, one cell
// per call to Next, until it runs off the board. The centre itself is
// never returned.
type Strider struct {
	board *Board
	pos   Position
	dir   Direction
}

// NewStrider starts a walk from center in direction dir.
func NewStrider(b *Board, center Position, dir Direction) *Strider {
	return &Strider{board: b, pos: center, dir: dir}
}

// StriderToward starts a walk from center through neighbour and beyond.
// neighbour must be adjacent to center; see DirectionBetween.
func StriderToward(b *Board, center, neighbour Position) *Strider {
	return NewStrider(b, center, DirectionBetween(center, neighbour))
}

// Direction returns the direction of the walk.
func (s *Strider) Direction() Direction {
	return s.dir
}

// Next advances one cell. ok is false once the edge has been reached, and
// stays false.
func (s *Strider) Next() (p Position, d Disc, ok bool) {
	next, ok := s.dir.step(s.pos)
	if !ok {
		return s.pos, Empty, false
	}
	s.pos = next
	return next, s.board.At(next), true
}

// All yields the remaining cells of the walk.
func (s *Strider) All() iter.Seq2[Position, Disc] {
	return func(yield func(Position, Disc) bool) {
		for p, d, ok := s.Next(); ok; p, d, ok = s.Next() {
			if !yield(p, d) {
				return
			}
		}
	}
}
