package board

import "fmt"

// A Disc is the occupant of a single cell.
type Disc uint8

const (
	Empty Disc = iota
	Player1Disc
	Player2Disc
)

func (d Disc) String() string {
	switch d {
	case Empty:
		return "empty"
	case Player1Disc:
		return "player1"
	case Player2Disc:
		return "player2"
	}
	return "invalid"
}

// Is reports whether the disc belongs to p. Empty belongs to nobody.
func (d Disc) Is(p Player) bool {
	return d != Empty && d == p.Disc()
}

// Owner returns the player whose disc this is. ok is false for Empty.
func (d Disc) Owner() (p Player, ok bool) {
	switch d {
	case Player1Disc:
		return Player1, true
	case Player2Disc:
		return Player2, true
	}
	return 0, false
}

// A Player is one of the two sides.
type Player uint8

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "invalid"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	panic(fmt.Errorf("%w: unknown player %d", ErrInvariantViolation, uint8(p)))
}

// Disc returns the disc this player places.
func (p Player) Disc() Disc {
	switch p {
	case Player1:
		return Player1Disc
	case Player2:
		return Player2Disc
	}
	panic(fmt.Errorf("%w: unknown player %d", ErrInvariantViolation, uint8(p)))
}
