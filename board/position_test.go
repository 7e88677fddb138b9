package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestPositionRoundTrip(t *testing.T) {
	is := is.New(t)
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			p := NewPosition(r, c)
			is.Equal(p.Row(), r)
			is.Equal(p.Col(), c)
			is.Equal(p.Index(), r*8+c)
			is.True(p.Valid())
		}
	}
}

func TestPositionIntegerTypes(t *testing.T) {
	is := is.New(t)
	want := NewPosition(3, 4)
	is.Equal(NewPosition(uint8(3), uint8(4)), want)
	is.Equal(NewPosition(int8(3), int8(4)), want)
	is.Equal(NewPosition(uint64(3), uint64(4)), want)
	is.Equal(NewPosition(int64(3), int64(4)), want)
	is.Equal(NewPosition(uintptr(3), uintptr(4)), want)
}

func TestPositionOutOfBounds(t *testing.T) {
	is := is.New(t)
	err := recoverErr(func() { NewPosition(9, 20) })
	is.True(errors.Is(err, ErrIndexOutOfBounds))

	for _, tc := range []struct {
		row, col int
	}{
		{8, 0},
		{0, 8},
		{-1, 3},
		{3, -1},
		{255, 255},
	} {
		_, err := TryPosition(tc.row, tc.col)
		is.True(errors.Is(err, ErrIndexOutOfBounds))
	}
	_, err = TryPosition(uint8(8), uint8(7))
	is.True(errors.Is(err, ErrIndexOutOfBounds))
	_, err = TryPosition(uint64(1<<40), uint64(0))
	is.True(errors.Is(err, ErrIndexOutOfBounds))
}

func TestPositionValid(t *testing.T) {
	is := is.New(t)
	is.True(Position(63).Valid())
	is.True(!Position(64).Valid())
}

func TestCoords(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		row, col int
		coords   string
	}{
		{0, 0, "A1"},
		{2, 3, "D3"},
		{3, 4, "E4"},
		{7, 7, "H8"},
		{7, 0, "A8"},
		{0, 7, "H1"},
	} {
		p := NewPosition(tc.row, tc.col)
		is.Equal(p.String(), tc.coords)
		back, err := ParsePosition(tc.coords)
		is.NoErr(err)
		is.Equal(back, p)
	}
	p, err := ParsePosition("d3")
	is.NoErr(err)
	is.Equal(p, NewPosition(2, 3))

	for _, bad := range []string{"", "I1", "A9", "A0", "3D", "AA1"} {
		_, err := ParsePosition(bad)
		is.True(errors.Is(err, ErrIndexOutOfBounds)) // bad coordinates
	}
}

func TestParseDiscAndPlayer(t *testing.T) {
	is := is.New(t)
	for in, want := range map[string]Disc{
		"empty": Empty, ".": Empty,
		"X": Player1Disc, "p1": Player1Disc, "Player1": Player1Disc,
		"O": Player2Disc, "2": Player2Disc,
	} {
		d, err := ParseDisc(in)
		is.NoErr(err)
		is.Equal(d, want)
	}
	_, err := ParseDisc("z")
	is.True(err != nil)

	p, err := ParsePlayer("x")
	is.NoErr(err)
	is.Equal(p, Player1)
	p, err = ParsePlayer("player2")
	is.NoErr(err)
	is.Equal(p, Player2)
	_, err = ParsePlayer("empty")
	is.True(err != nil)
}

func TestPlayerDiscEquivalence(t *testing.T) {
	is := is.New(t)
	is.Equal(Player1.Opponent(), Player2)
	is.Equal(Player2.Opponent(), Player1)
	is.True(Player1Disc.Is(Player1))
	is.True(!Player1Disc.Is(Player2))
	is.True(Player2Disc.Is(Player2))
	is.True(!Empty.Is(Player1))
	is.True(!Empty.Is(Player2))
	_, ok := Empty.Owner()
	is.True(!ok)
	owner, ok := Player2Disc.Owner()
	is.True(ok)
	is.Equal(owner, Player2)
}

func TestInvalidPlayer(t *testing.T) {
	is := is.New(t)
	bad := Player(5)
	is.Equal(bad.String(), "invalid")
	err := recoverErr(func() { bad.Opponent() })
	is.True(errors.Is(err, ErrInvariantViolation))
	err = recoverErr(func() { bad.Disc() })
	is.True(errors.Is(err, ErrInvariantViolation))
	err = recoverErr(func() { Player1Disc.Is(bad) })
	is.True(errors.Is(err, ErrInvariantViolation))
}
