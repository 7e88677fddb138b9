package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func collectRay(s *Strider) [][2]int {
	var out [][2]int
	for p := range s.All() {
		out = append(out, [2]int{p.Row(), p.Col()})
	}
	return out
}

func TestStriderFromCenter(t *testing.T) {
	b := EmptyBoard()
	center := NewPosition(3, 4)
	for _, tc := range []struct {
		dir      Direction
		expected [][2]int
	}{
		{Up, [][2]int{{2, 4}, {1, 4}, {0, 4}}},
		{UpRight, [][2]int{{2, 5}, {1, 6}, {0, 7}}},
		{Right, [][2]int{{3, 5}, {3, 6}, {3, 7}}},
		{DownRight, [][2]int{{4, 5}, {5, 6}, {6, 7}}},
		{Down, [][2]int{{4, 4}, {5, 4}, {6, 4}, {7, 4}}},
		{DownLeft, [][2]int{{4, 3}, {5, 2}, {6, 1}, {7, 0}}},
		{Left, [][2]int{{3, 3}, {3, 2}, {3, 1}, {3, 0}}},
		{UpLeft, [][2]int{{2, 3}, {1, 2}, {0, 1}}},
	} {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, collectRay(NewStrider(&b, center, tc.dir)))
		})
	}
}

func TestStriderEndsAtEdge(t *testing.T) {
	is := is.New(t)
	b := EmptyBoard()
	s := NewStrider(&b, NewPosition(0, 4), Up)
	_, _, ok := s.Next()
	is.True(!ok)
	_, _, ok = s.Next()
	is.True(!ok)

	// never wraps onto the next row
	s = NewStrider(&b, NewPosition(2, 7), Right)
	_, _, ok = s.Next()
	is.True(!ok)
	s = NewStrider(&b, NewPosition(3, 0), UpLeft)
	_, _, ok = s.Next()
	is.True(!ok)
}

func TestStriderYieldsDiscs(t *testing.T) {
	is := is.New(t)
	b := MustFromRows(LongDiagonal...)
	s := NewStrider(&b, NewPosition(0, 0), DownRight)
	var discs []Disc
	for _, d := range s.All() {
		discs = append(discs, d)
	}
	is.Equal(len(discs), 7)
	for _, d := range discs[:6] {
		is.Equal(d, Player2Disc)
	}
	is.Equal(discs[6], Player1Disc)
}

func TestStriderToward(t *testing.T) {
	is := is.New(t)
	b := EmptyBoard()
	s := StriderToward(&b, NewPosition(3, 4), NewPosition(2, 4))
	is.Equal(s.Direction(), Up)
	is.Equal(len(collectRay(s)), 3)

	s = StriderToward(&b, NewPosition(3, 4), NewPosition(4, 4))
	is.Equal(s.Direction(), Down)
	is.Equal(len(collectRay(s)), 4)
}

func TestDirectionBetween(t *testing.T) {
	is := is.New(t)
	center := NewPosition(3, 3)
	for _, tc := range []struct {
		row, col int
		dir      Direction
	}{
		{2, 3, Up},
		{2, 4, UpRight},
		{3, 4, Right},
		{4, 4, DownRight},
		{4, 3, Down},
		{4, 2, DownLeft},
		{3, 2, Left},
		{2, 2, UpLeft},
	} {
		is.Equal(DirectionBetween(center, NewPosition(tc.row, tc.col)), tc.dir)
	}
}

func TestDirectionBetweenNotAdjacent(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		center, other Position
	}{
		{NewPosition(3, 3), NewPosition(3, 3)},
		{NewPosition(3, 3), NewPosition(5, 3)},
		{NewPosition(0, 0), NewPosition(7, 7)},
		// index deltas of 1, 7 and 9 that wrap across an edge
		{NewPosition(2, 7), NewPosition(3, 0)},
		{NewPosition(3, 0), NewPosition(2, 7)},
		{NewPosition(3, 7), NewPosition(3, 0)},
		{NewPosition(3, 0), NewPosition(1, 7)},
	} {
		err := recoverErr(func() { DirectionBetween(tc.center, tc.other) })
		is.True(errors.Is(err, ErrInvariantViolation))
	}
}

func TestDirectionOpposite(t *testing.T) {
	is := is.New(t)
	for _, d := range Directions {
		is.Equal(d.Opposite().Opposite(), d)
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		is.Equal(dr, -or)
		is.Equal(dc, -oc)
	}
}

func TestParseDirection(t *testing.T) {
	is := is.New(t)
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		is.NoErr(err)
		is.Equal(got, d)
	}
	d, err := ParseDirection("SE")
	is.NoErr(err)
	is.Equal(d, DownRight)
	_, err = ParseDirection("sideways")
	is.True(err != nil)
}
