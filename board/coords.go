package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reCoords = regexp.MustCompile(`^([A-Ha-h])([1-8])$`)

// String renders p as a column letter and a row number, e.g. (2, 3) is
// "D3".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("invalid(%d)", uint8(p))
	}
	return string(rune('A'+p.Col())) + strconv.Itoa(p.Row()+1)
}

// ParsePosition is the inverse of Position.String. It also accepts lower
// case column letters.
func ParsePosition(s string) (Position, error) {
	m := reCoords.FindStringSubmatch(strings.TrimSpace(s))
	if len(m) != 3 {
		return 0, fmt.Errorf("%w: cannot parse coordinates %q", ErrIndexOutOfBounds, s)
	}
	col := int(strings.ToUpper(m[1])[0] - 'A')
	row, _ := strconv.Atoi(m[2])
	return TryPosition(row-1, col)
}

// ParseDisc accepts a disc name or its display character.
func ParseDisc(s string) (Disc, error) {
	switch strings.ToLower(s) {
	case "empty", ".", "-", "0":
		return Empty, nil
	case "player1", "p1", "x", "1":
		return Player1Disc, nil
	case "player2", "p2", "o", "2":
		return Player2Disc, nil
	}
	return Empty, fmt.Errorf("unknown disc %q", s)
}

// ParsePlayer accepts a player name or number.
func ParsePlayer(s string) (Player, error) {
	d, err := ParseDisc(s)
	if err != nil {
		return 0, fmt.Errorf("unknown player %q", s)
	}
	p, ok := d.Owner()
	if !ok {
		return 0, fmt.Errorf("unknown player %q", s)
	}
	return p, nil
}

// ParseDirection accepts a direction name as printed by Direction.String,
// or a compass abbreviation such as "n" or "se".
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(s)
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	switch s {
	case "n":
		return Up, nil
	case "ne":
		return UpRight, nil
	case "e":
		return Right, nil
	case "se":
		return DownRight, nil
	case "s":
		return Down, nil
	case "sw":
		return DownLeft, nil
	case "w":
		return Left, nil
	case "nw":
		return UpLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
