package board

// This file contains some sample boards, used solely for testing.

var (
	// AfterD3 is the default board after player 1 opens at D3 and the
	// disc at D4 has been flipped.
	AfterD3 = []string{
		"........",
		"........",
		"...X....",
		"...XX...",
		"...XO...",
		"........",
		"........",
		"........",
	}

	// LongDiagonal has a run of player 2 discs along the main diagonal,
	// capped by player 1 at H8. Player 1 may play A1 to capture the run;
	// player 2 has nothing to close against there.
	LongDiagonal = []string{
		"........",
		".O......",
		"..O.....",
		"...O....",
		"....O...",
		".....O..",
		"......O.",
		".......X",
	}

	// OpenRun has player 2 discs running to the right edge with nothing to
	// close them, so player 1 cannot play at A1.
	OpenRun = []string{
		".OOOOOOO",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	}

	// GappedRun has a run interrupted by an empty cell before player 1's
	// closing disc.
	GappedRun = []string{
		"........",
		"........",
		"........",
		".OO.X...",
		"........",
		"........",
		"........",
		"........",
	}

	// WrapTrap puts a player 1 disc on the next row's left edge, directly
	// after a run that reaches the right edge. A board that wrapped around
	// would wrongly let player 1 play D3.
	WrapTrap = []string{
		"........",
		"........",
		"....OOOO",
		"X.......",
		"........",
		"........",
		"........",
		"........",
	}

	// Full has no empty cells left.
	Full = []string{
		"XXXXXXXX",
		"OOOOOOOO",
		"XXXXXXXX",
		"OOOOOOOO",
		"XXXXXXXX",
		"OOOOOOOO",
		"XXXXXXXX",
		"OOOOOOOO",
	}
)
