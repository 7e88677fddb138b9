package board

// IsLegalMove reports whether player may place a disc at p. The cell must
// be empty, and at least one straight line from it must run through one or
// more opponent discs and end on one of player's own discs before reaching
// an empty cell or the edge.
func (b *Board) IsLegalMove(p Position, player Player) bool {
	if b.At(p) != Empty {
		return false
	}
	opp := player.Opponent()
	nbs := NewNeighbours(b, p)
	for nb, ok := nbs.Next(); ok; nb, ok = nbs.Next() {
		if !nb.Disc.Is(opp) {
			continue
		}
		if b.closes(p, nb.Dir, player) {
			return true
		}
	}
	return false
}

// closes walks from center in dir over a run of opponent discs, looking
// for a disc of player that ends it.
func (b *Board) closes(center Position, dir Direction, player Player) bool {
	s := NewStrider(b, center, dir)
	for _, d, ok := s.Next(); ok; _, d, ok = s.Next() {
		switch {
		case d == Empty:
			return false
		case d.Is(player):
			return true
		}
	}
	return false
}
