package zobrist

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/othello/board"
)

const bignum = 1<<63 - 2

// SeedSize is the length of a seed for InitializeWithSeed.
const SeedSize = 32

// Zobrist generates a zobrist hash for a board position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	player2ToMove uint64

	// one key per cell per player disc; empty cells contribute nothing
	posTable [board.NumCells][2]uint64
}

type uint64Source interface {
	Uint64n(n uint64) uint64
}

// Initialize fills the key tables from the system entropy source.
func (z *Zobrist) Initialize() {
	z.fill(frand.New())
}

// InitializeWithSeed fills the key tables deterministically, so that two
// processes agree on hashes.
func (z *Zobrist) InitializeWithSeed(seed [SeedSize]byte) {
	z.fill(frand.NewCustom(seed[:], 1024, 12))
}

func (z *Zobrist) fill(rng uint64Source) {
	for i := range z.posTable {
		for j := range z.posTable[i] {
			z.posTable[i][j] = rng.Uint64n(bignum) + 1
		}
	}
	z.player2ToMove = rng.Uint64n(bignum) + 1
	log.Debug().Int("cells", len(z.posTable)).Msg("zobrist tables initialized")
}

func (z *Zobrist) key(p board.Position, d board.Disc) uint64 {
	switch d {
	case board.Player1Disc:
		return z.posTable[p.Index()][0]
	case board.Player2Disc:
		return z.posTable[p.Index()][1]
	}
	return 0
}

// Hash computes the hash of b with toMove to play.
func (z *Zobrist) Hash(b *board.Board, toMove board.Player) uint64 {
	key := uint64(0)
	for p, d := range b.Cells() {
		key ^= z.key(p, d)
	}
	if toMove == board.Player2 {
		key ^= z.player2ToMove
	}
	return key
}

// SetPiece updates key for a cell changing from old to next. Call it
// alongside Board.SetPiece to keep a running hash without rescanning.
func (z *Zobrist) SetPiece(key uint64, p board.Position, old, next board.Disc) uint64 {
	return key ^ z.key(p, old) ^ z.key(p, next)
}

// SwitchTurn flips the side to move in key.
func (z *Zobrist) SwitchTurn(key uint64) uint64 {
	return key ^ z.player2ToMove
}
