package board

import "sync"

// Zobrist is the process-wide table of pseudo-random 64-bit values used to
// fingerprint a Position: one key per (piece kind, color, square), one per
// castle right, one per en-passant file, one for side-to-move. The seed is
// fixed so any two processes compute the same hash for the same position.
//
// The table is lazily initialized on first use via sync.Once rather than a
// package init(), so a caller that never hashes a position never pays the
// setup cost, while still guaranteeing the one-time barrier every reader
// needs: ensureZobristInit always runs to completion before the keys are
// read, in any goroutine.
var (
	zobristOnce sync.Once

	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristCastle     [2][2]uint64     // [Color][CastleSide]
	zobristEnPassant  [8]uint64        // one per file
	zobristSideToMove uint64
)

func ensureZobristInit() {
	zobristOnce.Do(initZobrist)
}

// prng is a xorshift64* generator used only to seed the Zobrist table
// reproducibly; not suitable for cryptographic use.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for c := White; c <= Black; c++ {
		zobristCastle[c][KingSide] = rng.next()
		zobristCastle[c][QueenSide] = rng.next()
	}
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// Hash computes the Zobrist fingerprint of pos: the xor of every applicable
// entry. Equal positions (by Position.IsSamePosition) always produce equal
// hashes; unequal positions collide with probability approximately 2^-64.
func Hash(pos *Position) uint64 {
	ensureZobristInit()

	var h uint64
	for pt := Pawn; pt <= King; pt++ {
		for it := pos.PieceBB[pt].Iter(); ; {
			sq, ok := it.Next()
			if !ok {
				break
			}
			c := White
			if pos.ColorBB[Black].Test(sq) {
				c = Black
			}
			h ^= zobristPiece[c][pt][sq]
		}
	}
	if pos.WhiteCastleKing {
		h ^= zobristCastle[White][KingSide]
	}
	if pos.WhiteCastleQueen {
		h ^= zobristCastle[White][QueenSide]
	}
	if pos.BlackCastleKing {
		h ^= zobristCastle[Black][KingSide]
	}
	if pos.BlackCastleQueen {
		h ^= zobristCastle[Black][QueenSide]
	}
	if pos.EnPassantTarget.IsValid() {
		h ^= zobristEnPassant[pos.EnPassantTarget.File()]
	}
	if pos.ActiveArmy == Black {
		h ^= zobristSideToMove
	}
	return h
}
