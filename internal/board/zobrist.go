package board

import "sync"

// Zobrist hashing constants. A single process-wide table is populated once
// (lazily, thread-safe via sync.Once) and never mutated again. The seed is
// fixed so hashes are reproducible across runs, matching the reference
// implementation's std::mt19937_64 rng(2025).
const zobristSeed uint64 = 2025

var (
	zobristOnce sync.Once

	// zobristPiece is indexed [Square.Index()][PieceType][Color].
	zobristPiece     [64][6][2]uint64
	zobristSide      uint64
	zobristCastling  [16]uint64 // one per 4-bit castling-rights mask
	zobristEnPassant [8]uint64  // one per file
)

// xorshiftPRNG is a minimal reproducible generator: fast, and — unlike
// math/rand — a fixed seed yields the same stream regardless of Go version.
type xorshiftPRNG struct {
	state uint64
}

func newXorshiftPRNG(seed uint64) *xorshiftPRNG {
	if seed == 0 {
		seed = 1
	}
	return &xorshiftPRNG{state: seed}
}

func (p *xorshiftPRNG) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// initZobrist populates the Zobrist tables exactly once, idempotently.
func initZobrist() {
	zobristOnce.Do(func() {
		rng := newXorshiftPRNG(zobristSeed)
		for sq := 0; sq < 64; sq++ {
			for pt := King; pt <= Pawn; pt++ {
				for c := White; c <= Black; c++ {
					zobristPiece[sq][pt][c] = rng.next()
				}
			}
		}
		zobristSide = rng.next()
		for i := range zobristCastling {
			zobristCastling[i] = rng.next()
		}
		for f := range zobristEnPassant {
			zobristEnPassant[f] = rng.next()
		}
	})
}

// Hash returns the Zobrist fingerprint of the board: the XOR of every
// occupied square's piece key, the castling-rights key, the en-passant
// key (if a target is set, indexed by file only), and the side-to-move
// key iff white is to move. It is a pure function of those four
// ingredients, so two positions agreeing on all four hash identically.
func Hash(b *Board, sideToMove Color) uint64 {
	initZobrist()

	var h uint64
	for idx := 0; idx < 64; idx++ {
		p := b.squares[idx]
		if p.IsEmpty() {
			continue
		}
		h ^= zobristPiece[idx][p.Type][p.Color]
	}
	h ^= zobristCastling[b.castlingRights]
	if b.enPassant.IsValid() {
		h ^= zobristEnPassant[b.enPassant.File]
	}
	if sideToMove == White {
		h ^= zobristSide
	}
	return h
}
