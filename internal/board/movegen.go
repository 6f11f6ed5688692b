package board

// Shared step tables for leaper pieces and ray directions, reused by both
// pseudo-legal generation and reverse-probing attack detection.
var (
	knightJumps = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	diagonalDirs   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// generator produces the pseudo-legal moves available to the piece on
// from, given read-only access to the board. Each piece kind has exactly
// one, selected by a dispatch table rather than virtual dispatch.
type generator func(b *Board, from Square, side Color, out []Move) []Move

var generators = [6]generator{
	King:   kingMoves,
	Queen:  queenMoves,
	Rook:   rookMoves,
	Bishop: bishopMoves,
	Knight: knightMoves,
	Pawn:   pawnMoves,
}

// PseudoLegalMoves returns every pseudo-legal move available to side,
// generated rank-major over the board and, within a square, in each
// generator's fixed internal order — so the result is order-stable for
// any given position.
func (b *Board) PseudoLegalMoves(side Color) []Move {
	moves := make([]Move, 0, 48)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			p := b.At(sq)
			if p.IsEmpty() || p.Color != side {
				continue
			}
			moves = generators[p.Type](b, sq, side, moves)
		}
	}
	return moves
}

func pawnMoves(b *Board, from Square, side Color, out []Move) []Move {
	dir := 1
	startRank := 1
	promoRank := 7
	if side == Black {
		dir = -1
		startRank = 6
		promoRank = 0
	}

	forward := Square{File: from.File, Rank: from.Rank + dir}
	if forward.IsValid() && b.IsEmpty(forward) {
		if forward.Rank == promoRank {
			out = append(out, Move{From: from, To: forward, Flags: Promotion, PromoPiece: Queen})
		} else {
			out = append(out, Move{From: from, To: forward})
		}

		if from.Rank == startRank {
			dbl := Square{File: from.File, Rank: from.Rank + 2*dir}
			if dbl.IsValid() && b.IsEmpty(dbl) {
				out = append(out, Move{From: from, To: dbl})
			}
		}
	}

	epTarget, hasEP := b.EnPassantTarget()
	for _, df := range [2]int{-1, 1} {
		cap := Square{File: from.File + df, Rank: from.Rank + dir}
		if !cap.IsValid() {
			continue
		}
		if tgt := b.At(cap); !tgt.IsEmpty() && tgt.Color != side {
			flags := Capture
			promo := NoPieceType
			if cap.Rank == promoRank {
				flags |= Promotion
				promo = Queen
			}
			out = append(out, Move{From: from, To: cap, Flags: flags, PromoPiece: promo})
			continue
		}
		if hasEP && cap == epTarget {
			out = append(out, Move{From: from, To: cap, Flags: Capture | EnPassant})
		}
	}

	return out
}

func knightMoves(b *Board, from Square, side Color, out []Move) []Move {
	for _, j := range knightJumps {
		to := Square{File: from.File + j[0], Rank: from.Rank + j[1]}
		if !to.IsValid() {
			continue
		}
		tgt := b.At(to)
		if tgt.IsEmpty() {
			out = append(out, Move{From: from, To: to})
		} else if tgt.Color != side {
			out = append(out, Move{From: from, To: to, Flags: Capture})
		}
	}
	return out
}

func slideMoves(b *Board, from Square, side Color, dirs [4][2]int, out []Move) []Move {
	for _, d := range dirs {
		for step := 1; step < 8; step++ {
			to := Square{File: from.File + d[0]*step, Rank: from.Rank + d[1]*step}
			if !to.IsValid() {
				break
			}
			tgt := b.At(to)
			if tgt.IsEmpty() {
				out = append(out, Move{From: from, To: to})
				continue
			}
			if tgt.Color != side {
				out = append(out, Move{From: from, To: to, Flags: Capture})
			}
			break
		}
	}
	return out
}

func bishopMoves(b *Board, from Square, side Color, out []Move) []Move {
	return slideMoves(b, from, side, diagonalDirs, out)
}

func rookMoves(b *Board, from Square, side Color, out []Move) []Move {
	return slideMoves(b, from, side, orthogonalDirs, out)
}

func queenMoves(b *Board, from Square, side Color, out []Move) []Move {
	out = slideMoves(b, from, side, diagonalDirs, out)
	out = slideMoves(b, from, side, orthogonalDirs, out)
	return out
}

func kingMoves(b *Board, from Square, side Color, out []Move) []Move {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			to := Square{File: from.File + dx, Rank: from.Rank + dy}
			if !to.IsValid() {
				continue
			}
			tgt := b.At(to)
			if tgt.IsEmpty() {
				out = append(out, Move{From: from, To: to})
			} else if tgt.Color != side {
				out = append(out, Move{From: from, To: to, Flags: Capture})
			}
		}
	}

	back := homeRank(side)
	opponent := side.Other()

	kingsideRight, queensideRight := WhiteKingside, WhiteQueenside
	if side == Black {
		kingsideRight, queensideRight = BlackKingside, BlackQueenside
	}

	if b.HasCastlingRight(kingsideRight) {
		f := NewSquare(5, back)
		g := NewSquare(6, back)
		e := NewSquare(4, back)
		if b.IsEmpty(f) && b.IsEmpty(g) &&
			!b.IsSquareAttacked(e, opponent) &&
			!b.IsSquareAttacked(f, opponent) &&
			!b.IsSquareAttacked(g, opponent) {
			out = append(out, Move{From: from, To: g, Flags: CastlingKingside})
		}
	}

	if b.HasCastlingRight(queensideRight) {
		d := NewSquare(3, back)
		c := NewSquare(2, back)
		bsq := NewSquare(1, back)
		e := NewSquare(4, back)
		if b.IsEmpty(d) && b.IsEmpty(c) && b.IsEmpty(bsq) &&
			!b.IsSquareAttacked(e, opponent) &&
			!b.IsSquareAttacked(d, opponent) &&
			!b.IsSquareAttacked(c, opponent) {
			out = append(out, Move{From: from, To: c, Flags: CastlingQueenside})
		}
	}

	return out
}
