package engine

import (
	"chesscore/internal/board"
	"chesscore/internal/game"
)

// evaluate returns a side-to-move-relative static score for g: material
// plus a mobility bonus of 5*(ownLegalMoves - opponentLegalMoves). The
// mobility term is computed by null-moving a clone to see the position
// from the opponent's side without disturbing g.
//
// If neither side has a legal move this is a degenerate position (no
// search node should reach evaluate() in that state without having first
// detected mate/stalemate) and the function returns 0 rather than guess.
func evaluate(g *game.Game) int {
	ownMoves := g.LegalMoves()

	flipped := g.Clone()
	flipped.MakeNullMove()
	oppMoves := flipped.LegalMoves()

	if len(ownMoves) == 0 && len(oppMoves) == 0 {
		return 0
	}

	score := 0
	b := g.Board
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.At(board.NewSquare(file, rank))
			if p.IsEmpty() {
				continue
			}
			v := p.Type.Value()
			if p.Color == board.White {
				score += v
			} else {
				score -= v
			}
		}
	}

	if g.SideToMove() == board.Black {
		score = -score
	}

	score += 5 * (len(ownMoves) - len(oppMoves))
	return score
}
