package engine

import (
	"testing"

	"chesscore/internal/board"
	"chesscore/internal/game"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	g := game.NewGame()
	if got := evaluate(g); got != 0 {
		t.Fatalf("a symmetric starting position should evaluate to 0, got %d", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	b := board.NewEmptyBoard()
	b.PutPiece(board.NewSquare(4, 0), board.NewPiece(board.King, board.White))
	b.PutPiece(board.NewSquare(4, 7), board.NewPiece(board.King, board.Black))
	b.PutPiece(board.NewSquare(0, 0), board.NewPiece(board.Queen, board.White))
	g := game.NewGameFromBoard(b, board.White)

	if got := evaluate(g); got <= 0 {
		t.Fatalf("white up a queen should evaluate positive for white to move, got %d", got)
	}
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	b := board.NewEmptyBoard()
	b.PutPiece(board.NewSquare(4, 0), board.NewPiece(board.King, board.White))
	b.PutPiece(board.NewSquare(4, 7), board.NewPiece(board.King, board.Black))
	b.PutPiece(board.NewSquare(0, 0), board.NewPiece(board.Queen, board.White))

	white := evaluate(game.NewGameFromBoard(b, board.White))
	black := evaluate(game.NewGameFromBoard(b, board.Black))
	if white != -black {
		t.Fatalf("flipping side to move on an identical position should negate the score: %d vs %d", white, black)
	}
}
