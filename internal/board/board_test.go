package board

import "testing"

func TestNewBoardStartingMaterial(t *testing.T) {
	b := NewBoard()
	counts := map[Piece]int{}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.At(NewSquare(file, rank))
			if !p.IsEmpty() {
				counts[p]++
			}
		}
	}
	if counts[NewPiece(Pawn, White)] != 8 || counts[NewPiece(Pawn, Black)] != 8 {
		t.Fatalf("expected 8 pawns per side, got %+v", counts)
	}
	if counts[NewPiece(King, White)] != 1 || counts[NewPiece(King, Black)] != 1 {
		t.Fatalf("expected exactly one king per side, got %+v", counts)
	}
	if b.CastlingRights() != AllCastlingRights {
		t.Fatalf("expected all castling rights at start, got %v", b.CastlingRights())
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Fatalf("expected no en-passant target at start")
	}
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	sq, found := b.KingSquare(White)
	if !found || sq != NewSquare(4, 0) {
		t.Fatalf("white king at %v, found=%v", sq, found)
	}
	sq, found = b.KingSquare(Black)
	if !found || sq != NewSquare(4, 7) {
		t.Fatalf("black king at %v, found=%v", sq, found)
	}
}

func TestIsSquareAttackedSymmetric(t *testing.T) {
	b := NewEmptyBoard()
	b.PutPiece(NewSquare(3, 3), NewPiece(Rook, White))
	if !b.IsSquareAttacked(NewSquare(3, 6), White) {
		t.Fatalf("expected rook on d4 to attack d7")
	}
	if b.IsSquareAttacked(NewSquare(3, 6), Black) {
		t.Fatalf("no black piece on the board; nothing should attack d7")
	}

	b.PutPiece(NewSquare(3, 5), NewPiece(Pawn, Black))
	if !b.IsSquareAttacked(NewSquare(3, 5), White) {
		t.Fatalf("blocking pawn should not remove the rook's attack on its own square")
	}
	if b.IsSquareAttacked(NewSquare(3, 6), White) {
		t.Fatalf("rook on d4 should not attack d7 through a blocking pawn on d6")
	}
}

func TestPawnAttackDirectionByColor(t *testing.T) {
	b := NewEmptyBoard()
	b.PutPiece(NewSquare(4, 3), NewPiece(Pawn, White))
	if !b.IsSquareAttacked(NewSquare(3, 4), White) || !b.IsSquareAttacked(NewSquare(5, 4), White) {
		t.Fatalf("white pawn on e4 should attack d5 and f5")
	}
	if b.IsSquareAttacked(NewSquare(3, 2), White) {
		t.Fatalf("white pawn on e4 should not attack backward onto d3")
	}
}

func TestKnightAndKingAttacks(t *testing.T) {
	b := NewEmptyBoard()
	b.PutPiece(NewSquare(1, 0), NewPiece(Knight, White))
	if !b.IsSquareAttacked(NewSquare(3, 1), White) {
		t.Fatalf("knight on b1 should attack d2")
	}

	b2 := NewEmptyBoard()
	b2.PutPiece(NewSquare(4, 4), NewPiece(King, Black))
	if !b2.IsSquareAttacked(NewSquare(4, 5), Black) {
		t.Fatalf("king on e5 should attack e6")
	}
	if b2.IsSquareAttacked(NewSquare(4, 6), Black) {
		t.Fatalf("king on e5 should not attack e7")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	cp := b.Clone()
	cp.TakePiece(NewSquare(4, 1))
	if b.IsEmpty(NewSquare(4, 1)) {
		t.Fatalf("mutating the clone must not affect the original")
	}
}
