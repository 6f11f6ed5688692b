package board

import "testing"

func TestHashIsDeterministic(t *testing.T) {
	b := NewBoard()
	h1 := Hash(b, White)
	h2 := Hash(b, White)
	if h1 != h2 {
		t.Fatalf("hashing the same position twice gave different values: %d vs %d", h1, h2)
	}
}

func TestHashDiffersBySideToMove(t *testing.T) {
	b := NewBoard()
	if Hash(b, White) == Hash(b, Black) {
		t.Fatalf("identical placement with different side to move must hash differently")
	}
}

func TestHashDiffersByPlacement(t *testing.T) {
	b1 := NewBoard()
	b2 := b1.Clone()
	b2.TakePiece(NewSquare(4, 1))
	if Hash(b1, White) == Hash(b2, White) {
		t.Fatalf("removing a piece must change the hash")
	}
}

func TestHashDiffersByCastlingRights(t *testing.T) {
	b1 := NewBoard()
	b2 := b1.Clone()
	b2.ClearCastlingRights(WhiteKingside)
	if Hash(b1, White) == Hash(b2, White) {
		t.Fatalf("losing a castling right must change the hash")
	}
}

func TestHashDiffersByEnPassantTarget(t *testing.T) {
	b1 := NewBoard()
	b2 := b1.Clone()
	b2.SetEnPassantTarget(NewSquare(4, 5))
	if Hash(b1, White) == Hash(b2, White) {
		t.Fatalf("setting an en-passant target must change the hash")
	}
}
