package board

import "fmt"

// MoveFlags is a bitset over a move's special properties. The set is
// disjoint-ish by construction of the generator (a move is never both
// castling-kingside and castling-queenside), but capture/promotion/en
// passant can combine (a pawn capturing onto the back rank is both
// Capture and Promotion).
type MoveFlags uint8

const (
	Quiet MoveFlags = 0
	// Capture marks a move that removes an enemy piece from the
	// destination square (or, with EnPassant, one rank behind it).
	Capture           MoveFlags = 1 << 0
	Promotion         MoveFlags = 1 << 1
	EnPassant         MoveFlags = 1 << 2
	CastlingKingside  MoveFlags = 1 << 3
	CastlingQueenside MoveFlags = 1 << 4
	// NullMove marks the pseudo-ply search uses to probe how far above
	// beta a side stands. The move generator never produces it.
	NullMove MoveFlags = 1 << 5
)

// Has reports whether all bits of other are set in f.
func (f MoveFlags) Has(other MoveFlags) bool {
	return f&other == other
}

// Move is a single ply: origin, destination, its flag bitset, and — only
// meaningful under Promotion — the piece type promoted to. Equality is
// structural over all four fields, matching Go's native struct ==.
type Move struct {
	From       Square
	To         Square
	Flags      MoveFlags
	PromoPiece PieceType
}

// NoMove is the zero-value sentinel for "no move chosen".
var NoMove = Move{}

// NewNullMove builds the null move search uses for null-move pruning.
func NewNullMove() Move {
	return Move{Flags: NullMove}
}

// String renders UCI-style notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Flags.Has(Promotion) {
		chars := map[PieceType]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}
		s += string(chars[m.PromoPiece])
	}
	return s
}

// ParseMove parses a UCI-style move string such as "e2e4" or "e7e8q".
// It does not validate that the move is legal or even pseudo-legal for
// the given position; callers that need that should check membership in
// a generated move list.
func ParseMove(s string) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("board: invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.PromoPiece = Queen
		case 'r':
			m.PromoPiece = Rook
		case 'b':
			m.PromoPiece = Bishop
		case 'n':
			m.PromoPiece = Knight
		default:
			return NoMove, fmt.Errorf("board: invalid promotion piece %q", s[4:])
		}
		m.Flags |= Promotion
	}
	return m, nil
}
