// Package game layers side-to-move, reversible make/undo history, and
// legal-move filtering on top of package board's piece placement and
// pseudo-legal generation.
package game

import (
	"chesscore/internal/board"
)

// HistoryEntry records everything needed to reverse exactly one ply
// (including a null move): the move itself, the piece it captured (if
// any — ownership passes to the entry on make, and back to the board on
// undo), and the castling rights / en-passant target that were in force
// immediately before the move.
type HistoryEntry struct {
	Move               board.Move
	Captured           board.Piece
	PrevCastlingRights board.CastlingRights
	PrevEnPassant      board.Square
}

// Game is a position plus whose turn it is and the ordered history that
// makes undo possible. Board is held by pointer, so a plain struct copy of
// a Game shares its Board; Clone is the deep copy the search uses to hand
// each worker a privately-owned position.
type Game struct {
	Board      *board.Board
	sideToMove board.Color
	history    []HistoryEntry
}

// NewGame returns a game at the standard starting position, white to move.
func NewGame() *Game {
	return &Game{Board: board.NewBoard(), sideToMove: board.White}
}

// NewGameFromBoard wraps an already-assembled board (typically built by
// hand in a test) with the given side to move and empty history.
func NewGameFromBoard(b *board.Board, sideToMove board.Color) *Game {
	return &Game{Board: b, sideToMove: sideToMove}
}

// Clone returns a deep copy: its own Board, its own history slice. Mutating
// the clone — via MakeMove, MakeNullMove, or UndoMove — never touches the
// original, which is what lets the worker pool hand each root subtree an
// independently mutable Game.
func (g *Game) Clone() *Game {
	cp := &Game{
		Board:      g.Board.Clone(),
		sideToMove: g.sideToMove,
		history:    make([]HistoryEntry, len(g.history)),
	}
	copy(cp.history, g.history)
	return cp
}

// SideToMove returns whose turn it is.
func (g *Game) SideToMove() board.Color {
	return g.sideToMove
}

// History returns the move history, oldest first. The slice is owned by
// Game; callers must not mutate it.
func (g *Game) History() []HistoryEntry {
	return g.history
}

// Hash returns the Zobrist fingerprint of the current position.
func (g *Game) Hash() uint64 {
	return board.Hash(g.Board, g.sideToMove)
}

// MakeMove applies m. It fails, leaving the game untouched, if from or to
// is off the board, no piece of the side to move sits on from, or the
// destination holds a friendly piece.
func (g *Game) MakeMove(m board.Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return board.NewRuleError("move out of board: %s->%s", m.From, m.To)
	}

	mover := g.Board.At(m.From)
	if mover.IsEmpty() || mover.Color != g.sideToMove {
		return board.NewRuleError("no %s piece on source square %s", g.sideToMove, m.From)
	}
	if target := g.Board.At(m.To); !target.IsEmpty() && target.Color == mover.Color {
		return board.NewRuleError("cannot capture own piece on %s", m.To)
	}

	entry := HistoryEntry{
		Move:               m,
		Captured:           board.NoPiece,
		PrevCastlingRights: g.Board.CastlingRights(),
	}
	entry.PrevEnPassant, _ = g.Board.EnPassantTarget()

	if m.Flags.Has(board.EnPassant) {
		capSq := board.NewSquare(m.To.File, m.From.Rank)
		entry.Captured = g.Board.TakePiece(capSq)
	} else if m.Flags.Has(board.Capture) {
		entry.Captured = g.Board.TakePiece(m.To)
	}

	g.updateCastlingRights(m, mover, entry.Captured)

	g.Board.TakePiece(m.From)
	placed := mover
	if m.Flags.Has(board.Promotion) {
		placed = board.NewPiece(m.PromoPiece, mover.Color)
	}

	switch {
	case m.Flags.Has(board.CastlingKingside):
		back := homeRank(g.sideToMove)
		g.Board.PutPiece(m.To, placed)
		rook := g.Board.TakePiece(board.NewSquare(7, back))
		g.Board.PutPiece(board.NewSquare(5, back), rook)
	case m.Flags.Has(board.CastlingQueenside):
		back := homeRank(g.sideToMove)
		g.Board.PutPiece(m.To, placed)
		rook := g.Board.TakePiece(board.NewSquare(0, back))
		g.Board.PutPiece(board.NewSquare(3, back), rook)
	default:
		g.Board.PutPiece(m.To, placed)
	}

	g.Board.SetEnPassantTarget(board.NoSquare)
	if mover.Type == board.Pawn {
		if d := m.To.Rank - m.From.Rank; d == 2 || d == -2 {
			g.Board.SetEnPassantTarget(board.NewSquare(m.From.File, (m.From.Rank+m.To.Rank)/2))
		}
	}

	g.history = append(g.history, entry)
	g.sideToMove = g.sideToMove.Other()
	return nil
}

// updateCastlingRights clears rights bits invalidated by this move: the
// mover's own king moving, the mover's own rook leaving its home square,
// or an opponent rook being captured on its home square.
func (g *Game) updateCastlingRights(m board.Move, mover, captured board.Piece) {
	rights := g.Board.CastlingRights()
	myBack := homeRank(g.sideToMove)

	kingsideRight, queensideRight := board.WhiteKingside, board.WhiteQueenside
	oppKingsideRight, oppQueensideRight := board.BlackKingside, board.BlackQueenside
	if g.sideToMove == board.Black {
		kingsideRight, queensideRight = board.BlackKingside, board.BlackQueenside
		oppKingsideRight, oppQueensideRight = board.WhiteKingside, board.WhiteQueenside
	}

	if mover.Type == board.King {
		rights &^= kingsideRight | queensideRight
	}
	if mover.Type == board.Rook {
		if m.From == board.NewSquare(0, myBack) {
			rights &^= queensideRight
		}
		if m.From == board.NewSquare(7, myBack) {
			rights &^= kingsideRight
		}
	}
	if captured.Type == board.Rook {
		opBack := homeRank(g.sideToMove.Other())
		if m.To == board.NewSquare(0, opBack) {
			rights &^= oppQueensideRight
		}
		if m.To == board.NewSquare(7, opBack) {
			rights &^= oppKingsideRight
		}
	}

	g.Board.SetCastlingRights(rights)
}

// MakeNullMove pushes a pseudo-ply that forfeits the turn without moving
// anything: no captured piece, no square changes, en-passant cleared.
// Search uses it to test how far above beta a side stands.
func (g *Game) MakeNullMove() {
	entry := HistoryEntry{
		Move:               board.NewNullMove(),
		PrevCastlingRights: g.Board.CastlingRights(),
	}
	entry.PrevEnPassant, _ = g.Board.EnPassantTarget()

	g.history = append(g.history, entry)
	g.Board.SetEnPassantTarget(board.NoSquare)
	g.sideToMove = g.sideToMove.Other()
}

// UndoMove reverses exactly the most recent make (including a null move).
// It requires the history be non-empty.
func (g *Game) UndoMove() error {
	if len(g.history) == 0 {
		return board.NewRuleError("undo called with empty history")
	}

	entry := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	m := entry.Move

	g.sideToMove = g.sideToMove.Other()
	g.Board.SetCastlingRights(entry.PrevCastlingRights)
	g.Board.SetEnPassantTarget(entry.PrevEnPassant)

	if m.Flags.Has(board.NullMove) {
		return nil
	}

	back := homeRank(g.sideToMove)
	piece := g.Board.TakePiece(m.To)
	if m.Flags.Has(board.Promotion) {
		piece = board.NewPiece(board.Pawn, g.sideToMove)
	}

	switch {
	case m.Flags.Has(board.CastlingKingside):
		g.Board.PutPiece(m.From, piece)
		rook := g.Board.TakePiece(board.NewSquare(5, back))
		g.Board.PutPiece(board.NewSquare(7, back), rook)
	case m.Flags.Has(board.CastlingQueenside):
		g.Board.PutPiece(m.From, piece)
		rook := g.Board.TakePiece(board.NewSquare(3, back))
		g.Board.PutPiece(board.NewSquare(0, back), rook)
	default:
		g.Board.PutPiece(m.From, piece)
	}

	if !entry.Captured.IsEmpty() {
		if m.Flags.Has(board.EnPassant) {
			g.Board.PutPiece(board.NewSquare(m.To.File, m.From.Rank), entry.Captured)
		} else {
			g.Board.PutPiece(m.To, entry.Captured)
		}
	}

	return nil
}

// LegalMoves returns every move the side to move may legally play: every
// pseudo-legal move that, once applied, does not leave its own king
// attacked. An empty result means checkmate (if the king is currently
// attacked) or stalemate (if it is not).
//
// This filters by apply/test/undo on the receiver rather than by copying
// the Game per candidate — cheaper, and the reference implementation's
// copy-per-move approach is an explicitly permitted alternative (both
// preserve identical semantics), not a required one.
func (g *Game) LegalMoves() []board.Move {
	pseudo := g.Board.PseudoLegalMoves(g.sideToMove)
	mover := g.sideToMove
	legal := make([]board.Move, 0, len(pseudo))

	for _, m := range pseudo {
		if err := g.MakeMove(m); err != nil {
			continue
		}
		kingSq, found := g.Board.KingSquare(mover)
		safe := found && !g.Board.IsSquareAttacked(kingSq, mover.Other())
		_ = g.UndoMove()
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

func homeRank(c board.Color) int {
	if c == board.White {
		return 0
	}
	return 7
}
