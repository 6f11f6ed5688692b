// Command chesscore-cli drives an AIEngine against itself from the
// standard starting position, logging each chosen move until the side to
// move has no legal move or the -max-moves ply cap is reached. It exists
// to exercise the engine end to end; it is
// not a UCI or other GUI-facing protocol handler.
package main

import (
	"flag"
	"log"

	"chesscore/internal/board"
	"chesscore/internal/engine"
	"chesscore/internal/game"
	"chesscore/internal/workerpool"
)

var (
	maxDepth = flag.Int("depth", 6, "iterative-deepening depth ceiling")
	timeMs   = flag.Int("time-ms", 2000, "per-move search budget in milliseconds")
	workers  = flag.Int("workers", 4, "worker pool size for root-move search")
	maxMoves = flag.Int("max-moves", 200, "stop after this many plies regardless of game state")
)

func main() {
	flag.Parse()

	pool := workerpool.New(*workers)
	defer pool.Close()

	eng := engine.NewAIEngine(pool, engine.Options{
		MaxDepth: *maxDepth,
		TimeMs:   *timeMs,
	})

	g := game.NewGame()
	for ply := 0; ply < *maxMoves; ply++ {
		legal := g.LegalMoves()
		if len(legal) == 0 {
			if kingSq, found := g.Board.KingSquare(g.SideToMove()); found &&
				g.Board.IsSquareAttacked(kingSq, g.SideToMove().Other()) {
				log.Printf("checkmate, %s to move has no escape", g.SideToMove())
			} else {
				log.Printf("stalemate, %s to move has no legal move", g.SideToMove())
			}
			return
		}

		mover := g.SideToMove()
		move := eng.ChooseMove(g)
		if move == board.NoMove {
			log.Printf("engine returned no move at ply %d; stopping", ply)
			return
		}
		if err := g.MakeMove(move); err != nil {
			log.Fatalf("engine chose an illegal move %s: %v", move, err)
		}
		log.Printf("ply %d: %s plays %s", ply, mover, move)
	}
	log.Printf("reached %d-ply cap without a decisive result", *maxMoves)
}
