package engine

import (
	"fmt"
	"time"

	"chesscore/internal/board"
	"chesscore/internal/game"
	"chesscore/internal/workerpool"
)

// MaxPly is the largest depth SetMaxDepth accepts (exclusive).
const MaxPly = maxPly

// Options configures a new AIEngine.
type Options struct {
	// MaxDepth is the iterative-deepening ceiling; clamped to [1, MaxPly-1].
	MaxDepth int
	// TimeMs is the per-move time budget; clamped up to at least 100ms.
	TimeMs int
	// UseNNUE is reserved for a future learned evaluator. It is accepted
	// for forward compatibility but evaluate() never consults it.
	UseNNUE bool
}

// AIEngine chooses moves by iterative-deepening negamax alpha-beta search,
// dispatching root-level subtrees to a worker pool. One AIEngine owns one
// transposition table and one killer/history table, both reused across
// calls to ChooseMove. The killer/history table is cleared at the start of
// each call; the transposition table is not.
type AIEngine struct {
	searcher *Searcher
	tt       *Table

	maxDepth int
	timeMs   int
	useNNUE  bool
}

// NewAIEngine builds an engine that dispatches root-move subtrees to pool.
func NewAIEngine(pool *workerpool.Pool, opts Options) *AIEngine {
	maxDepth := opts.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}
	if maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}
	timeMs := opts.TimeMs
	if timeMs < 100 {
		timeMs = 100
	}

	tt := NewTable()
	return &AIEngine{
		searcher: NewSearcher(tt, pool),
		tt:       tt,
		maxDepth: maxDepth,
		timeMs:   timeMs,
		useNNUE:  opts.UseNNUE,
	}
}

// SetTimeLimit changes the per-move time budget. ms must be at least 100.
func (e *AIEngine) SetTimeLimit(ms int) error {
	if ms < 100 {
		return &EngineError{msg: fmt.Sprintf("time limit %dms below 100ms minimum", ms)}
	}
	e.timeMs = ms
	return nil
}

// SetMaxDepth changes the iterative-deepening depth ceiling. depth must lie
// in [1, MaxPly).
func (e *AIEngine) SetMaxDepth(depth int) error {
	if depth < 1 || depth >= MaxPly {
		return &EngineError{msg: fmt.Sprintf("search depth %d outside [1, %d)", depth, MaxPly)}
	}
	e.maxDepth = depth
	return nil
}

// ChooseMove searches rootGame for up to the configured time and depth
// budget and returns the best move found. rootGame itself is never
// mutated — the search runs against a private clone. If rootGame has no
// legal moves the result is board.NoMove; callers are expected to have
// already checked for game end.
func (e *AIEngine) ChooseMove(rootGame *game.Game) board.Move {
	e.searcher.resetStop()
	e.searcher.orderer.Clear()

	g := rootGame.Clone()
	legal := g.LegalMoves()
	if len(legal) == 0 {
		return board.NoMove
	}

	start := time.Now()
	budget := time.Duration(e.timeMs) * time.Millisecond
	alpha, beta := -infinity, infinity

	for depth := 1; depth <= e.maxDepth; depth++ {
		_, score := e.searcher.SearchRoot(g, depth, alpha, beta)

		if score <= alpha || score >= beta {
			_, score = e.searcher.SearchRoot(g, depth, -infinity, infinity)
		}

		alpha = score - 50
		beta = score + 50

		if e.searcher.stop.Load() || time.Since(start) > budget {
			e.searcher.Stop()
			break
		}
	}

	if entry, ok := e.tt.Probe(g.Hash()); ok && entry.BestMove != board.NoMove {
		return entry.BestMove
	}
	return legal[0]
}
