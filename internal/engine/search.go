package engine

import (
	"log"
	"sync"
	"sync/atomic"

	"chesscore/internal/board"
	"chesscore/internal/game"
	"chesscore/internal/workerpool"
	"golang.org/x/sync/errgroup"
)

// maxPly bounds both the killer-move table and the deepest depth an
// AIEngine will accept (MAX_PLY - 1, per spec).
const maxPly = 64

// infinity is the search's open window bound; wide enough that no real
// evaluation or mate score can reach it.
const infinity = 1 << 20

// mateValue anchors the checkmate score: a mate at ply p scores
// mateValue-p, so shorter mates are preferred over longer ones.
const mateValue = 10000

// Searcher performs iterative-deepening negamax alpha-beta search with a
// transposition table, null-move pruning (reduction R=2, recursing at
// depth-3), and killer/history move ordering. It dispatches root-move
// subtrees to a worker pool; every other node is evaluated sequentially.
type Searcher struct {
	tt      *Table
	orderer *Orderer
	pool    *workerpool.Pool
	stop    atomic.Bool

	// rootDepth is the depth the current chooseMove iteration started
	// from; ply = rootDepth - depth at any node.
	rootDepth int
}

// NewSearcher builds a searcher sharing tt and pool with its caller.
func NewSearcher(tt *Table, pool *workerpool.Pool) *Searcher {
	return &Searcher{tt: tt, orderer: NewOrderer(), pool: pool}
}

// Stop sets the cooperative stop flag; every node still in flight folds up
// to a static evaluation at its next check.
func (s *Searcher) Stop() {
	s.stop.Store(true)
}

func (s *Searcher) resetStop() {
	s.stop.Store(false)
}

// SearchRoot runs the search at depth from g's position with the given
// aspiration window, parallelizing the per-move loop across the worker
// pool. g is not mutated (root children are evaluated on private clones).
func (s *Searcher) SearchRoot(g *game.Game, depth, alpha, beta int) (board.Move, int) {
	s.rootDepth = depth
	score, move := s.node(g, depth, alpha, beta, true, true)
	return move, score
}

// negamax is the sequential (non-root) search, used both for ordinary
// recursion below the root and for the null-move probe at any node.
func (s *Searcher) negamax(g *game.Game, depth, alpha, beta int, nullAllowed bool) int {
	score, _ := s.node(g, depth, alpha, beta, nullAllowed, false)
	return score
}

// node implements one alpha-beta node: TT probe, null-move pruning, mate
// detection, move ordering, and the per-move loop — sequential unless
// isRoot, in which case the per-move loop fans out to the worker pool.
func (s *Searcher) node(g *game.Game, depth, alpha, beta int, nullAllowed, isRoot bool) (int, board.Move) {
	if s.stop.Load() {
		return evaluate(g), board.NoMove
	}
	if depth <= 0 {
		return evaluate(g), board.NoMove
	}

	key := g.Hash()
	var ttMove board.Move
	if entry, ok := s.tt.Probe(key); ok {
		ttMove = entry.BestMove
		if int(entry.Depth) >= depth {
			switch entry.Bound {
			case BoundExact:
				return int(entry.Score), entry.BestMove
			case BoundLower:
				if int(entry.Score) >= beta {
					return int(entry.Score), entry.BestMove
				}
			case BoundUpper:
				if int(entry.Score) <= alpha {
					return int(entry.Score), entry.BestMove
				}
			}
		}
	}

	ply := s.rootDepth - depth

	if nullAllowed && depth >= 3 {
		g.MakeNullMove()
		score := -s.negamax(g, depth-3, -beta, -beta+1, false)
		_ = g.UndoMove()
		if score >= beta {
			return score, ttMove
		}
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		if kingSq, found := g.Board.KingSquare(g.SideToMove()); found &&
			g.Board.IsSquareAttacked(kingSq, g.SideToMove().Other()) {
			return -(mateValue - ply), board.NoMove
		}
		return 0, board.NoMove
	}

	s.orderer.Order(moves, ttMove, ply)

	origAlpha := alpha
	best := moves[0]

	if isRoot {
		alpha, best = s.dispatchRoot(g, moves, depth, alpha, beta)
	} else {
		for _, m := range moves {
			if err := g.MakeMove(m); err != nil {
				continue
			}
			score := -s.negamax(g, depth-1, -beta, -alpha, true)
			_ = g.UndoMove()

			if score > alpha {
				alpha = score
				best = m
				s.orderer.RecordHistory(m, depth)
				if alpha >= beta {
					if !m.Flags.Has(board.Capture) {
						s.orderer.RecordCutoff(ply, m)
					}
					break
				}
			}
		}
	}

	bound := BoundExact
	switch {
	case alpha <= origAlpha:
		bound = BoundUpper
	case alpha >= beta:
		bound = BoundLower
	}
	s.tt.Store(TTEntry{Key: key, Score: int16(alpha), Depth: int8(depth), Bound: bound, BestMove: best})
	return alpha, best
}

// dispatchRoot evaluates each root move's subtree on the worker pool and
// joins the results with errgroup, serializing only the best-score update.
// Every sibling searches the same initial [alpha, beta] window — root
// subtrees deliberately forgo sharing alpha/beta updates between each
// other in exchange for parallelism (non-root nodes remain purely
// sequential, preserving standard alpha-beta semantics there).
func (s *Searcher) dispatchRoot(g *game.Game, moves []board.Move, depth, alpha, beta int) (int, board.Move) {
	var mu sync.Mutex
	bestScore := -infinity
	bestMove := moves[0]

	var eg errgroup.Group
	for _, m := range moves {
		m := m
		child := g.Clone()
		if err := child.MakeMove(m); err != nil {
			continue
		}

		eg.Go(func() error {
			future := s.pool.Enqueue(func() any {
				return -s.negamax(child, depth-1, -beta, -alpha, true)
			})
			value, err := future.Get()
			if err != nil {
				// A single corrupt subtree contributes no score; its
				// sibling's aggregation proceeds.
				log.Printf("search: root move %s->%s failed: %v", m.From, m.To, err)
				return nil
			}
			score := value.(int)

			mu.Lock()
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	if bestScore == -infinity {
		return alpha, moves[0]
	}
	return bestScore, bestMove
}
