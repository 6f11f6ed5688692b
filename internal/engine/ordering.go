package engine

import (
	"sort"

	"chesscore/internal/board"
)

// Move-ordering priorities, highest tried first. Ties fall through to the
// history heuristic and preserve generator order (stable sort).
const (
	ttMoveScore  = 10000
	captureScore = 8000
	killer0Score = 5000
	killer1Score = 4000
)

// historyCap bounds the history heuristic so repeated depth^2 increments
// across a long search cannot overflow into a sign change.
const historyCap = 1 << 24

// Orderer holds the killer-move table and history heuristic that bias move
// ordering from one search to the next. Killers are indexed by ply; history
// is indexed by [from][to], shared across the whole search.
type Orderer struct {
	killers [maxPly][2]board.Move
	history [64][64]int
}

// NewOrderer returns an empty orderer.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Clear resets killers and history for a new chooseMove call.
func (o *Orderer) Clear() {
	for i := range o.killers {
		o.killers[i][0] = board.NoMove
		o.killers[i][1] = board.NoMove
	}
	for i := range o.history {
		for j := range o.history[i] {
			o.history[i][j] = 0
		}
	}
}

// RecordCutoff records a non-capture move that produced a beta cutoff at
// ply, pushing the previous killer-0 down to killer-1.
func (o *Orderer) RecordCutoff(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if o.killers[ply][0] == m {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = m
}

// RecordHistory adds depth^2 to the (from, to) history counter, saturating
// at historyCap.
func (o *Orderer) RecordHistory(m board.Move, depth int) {
	v := o.history[m.From.Index()][m.To.Index()] + depth*depth
	if v > historyCap {
		v = historyCap
	}
	o.history[m.From.Index()][m.To.Index()] = v
}

// score ranks a single candidate move for ordering at the given ply.
func (o *Orderer) score(m, ttMove board.Move, ply int) int {
	switch {
	case m == ttMove:
		return ttMoveScore
	case m.Flags.Has(board.Capture):
		return captureScore
	case ply >= 0 && ply < maxPly && m == o.killers[ply][0]:
		return killer0Score
	case ply >= 0 && ply < maxPly && m == o.killers[ply][1]:
		return killer1Score
	default:
		return o.history[m.From.Index()][m.To.Index()]
	}
}

// Order sorts moves in place, highest-scoring first, stably (so ties keep
// the move generator's fixed order).
func (o *Orderer) Order(moves []board.Move, ttMove board.Move, ply int) {
	type scored struct {
		move  board.Move
		score int
	}
	pairs := make([]scored, len(moves))
	for i, m := range moves {
		pairs[i] = scored{move: m, score: o.score(m, ttMove, ply)}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})
	for i, p := range pairs {
		moves[i] = p.move
	}
}
