package engine

import (
	"testing"

	"chesscore/internal/board"
)

func TestTableProbeMiss(t *testing.T) {
	tab := NewTableWithCapacity(16)
	if _, ok := tab.Probe(12345); ok {
		t.Fatalf("expected a miss on an empty table")
	}
}

func TestTableStoreThenProbe(t *testing.T) {
	tab := NewTableWithCapacity(16)
	entry := TTEntry{Key: 7, Score: 42, Depth: 3, Bound: BoundExact, BestMove: board.Move{From: board.NewSquare(1, 1), To: board.NewSquare(1, 2)}}
	tab.Store(entry)

	got, ok := tab.Probe(7)
	if !ok {
		t.Fatalf("expected a hit after storing")
	}
	if got != entry {
		t.Fatalf("probe returned %+v, want %+v", got, entry)
	}
}

func TestTableReplacementIsDepthPreferred(t *testing.T) {
	tab := NewTableWithCapacity(1)
	shallow := TTEntry{Key: 1, Score: 10, Depth: 2, Bound: BoundExact}
	deep := TTEntry{Key: 1, Score: 20, Depth: 5, Bound: BoundExact}

	tab.Store(deep)
	tab.Store(shallow)

	got, ok := tab.Probe(1)
	if !ok || got.Depth != 5 {
		t.Fatalf("a shallower store should not replace a deeper entry, got %+v", got)
	}
}

func TestLowerBoundEntryTriggersCutoffAgainstBeta(t *testing.T) {
	tab := NewTableWithCapacity(1024)
	tab.Store(TTEntry{Key: 99, Score: 120, Depth: 4, Bound: BoundLower})

	entry, ok := tab.Probe(99)
	if !ok {
		t.Fatalf("expected a hit")
	}
	depth, alpha, beta := 3, 0, 100
	if int(entry.Depth) < depth {
		t.Fatalf("stored depth %d should cover a depth-%d probe", entry.Depth, depth)
	}
	if entry.Bound != BoundLower || int(entry.Score) < beta {
		t.Fatalf("expected a lower-bound entry >= beta to trigger a cutoff, got score=%d bound=%v (alpha=%d beta=%d)",
			entry.Score, entry.Bound, alpha, beta)
	}
}

func TestTableDoesNotReturnACollidingKey(t *testing.T) {
	tab := NewTableWithCapacity(1)
	tab.Store(TTEntry{Key: 1, Depth: 4, Bound: BoundExact})
	if _, ok := tab.Probe(2); ok {
		t.Fatalf("probing a different key that maps to the same slot should miss")
	}
}

func TestTableClear(t *testing.T) {
	tab := NewTableWithCapacity(16)
	tab.Store(TTEntry{Key: 9, Depth: 1, Bound: BoundExact})
	tab.Clear()
	if _, ok := tab.Probe(9); ok {
		t.Fatalf("expected a miss after Clear")
	}
}
