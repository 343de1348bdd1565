package engine

import (
	"testing"

	gm "chess-ai/chessgame"
)

func quietMove(from, to string) Move {
	return Move{
		From:      gm.SquareFromString(from),
		To:        gm.SquareFromString(to),
		PieceType: gm.Knight,
	}
}

func TestKillerTableKeepsTwoPerPly(t *testing.T) {
	var k KillerTable
	k.Clear()

	first := quietMove("g1", "f3")
	second := quietMove("b1", "c3")
	third := quietMove("f1", "c4")

	k.Insert(2, first)
	k.Insert(2, second)
	if !k.IsKiller(2, first) || !k.IsKiller(2, second) {
		t.Fatal("both killers should be remembered")
	}

	k.Insert(2, third)
	if k.IsKiller(2, first) {
		t.Fatal("oldest killer not evicted")
	}
	if !k.IsKiller(2, second) || !k.IsKiller(2, third) {
		t.Fatal("newer killers lost")
	}

	if k.IsKiller(3, second) {
		t.Fatal("killer leaked into another ply")
	}
}

func TestKillerTableIgnoresDuplicateInsert(t *testing.T) {
	var k KillerTable
	k.Clear()

	m := quietMove("g1", "f3")
	other := quietMove("b1", "c3")
	k.Insert(0, other)
	k.Insert(0, m)
	k.Insert(0, m) // must not demote `other` out of the table

	if !k.IsKiller(0, other) {
		t.Fatal("duplicate insert evicted the second killer")
	}
}

func TestKillerTableOutOfRangePly(t *testing.T) {
	var k KillerTable
	k.Clear()
	k.Insert(-1, quietMove("g1", "f3"))
	k.Insert(maxPly+5, quietMove("g1", "f3"))
	if k.IsKiller(-1, quietMove("g1", "f3")) || k.IsKiller(maxPly+5, quietMove("g1", "f3")) {
		t.Fatal("out-of-range ply accepted")
	}
}

func TestHistoryTableAccumulatesQuadratically(t *testing.T) {
	var h HistoryTable
	h.Clear()

	m := quietMove("g1", "f3")
	h.Increment(gm.White, m, 3)
	h.Increment(gm.White, m, 2)

	if got := h.Score(gm.White, m); got != 13 {
		t.Fatalf("Score = %d, want 9+4", got)
	}
	if got := h.Score(gm.Black, m); got != 0 {
		t.Fatalf("black score = %d, want 0 (tables are per side)", got)
	}
}

func TestHistoryTableAges(t *testing.T) {
	var h HistoryTable
	h.Clear()

	m := quietMove("g1", "f3")
	for h.Score(gm.White, m) < historyMaxVal/2 {
		h.Increment(gm.White, m, 8)
	}
	before := h.Score(gm.White, m)
	for h.Score(gm.White, m) >= before {
		h.Increment(gm.White, m, 8)
	}

	// The aging halves the whole side's table once the cap is reached.
	if got := h.Score(gm.White, m); got >= historyMaxVal {
		t.Fatalf("Score = %d, never aged below the cap", got)
	}
}
