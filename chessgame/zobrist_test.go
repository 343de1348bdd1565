package chessgame

import "testing"

func TestHashTranspositionInvariance(t *testing.T) {
	g := NewGame()
	want := g.Hash()

	for _, mv := range [][2]string{{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"}} {
		mustApply(t, g, mv[0], mv[1])
	}

	if got := g.Hash(); got != want {
		t.Fatalf("hash after knight shuffle = %#x, want the starting hash %#x", got, want)
	}
}

func TestHashDependsOnSideToMove(t *testing.T) {
	w := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")

	if w.Hash() == b.Hash() {
		t.Fatal("identical hash for both sides to move")
	}
}

func TestHashDependsOnEnPassantFile(t *testing.T) {
	with := mustParse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	without := mustParse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	if with.Hash() == without.Hash() {
		t.Fatal("en passant target does not affect the hash")
	}
}

func TestHashStableAcrossCalls(t *testing.T) {
	g := NewGame()
	if g.Hash() != g.Hash() {
		t.Fatal("hash changed between calls on an unchanged position")
	}
}

func TestHashDiffersBetweenMoves(t *testing.T) {
	g := NewGame()
	seen := map[uint64]bool{g.Hash(): true}

	for _, mv := range [][2]string{{"e2", "e4"}, {"e7", "e5"}, {"g1", "f3"}, {"b8", "c6"}} {
		mustApply(t, g, mv[0], mv[1])
		h := g.Hash()
		if seen[h] {
			t.Fatalf("hash collision after %s%s", mv[0], mv[1])
		}
		seen[h] = true
	}
}
