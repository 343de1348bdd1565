package engine

import (
	"testing"
	"time"

	gm "chess-ai/chessgame"
)

// prepare widens the deadline so tests exercise the search itself, not the
// clock.
func (s *Searcher) prepare() {
	s.deadline = time.Now().Add(time.Hour)
	s.stopped = false
}

func TestSearchRootFindsMateInOne(t *testing.T) {
	s := newTestSearcher()
	s.prepare()
	g := parseFEN(t, "7k/5K2/8/8/8/8/8/6R1 w - - 0 1")

	move, score, completed := s.searchRoot(g, generateMoves(g), 2, NoMove)
	if !completed {
		t.Fatal("search did not complete")
	}
	if score < MateThreshold {
		t.Fatalf("score = %d, want a mate score", score)
	}

	finished := g.Clone()
	if !finished.ApplyMove(move.From, move.To) {
		t.Fatalf("mating move %v is illegal", move)
	}
	if finished.Status() != gm.Checkmate {
		t.Fatalf("status after %v = %v, want checkmate", move, finished.Status())
	}
}

func TestChooseMoveDeliversMate(t *testing.T) {
	s := newTestSearcher()
	g := parseFEN(t, "7k/5K2/8/8/8/8/8/6R1 w - - 0 1")

	move := s.ChooseMove(g)
	if move.IsNone() {
		t.Fatal("no move chosen")
	}
	finished := g.Clone()
	finished.ApplyMove(move.From, move.To)
	if finished.Status() != gm.Checkmate {
		t.Fatalf("chose %v (status %v), want a mate", move, finished.Status())
	}
}

func TestFullStrengthPlayIsDeterministic(t *testing.T) {
	fen := "k7/8/8/8/3q4/4P3/8/K7 w - - 0 1"

	var moves [2]Move
	for i := range moves {
		s := newTestSearcher()
		g := parseFEN(t, fen)
		moves[i] = s.ChooseMove(g)
	}

	if !moves[0].Same(moves[1]) {
		t.Fatalf("two full-strength searches disagreed: %v vs %v", moves[0], moves[1])
	}
	if want := "e3d4"; moves[0].String() != want {
		t.Fatalf("chose %v, want the hanging queen capture %s", moves[0], want)
	}
}

// plainNegamax is an unpruned reference search sharing the evaluation and
// mate-score conventions of the real one.
func plainNegamax(s *Searcher, g *gm.GameState, depth, ply int) int {
	switch g.Status() {
	case gm.Checkmate:
		return -(MateScore - ply)
	case gm.Stalemate, gm.Draw:
		return 0
	}
	if depth <= 0 {
		return s.evalForSide(g)
	}
	best := -Infinity
	for _, m := range generateMoves(g) {
		child := applyToClone(g, m)
		if score := -plainNegamax(s, child, depth-1, ply+1); score > best {
			best = score
		}
	}
	return best
}

func TestAlphaBetaMatchesPlainNegamax(t *testing.T) {
	// Locked pawns and bare kings: no captures for quiescence to extend and
	// no material for null-move pruning, so pruning may only skip work, never
	// change the value.
	s := newTestSearcher()
	s.prepare()
	g := parseFEN(t, "k7/8/8/3p4/3P4/8/8/K7 w - - 0 1")

	want := plainNegamax(s, g, 3, 0)
	got := s.alphabeta(g, 3, -Infinity, Infinity, 0)
	if got != want {
		t.Fatalf("alphabeta = %d, plain negamax = %d", got, want)
	}
}

func TestStaleShallowEntryDoesNotMislead(t *testing.T) {
	s := newTestSearcher()
	s.prepare()
	g := parseFEN(t, "k7/8/8/8/3q4/4P3/8/K7 w - - 0 1")

	capture, ok := findMove(g, gm.SquareFromString("e3"), gm.SquareFromString("d4"))
	if !ok {
		t.Fatal("setup: capture not found")
	}

	// Poison the position after the best move with an absurd shallow score;
	// a deeper search must only take its move hint, never the score.
	child := applyToClone(g, capture)
	s.tt.Store(child.Hash(), 0, -5000, NoMove, BoundExact, 1)

	move, _, completed := s.searchRoot(g, generateMoves(g), 3, NoMove)
	if !completed {
		t.Fatal("search did not complete")
	}
	if !move.Same(capture) {
		t.Fatalf("chose %v over the winning capture after table poisoning", move)
	}
}

func TestAbortedSearchDiscardsUnsearchedChild(t *testing.T) {
	s := newTestSearcher()
	s.prepare()
	s.stopped = true // the clock tripped before any child completed
	g := parseFEN(t, "k7/8/8/8/3q4/4P3/8/K7 w - - 0 1")

	move, score, completed := s.searchRoot(g, generateMoves(g), 3, NoMove)
	if completed {
		t.Fatal("aborted search reported completion")
	}
	if !move.IsNone() {
		t.Fatalf("aborted search fabricated a best move %v (score %d)", move, score)
	}
}

func TestChooseMoveReturnsNoMoveWhenMated(t *testing.T) {
	s := newTestSearcher()
	g := parseFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	if move := s.ChooseMove(g); !move.IsNone() {
		t.Fatalf("chose %v in a checkmated position", move)
	}
}

func TestHintSuggestsForEitherSide(t *testing.T) {
	s := NewSearcher()
	s.SetDifficulty(1)
	g := gm.NewGame()

	hint := s.Hint(g, gm.Black)
	if hint.IsNone() {
		t.Fatal("no hint produced")
	}

	// The hint must be legal for Black even though White is to move, and the
	// live game must stay untouched.
	scratch := g.Clone()
	scratch.MakeNullMove()
	if !scratch.ApplyMove(hint.From, hint.To) {
		t.Fatalf("hint %v is not legal for black", hint)
	}
	if g.FEN() != gm.FENStartPos {
		t.Fatalf("Hint mutated the game: %s", g.FEN())
	}
}

func TestQuiescenceResolvesHangingPiece(t *testing.T) {
	s := newTestSearcher()
	s.prepare()
	g := parseFEN(t, "k7/8/8/8/3q4/4P3/8/K7 w - - 0 1")

	standPat := s.evalForSide(g)
	score := s.quiescence(g, -Infinity, Infinity, qMaxDepth, 0)
	if score <= standPat {
		t.Fatalf("quiescence %d did not improve on stand-pat %d with a queen hanging", score, standPat)
	}
	if score < 0 {
		t.Fatalf("quiescence score %d, want an advantage after winning the queen", score)
	}
}

func TestHasNonPawnMaterial(t *testing.T) {
	s := newTestSearcher()

	if !s.hasNonPawnMaterial(gm.NewGame()) {
		t.Fatal("starting position reported as pawns-only")
	}
	g := parseFEN(t, "k7/8/8/3p4/3P4/8/8/K7 w - - 0 1")
	if s.hasNonPawnMaterial(g) {
		t.Fatal("king-and-pawn position reported as having pieces")
	}
}

func TestOpeningBookConsultedAtLowerLevels(t *testing.T) {
	s := NewSearcher()
	s.SetDifficulty(3)
	g := gm.NewGame()

	move := s.ChooseMove(g)
	if move.IsNone() {
		t.Fatal("no move chosen")
	}

	found := false
	for _, c := range s.book.Lookup("") {
		if move.String() == c {
			found = true
		}
	}
	if !found {
		t.Fatalf("level 3 opening move %v did not come from the book", move)
	}
}

func TestNodesCountsSearchWork(t *testing.T) {
	s := newTestSearcher()
	g := parseFEN(t, "k7/8/8/8/3q4/4P3/8/K7 w - - 0 1")

	s.ChooseMove(g)
	if s.Nodes() == 0 {
		t.Fatal("node counter stayed at zero after a search")
	}
}
