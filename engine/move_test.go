package engine

import (
	"testing"

	gm "chess-ai/chessgame"
)

func TestGenerateMovesStartingPosition(t *testing.T) {
	moves := generateMoves(gm.NewGame())
	if len(moves) != 20 {
		t.Fatalf("generateMoves(start) = %d moves, want 20", len(moves))
	}
	for _, m := range moves {
		if m.Captured != gm.NoPieceType || m.Promotion != gm.NoPieceType {
			t.Fatalf("starting move %v flagged as capture or promotion", m)
		}
	}
}

func TestGenerateCapturesFiltersQuietMoves(t *testing.T) {
	g := parseFEN(t, "k7/8/8/8/3q4/4P3/8/K7 w - - 0 1")

	captures := generateCaptures(g)
	if len(captures) != 1 {
		t.Fatalf("generateCaptures = %v, want exactly the pawn capture", captures)
	}
	if captures[0].Captured != gm.Queen || captures[0].PieceType != gm.Pawn {
		t.Fatalf("capture = %+v, want pawn takes queen", captures[0])
	}
}

func TestGenerateMovesEmitsQueenPromotionsOnly(t *testing.T) {
	g := parseFEN(t, "8/P7/8/8/8/8/8/k2K4 w - - 0 1")

	promotions := 0
	for _, m := range generateMoves(g) {
		if m.Promotion == gm.NoPieceType {
			continue
		}
		promotions++
		if m.Promotion != gm.Queen {
			t.Fatalf("search promotion = %v, want queen", m.Promotion)
		}
	}
	if promotions != 1 {
		t.Fatalf("promotion move count = %d, want 1", promotions)
	}
}

func TestBuildMoveMarksEnPassantCapture(t *testing.T) {
	g := parseFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")

	m, ok := findMove(g, gm.SquareFromString("e5"), gm.SquareFromString("d6"))
	if !ok {
		t.Fatal("en passant capture not found")
	}
	if m.Captured != gm.Pawn {
		t.Fatalf("Captured = %v, want pawn despite the empty target square", m.Captured)
	}
}

func TestFindMoveRejectsIllegal(t *testing.T) {
	g := gm.NewGame()

	if _, ok := findMove(g, gm.SquareFromString("e2"), gm.SquareFromString("e5")); ok {
		t.Fatal("triple pawn push accepted")
	}
	if _, ok := findMove(g, gm.SquareFromString("e4"), gm.SquareFromString("e5")); ok {
		t.Fatal("move from an empty square accepted")
	}
	if _, ok := findMove(g, gm.SquareFromString("e7"), gm.SquareFromString("e5")); ok {
		t.Fatal("opponent's move accepted")
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: gm.SquareFromString("e2"), To: gm.SquareFromString("e4"), PieceType: gm.Pawn}
	if got := m.String(); got != "e2e4" {
		t.Fatalf("String = %q, want e2e4", got)
	}

	promo := Move{From: gm.SquareFromString("a7"), To: gm.SquareFromString("a8"), PieceType: gm.Pawn, Promotion: gm.Knight}
	if got := promo.String(); got != "a7a8n" {
		t.Fatalf("String = %q, want a7a8n", got)
	}

	if got := NoMove.String(); got != "(none)" {
		t.Fatalf("NoMove.String = %q", got)
	}
}

func TestMoveSameIgnoresOrderingScore(t *testing.T) {
	a := Move{From: gm.SquareFromString("e2"), To: gm.SquareFromString("e4"), score: 5}
	b := Move{From: gm.SquareFromString("e2"), To: gm.SquareFromString("e4"), score: -3}
	if !a.Same(b) {
		t.Fatal("score difference broke move identity")
	}
}

func TestApplyToCloneLeavesOriginalUntouched(t *testing.T) {
	g := gm.NewGame()
	m, _ := findMove(g, gm.SquareFromString("e2"), gm.SquareFromString("e4"))

	child := applyToClone(g, m)
	if child.CurrentPlayer != gm.Black {
		t.Fatalf("clone side to move = %v, want black", child.CurrentPlayer)
	}
	if g.FEN() != gm.FENStartPos {
		t.Fatalf("original position changed: %s", g.FEN())
	}
}
