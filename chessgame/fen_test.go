package chessgame

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/R3K3 w - - 99 80",
	}
	for _, fen := range fens {
		g := mustParse(t, fen)
		if got := g.FEN(); got != fen {
			t.Errorf("round trip changed %q into %q", fen, got)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", // missing fields
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // seven ranks
		"rnbqzbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) accepted malformed input", fen)
		}
	}
}

func TestParseFENCastlingRights(t *testing.T) {
	g := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")

	if !g.CanCastle(White, true) {
		t.Fatal("white kingside right missing")
	}
	if g.CanCastle(White, false) {
		t.Fatal("white queenside right granted without the flag")
	}
	if g.CanCastle(Black, true) {
		t.Fatal("black kingside right granted without the flag")
	}
	if !g.CanCastle(Black, false) {
		t.Fatal("black queenside right missing")
	}
}

func TestParseFENSetsStatus(t *testing.T) {
	g := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if g.Status() != Checkmate {
		t.Fatalf("Status = %v, want checkmate", g.Status())
	}

	g = mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if g.Status() != Stalemate {
		t.Fatalf("Status = %v, want stalemate", g.Status())
	}
}

func TestParseFENEnPassantUsable(t *testing.T) {
	// Black just pushed d7d5; the white e5 pawn may capture to d6.
	g := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")

	pawn := g.Board.PieceAtSquare(SquareFromString("e5"))
	if !containsSquare(g.LegalMoves(pawn), SquareFromString("d6")) {
		t.Fatalf("en passant capture missing from %v", g.LegalMoves(pawn))
	}
}
