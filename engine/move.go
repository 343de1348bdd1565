package engine

import (
	"strings"

	gm "chess-ai/chessgame"
)

// Move is the search-internal move representation: enough to replay the move
// on a GameState and to drive ordering heuristics. Promotion is set only for
// pawn moves onto the last rank; search considers queen promotions only,
// underpromotion stays available through the rules layer.
type Move struct {
	From      gm.Square
	To        gm.Square
	PieceType gm.PieceType
	Captured  gm.PieceType // NoPieceType for quiet moves
	Promotion gm.PieceType // NoPieceType unless a pawn promotes

	score int
}

// NoMove is the sentinel for "no move found".
var NoMove = Move{From: gm.NoSquare, To: gm.NoSquare}

// IsNone reports whether the move is the NoMove sentinel.
func (m Move) IsNone() bool { return !m.From.Valid() }

// Same compares two moves by their board effect, ignoring the ordering score.
func (m Move) Same(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the compact coordinate form ("e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != gm.NoPieceType {
		s += strings.ToLower(m.Promotion.Letter())
	}
	return s
}

// generateMoves lists every legal move for the side to move. Pawn moves onto
// the last rank are emitted once, as queen promotions.
func generateMoves(g *gm.GameState) []Move {
	moves := make([]Move, 0, 40)
	for _, p := range g.Board.Pieces(g.CurrentPlayer) {
		for _, to := range g.LegalMoves(p) {
			moves = append(moves, buildMove(g, p, to))
		}
	}
	return moves
}

// generateCaptures lists the capture and promotion moves only, for
// quiescence search.
func generateCaptures(g *gm.GameState) []Move {
	moves := make([]Move, 0, 16)
	for _, p := range g.Board.Pieces(g.CurrentPlayer) {
		for _, to := range g.LegalMoves(p) {
			m := buildMove(g, p, to)
			if m.Captured != gm.NoPieceType || m.Promotion != gm.NoPieceType {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// buildMove fills in the capture and promotion metadata for a legal
// destination. En passant captures a pawn even though the target square is
// empty.
func buildMove(g *gm.GameState, p *gm.Piece, to gm.Square) Move {
	m := Move{From: p.Pos, To: to, PieceType: p.Type}
	if victim := g.Board.PieceAtSquare(to); victim != nil {
		m.Captured = victim.Type
	} else if p.Type == gm.Pawn && to == g.EnPassantTarget {
		m.Captured = gm.Pawn
	}
	if p.Type == gm.Pawn && (to.Row == 0 || to.Row == 7) {
		m.Promotion = gm.Queen
	}
	return m
}

// applyToClone plays the move on a fresh clone and returns it; the input
// state is never touched.
func applyToClone(g *gm.GameState, m Move) *gm.GameState {
	child := g.Clone()
	promo := m.Promotion
	if promo == gm.NoPieceType {
		promo = gm.Queen
	}
	child.ApplyMovePromote(m.From, m.To, promo)
	return child
}

// findMove resolves a from-to pair against the current legal moves; used to
// validate opening book replies.
func findMove(g *gm.GameState, from, to gm.Square) (Move, bool) {
	p := g.Board.PieceAtSquare(from)
	if p == nil || p.Color != g.CurrentPlayer {
		return NoMove, false
	}
	for _, sq := range g.LegalMoves(p) {
		if sq == to {
			return buildMove(g, p, to), true
		}
	}
	return NoMove, false
}
