package engine

import (
	gm "chess-ai/chessgame"

	"golang.org/x/exp/slices"
)

// Ordering offsets. Alpha-beta efficiency lives or dies on trying the best
// move first, so the principal variation move goes ahead of everything,
// captures ahead of quiet heuristics, killers ahead of plain history.
const (
	pvMoveBonus     = 100000
	captureBonus    = 1000
	killerBonus     = 900
	historyScoreCap = 800
	castleBonus     = 60
)

// centrality scores a square by its closeness to the board's center,
// 0 at the edge up to 3 on the four center squares.
func centrality(sq gm.Square) int {
	rowDist := sq.Row
	if rowDist > 3 {
		rowDist = 7 - sq.Row
	}
	colDist := sq.Col
	if colDist > 3 {
		colDist = 7 - sq.Col
	}
	if colDist < rowDist {
		return colDist
	}
	return rowDist
}

// scoreMoves assigns the composite ordering score to each candidate:
// PV match, MVV-LVA for captures, killer/history for quiet moves, plus small
// positional nudges (destination centrality, pawn advancement, castling).
func (s *Searcher) scoreMoves(g *gm.GameState, moves []Move, pvMove Move, ply int) {
	side := g.CurrentPlayer
	for i := range moves {
		m := &moves[i]
		score := 0

		switch {
		case !pvMove.IsNone() && m.Same(pvMove):
			score = pvMoveBonus
		case m.Captured != gm.NoPieceType:
			score = captureBonus + gm.PieceValue(m.Captured) - gm.PieceValue(m.PieceType)/10
		case s.killers.IsKiller(ply, *m):
			score = killerBonus
		default:
			score = Clamp(s.history.Score(side, *m), 0, historyScoreCap)
		}

		score += 2 * (centrality(m.To) - centrality(m.From))

		if m.PieceType == gm.Pawn {
			advance := m.From.Row - m.To.Row // toward row 0 for White
			if side == gm.Black {
				advance = -advance
			}
			score += 2 * advance
			if m.Promotion != gm.NoPieceType {
				score += gm.PieceValue(m.Promotion)
			}
		}

		if m.PieceType == gm.King && abs(m.To.Col-m.From.Col) == 2 {
			score += castleBonus
		}

		m.score = score
	}
}

// scoreCaptures is the quiescence variant: MVV-LVA only.
func scoreCaptures(moves []Move) {
	for i := range moves {
		m := &moves[i]
		m.score = captureBonus + gm.PieceValue(m.Captured) - gm.PieceValue(m.PieceType)/10
		if m.Promotion != gm.NoPieceType {
			m.score += gm.PieceValue(m.Promotion)
		}
	}
}

// orderMoves sorts a scored move list best-first.
func orderMoves(moves []Move) {
	slices.SortStableFunc(moves, func(a, b Move) bool {
		return a.score > b.score
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
