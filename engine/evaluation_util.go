package engine

import (
	gm "chess-ai/chessgame"
)

func sidePawns(g *gm.GameState, color gm.Color) []*gm.Piece {
	pawns := make([]*gm.Piece, 0, 8)
	for _, p := range g.Board.Pieces(color) {
		if p.Type == gm.Pawn {
			pawns = append(pawns, p)
		}
	}
	return pawns
}

func hasFriendlyPawnOnAdjacentFile(fileCounts [8]int, file int) bool {
	if file > 0 && fileCounts[file-1] > 0 {
		return true
	}
	if file < 7 && fileCounts[file+1] > 0 {
		return true
	}
	return false
}

// pawnAdvance counts ranks advanced from the pawn's starting rank, in [0,6].
func pawnAdvance(p *gm.Piece) int {
	if p.Color == gm.White {
		return 6 - p.Pos.Row
	}
	return p.Pos.Row - 1
}

// isPassedPawn reports whether no enemy pawn on the same or an adjacent file
// can ever block or capture this pawn.
func isPassedPawn(g *gm.GameState, p *gm.Piece) bool {
	enemy := p.Color.Opposite()
	forward := -1
	if p.Color == gm.Black {
		forward = 1
	}
	for row := p.Pos.Row + forward; row >= 0 && row <= 7; row += forward {
		for dc := -1; dc <= 1; dc++ {
			col := p.Pos.Col + dc
			if col < 0 || col > 7 {
				continue
			}
			if q := g.Board.PieceAt(row, col); q != nil && q.Type == gm.Pawn && q.Color == enemy {
				return false
			}
		}
	}
	return true
}

// guardedByFriendlyPawn reports whether a friendly pawn guards the piece
// (for pawns this is a chain link; for minors, outpost support).
func guardedByFriendlyPawn(g *gm.GameState, p *gm.Piece) bool {
	behind := 1 // White's defenders stand on the higher row
	if p.Color == gm.Black {
		behind = -1
	}
	for _, dc := range [2]int{-1, 1} {
		q := g.Board.PieceAt(p.Pos.Row+behind, p.Pos.Col+dc)
		if q != nil && q.Type == gm.Pawn && q.Color == p.Color {
			return true
		}
	}
	return false
}

// isBackwardPawn holds when every friendly pawn on an adjacent file has
// already advanced past this one, leaving it without pawn support.
func isBackwardPawn(g *gm.GameState, p *gm.Piece) bool {
	found := false
	for _, dc := range [2]int{-1, 1} {
		col := p.Pos.Col + dc
		if col < 0 || col > 7 {
			continue
		}
		for row := 0; row < 8; row++ {
			q := g.Board.PieceAt(row, col)
			if q == nil || q.Type != gm.Pawn || q.Color != p.Color {
				continue
			}
			found = true
			if p.Color == gm.White && q.Pos.Row >= p.Pos.Row {
				return false // a neighbor is level with or behind us
			}
			if p.Color == gm.Black && q.Pos.Row <= p.Pos.Row {
				return false
			}
		}
	}
	return found
}

// pawnsOnFile reports whether the side has a pawn on the file, and whether
// any pawn at all sits there.
func pawnsOnFile(g *gm.GameState, file int, color gm.Color) (own bool, any bool) {
	for row := 0; row < 8; row++ {
		p := g.Board.PieceAt(row, file)
		if p == nil || p.Type != gm.Pawn {
			continue
		}
		any = true
		if p.Color == color {
			own = true
		}
	}
	return own, any
}

func chebyshev(a, b gm.Square) int {
	return Max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func isKnightMoveApart(a, b gm.Square) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// rooksConnected holds when the rooks share a rank or file with nothing
// between them.
func rooksConnected(g *gm.GameState, a, b *gm.Piece) bool {
	if a.Pos.Row == b.Pos.Row {
		lo, hi := a.Pos.Col, b.Pos.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for col := lo + 1; col < hi; col++ {
			if g.Board.PieceAt(a.Pos.Row, col) != nil {
				return false
			}
		}
		return true
	}
	if a.Pos.Col == b.Pos.Col {
		lo, hi := a.Pos.Row, b.Pos.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for row := lo + 1; row < hi; row++ {
			if g.Board.PieceAt(row, a.Pos.Col) != nil {
				return false
			}
		}
		return true
	}
	return false
}

// isOutpost reports whether a minor piece sits on the enemy half, guarded by
// a friendly pawn, where no enemy pawn can ever evict it.
func isOutpost(g *gm.GameState, p *gm.Piece) bool {
	if p.Type != gm.Knight && p.Type != gm.Bishop {
		return false
	}
	onEnemyHalf := p.Pos.Row <= 3
	if p.Color == gm.Black {
		onEnemyHalf = p.Pos.Row >= 4
	}
	if !onEnemyHalf {
		return false
	}
	if !guardedByFriendlyPawn(g, p) {
		return false
	}
	return noEnemyPawnCanChallenge(g, p)
}

func noEnemyPawnCanChallenge(g *gm.GameState, p *gm.Piece) bool {
	enemy := p.Color.Opposite()
	forward := -1
	if p.Color == gm.Black {
		forward = 1
	}
	for _, dc := range [2]int{-1, 1} {
		col := p.Pos.Col + dc
		if col < 0 || col > 7 {
			continue
		}
		for row := p.Pos.Row + forward; row >= 0 && row <= 7; row += forward {
			q := g.Board.PieceAt(row, col)
			if q != nil && q.Type == gm.Pawn && q.Color == enemy {
				return false
			}
		}
	}
	return true
}
