package engine

import (
	gm "chess-ai/chessgame"
)

// Score constants. Mate scores sit far above any material total; scores past
// MateThreshold encode a mate distance.
const (
	Infinity      = 10000000
	MateScore     = 1000000
	MateThreshold = MateScore - 2*maxPly
)

// Piece-square tables, indexed row-major from Black's back rank, so they
// apply to White directly; Black values come from the vertically mirrored
// square. Values follow the classic simplified-evaluation tables that pair
// with the 100/320/330/500/900 material scale.
var pawnPSQT = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPSQT = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPSQT = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPSQT = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPSQT = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPSQTMid = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingPSQTEnd = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var psqtTables = [7]*[64]int{nil, &pawnPSQT, &knightPSQT, &bishopPSQT, &rookPSQT, &queenPSQT, &kingPSQTMid}

// Knights and bishops gain more from activity than the heavy pieces do.
var mobilityWeights = [7]int{0, 0, 4, 4, 2, 1, 0}

// Evaluate scores the position from White's perspective, in centipawns.
// Terminal states short-circuit: a checkmated side scores the full mate
// value, stalemates and draws score zero. The result is deterministic;
// low-difficulty noise is added by the searcher, not here.
func Evaluate(g *gm.GameState) int {
	switch g.Status() {
	case gm.Checkmate:
		if g.CurrentPlayer == gm.White {
			return -MateScore
		}
		return MateScore
	case gm.Stalemate, gm.Draw:
		return 0
	}

	endgame := isEndgame(g)
	score := materialScore(g, endgame)
	score += mobilityScore(g)
	score += pawnStructureScore(g)
	if endgame {
		score += kingActivityScore(g)
	} else {
		score += kingSafetyScore(g)
	}
	score += squareControlScore(g)
	score += coordinationScore(g)
	return score
}

// isEndgame holds when no queens remain, or when the heavy-piece population
// has thinned out (at most two queens and two rooks with few minors left).
func isEndgame(g *gm.GameState) bool {
	var queens, rooks, minors int
	for _, color := range [2]gm.Color{gm.White, gm.Black} {
		for _, p := range g.Board.Pieces(color) {
			switch p.Type {
			case gm.Queen:
				queens++
			case gm.Rook:
				rooks++
			case gm.Knight, gm.Bishop:
				minors++
			}
		}
	}
	if queens == 0 {
		return true
	}
	return queens <= 2 && rooks <= 2 && minors <= 4
}

func psqtValue(p *gm.Piece, endgame bool) int {
	idx := p.Pos.Index()
	if p.Color == gm.Black {
		idx = (7-p.Pos.Row)*8 + p.Pos.Col
	}
	if p.Type == gm.King && endgame {
		return kingPSQTEnd[idx]
	}
	return psqtTables[p.Type][idx]
}

func materialScore(g *gm.GameState, endgame bool) int {
	score := 0
	for _, p := range g.Board.Pieces(gm.White) {
		score += p.Value() + psqtValue(p, endgame)
	}
	for _, p := range g.Board.Pieces(gm.Black) {
		score -= p.Value() + psqtValue(p, endgame)
	}
	return score
}

// mobilityScore counts pseudo-legal moves per piece, weighted by type.
func mobilityScore(g *gm.GameState) int {
	score := 0
	for _, p := range g.Board.Pieces(gm.White) {
		if w := mobilityWeights[p.Type]; w > 0 {
			score += w * len(gm.PossibleMoves(g.Board, p, gm.MoveContext{EnPassantTarget: gm.NoSquare}))
		}
	}
	for _, p := range g.Board.Pieces(gm.Black) {
		if w := mobilityWeights[p.Type]; w > 0 {
			score -= w * len(gm.PossibleMoves(g.Board, p, gm.MoveContext{EnPassantTarget: gm.NoSquare}))
		}
	}
	return score
}

// Passed pawn bonus by ranks advanced from the starting rank.
var passedPawnBonus = [7]int{0, 10, 20, 35, 60, 100, 150}

const (
	doubledPawnPenalty  = 15
	isolatedPawnPenalty = 12
	backwardPawnPenalty = 8
	pawnChainBonus      = 6
)

func pawnStructureScore(g *gm.GameState) int {
	return pawnStructureForSide(g, gm.White) - pawnStructureForSide(g, gm.Black)
}

func pawnStructureForSide(g *gm.GameState, color gm.Color) int {
	pawns := sidePawns(g, color)
	score := 0

	var fileCounts [8]int
	for _, p := range pawns {
		fileCounts[p.Pos.Col]++
	}
	for file := 0; file < 8; file++ {
		if fileCounts[file] > 1 {
			score -= doubledPawnPenalty * (fileCounts[file] - 1)
		}
	}

	for _, p := range pawns {
		isolated := !hasFriendlyPawnOnAdjacentFile(fileCounts, p.Pos.Col)
		if isolated {
			score -= isolatedPawnPenalty
		}
		if isPassedPawn(g, p) {
			score += passedPawnBonus[Clamp(pawnAdvance(p), 0, 6)]
		}
		if guardedByFriendlyPawn(g, p) {
			score += pawnChainBonus
		}
		if !isolated && isBackwardPawn(g, p) {
			score -= backwardPawnPenalty
		}
	}
	return score
}

const (
	shieldNearBonus      = 10
	shieldFarBonus       = 5
	kingAttackerPenalty  = 15
	openFilePenalty      = 20
	semiOpenFilePenalty  = 10
	castlingRightsBonus  = 10
	tropismPenaltyWeight = 2
)

// kingSafetyScore is the middlegame king term: pawn shield ahead of the
// king, direct attackers on the king square, open files next to it,
// retained castling rights, and enemy piece tropism.
func kingSafetyScore(g *gm.GameState) int {
	return kingSafetyForSide(g, gm.White) - kingSafetyForSide(g, gm.Black)
}

func kingSafetyForSide(g *gm.GameState, color gm.Color) int {
	king := g.KingPosition(color)
	enemy := color.Opposite()
	forward := -1 // White looks toward row 0
	if color == gm.Black {
		forward = 1
	}
	score := 0

	for dc := -1; dc <= 1; dc++ {
		near := gm.Square{Row: king.Row + forward, Col: king.Col + dc}
		far := gm.Square{Row: king.Row + 2*forward, Col: king.Col + dc}
		if p := g.Board.PieceAtSquare(near); p != nil && p.Type == gm.Pawn && p.Color == color {
			score += shieldNearBonus
		} else if p := g.Board.PieceAtSquare(far); p != nil && p.Type == gm.Pawn && p.Color == color {
			score += shieldFarBonus
		}
	}

	score -= kingAttackerPenalty * g.AttackerCount(king, enemy)

	for dc := -1; dc <= 1; dc++ {
		file := king.Col + dc
		if file < 0 || file > 7 {
			continue
		}
		own, any := pawnsOnFile(g, file, color)
		if !any {
			score -= openFilePenalty
		} else if !own {
			score -= semiOpenFilePenalty
		}
	}

	if g.HasCastlingRight(color, true) {
		score += castlingRightsBonus
	}
	if g.HasCastlingRight(color, false) {
		score += castlingRightsBonus
	}

	for _, p := range g.Board.Pieces(enemy) {
		if p.Type == gm.Pawn || p.Type == gm.King {
			continue
		}
		score -= tropismPenaltyWeight * (7 - chebyshev(p.Pos, king))
	}
	return score
}

const (
	kingCentralizationWeight = 8
	passedPawnEscortWeight   = 4
)

// kingActivityScore replaces king safety in the endgame: centralize, and
// stay close to friendly passed pawns.
func kingActivityScore(g *gm.GameState) int {
	return kingActivityForSide(g, gm.White) - kingActivityForSide(g, gm.Black)
}

func kingActivityForSide(g *gm.GameState, color gm.Color) int {
	king := g.KingPosition(color)
	score := kingCentralizationWeight * centrality(king)
	for _, p := range sidePawns(g, color) {
		if isPassedPawn(g, p) {
			score += passedPawnEscortWeight * (7 - chebyshev(king, p.Pos))
		}
	}
	return score
}

var centerSquares = [4]gm.Square{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 4}}

const (
	centerControlWeight   = 3
	extendedControlWeight = 1
	outpostBonus          = 18
)

// squareControlScore weighs attacker counts on the center and extended
// center, plus outpost bonuses for entrenched minor pieces.
func squareControlScore(g *gm.GameState) int {
	score := 0
	for _, sq := range centerSquares {
		diff := g.AttackerCount(sq, gm.White) - g.AttackerCount(sq, gm.Black)
		score += centerControlWeight * diff
	}
	for row := 2; row <= 5; row++ {
		for col := 2; col <= 5; col++ {
			sq := gm.Square{Row: row, Col: col}
			if row >= 3 && row <= 4 && col >= 3 && col <= 4 {
				continue // already counted as center
			}
			diff := g.AttackerCount(sq, gm.White) - g.AttackerCount(sq, gm.Black)
			score += extendedControlWeight * diff
		}
	}

	for _, p := range g.Board.Pieces(gm.White) {
		if isOutpost(g, p) {
			score += outpostBonus
		}
	}
	for _, p := range g.Board.Pieces(gm.Black) {
		if isOutpost(g, p) {
			score -= outpostBonus
		}
	}
	return score
}

const (
	rookOpenFileBonus     = 20
	rookSemiOpenFileBonus = 10
	connectedRooksBonus   = 15
	bishopPairBonus       = 30
	knightSupportBonus    = 8
	knightBishopBonus     = 5
)

// coordinationScore rewards pieces working together: rooks on open files and
// connected to each other, the bishop pair, and minor pieces covering one
// another.
func coordinationScore(g *gm.GameState) int {
	return coordinationForSide(g, gm.White) - coordinationForSide(g, gm.Black)
}

func coordinationForSide(g *gm.GameState, color gm.Color) int {
	score := 0
	var rooks, knights, bishops []*gm.Piece
	for _, p := range g.Board.Pieces(color) {
		switch p.Type {
		case gm.Rook:
			rooks = append(rooks, p)
		case gm.Knight:
			knights = append(knights, p)
		case gm.Bishop:
			bishops = append(bishops, p)
		}
	}

	for _, r := range rooks {
		own, any := pawnsOnFile(g, r.Pos.Col, color)
		if !any {
			score += rookOpenFileBonus
		} else if !own {
			score += rookSemiOpenFileBonus
		}
	}
	if len(rooks) >= 2 && rooksConnected(g, rooks[0], rooks[1]) {
		score += connectedRooksBonus
	}

	if len(bishops) >= 2 {
		score += bishopPairBonus
	}

	for i, n := range knights {
		for _, other := range knights[i+1:] {
			if isKnightMoveApart(n.Pos, other.Pos) {
				score += knightSupportBonus
			}
		}
		for _, b := range bishops {
			if chebyshev(n.Pos, b.Pos) <= 2 {
				score += knightBishopBonus
			}
		}
	}
	return score
}
