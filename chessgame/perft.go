package chessgame

var promotionChoices = [4]PieceType{Queen, Rook, Bishop, Knight}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once per promotion choice, matching the standard perft
// definition, so results are comparable with reference generators.
func Perft(g *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, piece := range g.Board.Pieces(g.CurrentPlayer) {
		from := piece.Pos
		isPromotion := piece.Type == Pawn
		for _, to := range g.LegalMoves(piece) {
			if isPromotion && (to.Row == 0 || to.Row == 7) {
				for _, promo := range promotionChoices {
					child := g.Clone()
					if child.ApplyMovePromote(from, to, promo) {
						nodes += Perft(child, depth-1)
					}
				}
				continue
			}
			child := g.Clone()
			if child.ApplyMove(from, to) {
				nodes += Perft(child, depth-1)
			}
		}
	}
	return nodes
}
