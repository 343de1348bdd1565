package chessgame

// MoveContext carries the bits of global game state that per-piece move
// generation depends on. The rules engine fills it in; callers probing
// hypothetical positions should pass NoSquare for the en passant target
// (the Square zero value is a real square) and false castling flags.
type MoveContext struct {
	EnPassantTarget    Square
	CanCastleKingSide  bool
	CanCastleQueenSide bool
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var bishopDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var rookDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// PossibleMoves generates the pseudo-legal destination squares for a piece.
// King safety is not considered here; LegalMoves filters for it.
func PossibleMoves(b *Board, p *Piece, ctx MoveContext) []Square {
	switch p.Type {
	case Pawn:
		return pawnMoves(b, p, ctx)
	case Knight:
		return offsetMoves(b, p, knightOffsets[:])
	case Bishop:
		return slideMoves(b, p, bishopDirections[:])
	case Rook:
		return slideMoves(b, p, rookDirections[:])
	case Queen:
		moves := slideMoves(b, p, rookDirections[:])
		return append(moves, slideMoves(b, p, bishopDirections[:])...)
	case King:
		return kingMoves(b, p, ctx)
	}
	return nil
}

func pawnMoves(b *Board, p *Piece, ctx MoveContext) []Square {
	moves := make([]Square, 0, 4)
	dir := -1 // white marches toward row 0
	startRow := 6
	if p.Color == Black {
		dir = 1
		startRow = 1
	}

	one := Square{p.Pos.Row + dir, p.Pos.Col}
	if one.Valid() && b.PieceAtSquare(one) == nil {
		moves = append(moves, one)
		two := Square{p.Pos.Row + 2*dir, p.Pos.Col}
		if p.Pos.Row == startRow && b.PieceAtSquare(two) == nil {
			moves = append(moves, two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := Square{p.Pos.Row + dir, p.Pos.Col + dc}
		if !diag.Valid() {
			continue
		}
		if target := b.PieceAtSquare(diag); target != nil && target.Color != p.Color {
			moves = append(moves, diag)
		} else if target == nil && diag == ctx.EnPassantTarget {
			moves = append(moves, diag)
		}
	}
	return moves
}

func offsetMoves(b *Board, p *Piece, offsets [][2]int) []Square {
	moves := make([]Square, 0, 8)
	for _, off := range offsets {
		sq := Square{p.Pos.Row + off[0], p.Pos.Col + off[1]}
		if !sq.Valid() {
			continue
		}
		if target := b.PieceAtSquare(sq); target == nil || target.Color != p.Color {
			moves = append(moves, sq)
		}
	}
	return moves
}

func slideMoves(b *Board, p *Piece, directions [][2]int) []Square {
	moves := make([]Square, 0, 14)
	for _, dir := range directions {
		for step := 1; step < 8; step++ {
			sq := Square{p.Pos.Row + dir[0]*step, p.Pos.Col + dir[1]*step}
			if !sq.Valid() {
				break
			}
			target := b.PieceAtSquare(sq)
			if target == nil {
				moves = append(moves, sq)
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, sq)
			}
			break
		}
	}
	return moves
}

func kingMoves(b *Board, p *Piece, ctx MoveContext) []Square {
	moves := offsetMoves(b, p, kingOffsets[:])
	if p.HasMoved || p.Pos.Col != 4 {
		return moves
	}
	if ctx.CanCastleKingSide {
		moves = append(moves, Square{p.Pos.Row, 6})
	}
	if ctx.CanCastleQueenSide {
		moves = append(moves, Square{p.Pos.Row, 2})
	}
	return moves
}

// attacksSquare reports whether the piece attacks sq on the given board.
// This differs from the pseudo-legal move set in exactly the pawn case:
// pawn pushes never attack, and pawn diagonals attack regardless of
// occupancy. Castling never counts as an attack.
func attacksSquare(b *Board, p *Piece, sq Square) bool {
	switch p.Type {
	case Pawn:
		dir := -1
		if p.Color == Black {
			dir = 1
		}
		return sq.Row == p.Pos.Row+dir && (sq.Col == p.Pos.Col-1 || sq.Col == p.Pos.Col+1)
	case Knight:
		dr, dc := abs(sq.Row-p.Pos.Row), abs(sq.Col-p.Pos.Col)
		return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
	case King:
		dr, dc := abs(sq.Row-p.Pos.Row), abs(sq.Col-p.Pos.Col)
		return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
	case Bishop:
		return slideAttacks(b, p.Pos, sq, bishopDirections[:])
	case Rook:
		return slideAttacks(b, p.Pos, sq, rookDirections[:])
	case Queen:
		return slideAttacks(b, p.Pos, sq, rookDirections[:]) ||
			slideAttacks(b, p.Pos, sq, bishopDirections[:])
	}
	return false
}

func slideAttacks(b *Board, from, to Square, directions [][2]int) bool {
	for _, dir := range directions {
		for step := 1; step < 8; step++ {
			sq := Square{from.Row + dir[0]*step, from.Col + dir[1]*step}
			if !sq.Valid() {
				break
			}
			if sq == to {
				return true
			}
			if b.PieceAtSquare(sq) != nil {
				break
			}
		}
	}
	return false
}

// boardSquareAttacked reports whether any piece of the given color attacks sq.
func boardSquareAttacked(b *Board, sq Square, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p != nil && p.Color == by && attacksSquare(b, p, sq) {
				return true
			}
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
