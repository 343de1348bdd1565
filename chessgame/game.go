package chessgame

// Status of a game. Playing and Check are live; the rest are terminal.
type Status uint8

const (
	Playing Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

var statusNames = [5]string{"playing", "check", "checkmate", "stalemate", "draw"}

func (s Status) String() string { return statusNames[s] }

// Terminal reports whether no further moves are meaningful.
func (s Status) Terminal() bool { return s >= Checkmate }

// MoveRecord is one applied move, append-only in GameState.MoveHistory.
type MoveRecord struct {
	From      Square
	To        Square
	PieceType PieceType
	Captured  PieceType // NoPieceType when nothing was captured
	Notation  string
}

// CoordKey returns the compact from-to encoding ("e2e4") used for opening
// book lookups.
func (r MoveRecord) CoordKey() string { return r.From.String() + r.To.String() }

// GameState owns the board and everything needed to decide legality and
// termination. It is mutated in place by ApplyMove and deep-copied by Clone
// for speculative search.
type GameState struct {
	Board           *Board
	CurrentPlayer   Color
	MoveHistory     []MoveRecord
	CapturedPieces  [2][]Piece // indexed by the color of the captured piece
	EnPassantTarget Square
	HalfMoveClock   int // plies since the last pawn move or capture; draw at 100
	FullMoveNumber  int

	status          Status
	kingPositions   [2]Square
	positionHistory []uint64 // zobrist hash after each applied move
}

// NewGame returns a game in the standard starting position, White to move.
func NewGame() *GameState {
	g := &GameState{}
	g.Reset()
	return g
}

// Reset restores the standard starting position in place.
func (g *GameState) Reset() {
	g.Board = &Board{}
	g.Board.setupStartingPosition()
	g.CurrentPlayer = White
	g.MoveHistory = nil
	g.CapturedPieces[White] = nil
	g.CapturedPieces[Black] = nil
	g.EnPassantTarget = NoSquare
	g.HalfMoveClock = 0
	g.FullMoveNumber = 1
	g.status = Playing
	g.kingPositions[White] = Square{7, 4}
	g.kingPositions[Black] = Square{0, 4}
	g.positionHistory = []uint64{g.Hash()}
}

// Clone deep-copies the full game state. Search explores moves exclusively
// on clones so the live game is never disturbed.
func (g *GameState) Clone() *GameState {
	ng := &GameState{
		Board:           g.Board.Clone(),
		CurrentPlayer:   g.CurrentPlayer,
		EnPassantTarget: g.EnPassantTarget,
		HalfMoveClock:   g.HalfMoveClock,
		FullMoveNumber:  g.FullMoveNumber,
		status:          g.status,
		kingPositions:   g.kingPositions,
	}
	ng.MoveHistory = append([]MoveRecord(nil), g.MoveHistory...)
	ng.CapturedPieces[White] = append([]Piece(nil), g.CapturedPieces[White]...)
	ng.CapturedPieces[Black] = append([]Piece(nil), g.CapturedPieces[Black]...)
	ng.positionHistory = append([]uint64(nil), g.positionHistory...)
	return ng
}

// Status returns the current game status.
func (g *GameState) Status() Status { return g.status }

// PieceAt returns the piece on (row, col), or nil.
func (g *GameState) PieceAt(row, col int) *Piece { return g.Board.PieceAt(row, col) }

// KingPosition returns the cached location of a side's king.
func (g *GameState) KingPosition(color Color) Square { return g.kingPositions[color] }

// IsSquareAttacked reports whether any piece of byColor attacks sq.
// Castling moves never count as attacks.
func (g *GameState) IsSquareAttacked(sq Square, byColor Color) bool {
	return boardSquareAttacked(g.Board, sq, byColor)
}

// AttackerCount returns how many pieces of byColor attack sq; evaluation
// terms weigh square control by it.
func (g *GameState) AttackerCount(sq Square, byColor Color) int {
	count := 0
	for _, p := range g.Board.Pieces(byColor) {
		if attacksSquare(g.Board, p, sq) {
			count++
		}
	}
	return count
}

// HasCastlingRight reports whether the unmoved king/rook pair for the given
// wing is still intact. Unlike CanCastle it ignores the transient conditions
// (check, blockers, attacked transit squares).
func (g *GameState) HasCastlingRight(color Color, kingSide bool) bool {
	rookCol := 0
	if kingSide {
		rookCol = 7
	}
	return g.castlingRightIntact(color, rookCol)
}

// InCheck reports whether the given side's king is attacked.
func (g *GameState) InCheck(color Color) bool {
	return g.IsSquareAttacked(g.kingPositions[color], color.Opposite())
}

// moveContext assembles the global-state bundle piece movement depends on.
func (g *GameState) moveContext(p *Piece) MoveContext {
	ctx := MoveContext{EnPassantTarget: NoSquare}
	if p.Type == Pawn {
		ctx.EnPassantTarget = g.EnPassantTarget
	}
	if p.Type == King {
		ctx.CanCastleKingSide = g.CanCastle(p.Color, true)
		ctx.CanCastleQueenSide = g.CanCastle(p.Color, false)
	}
	return ctx
}

// LegalMoves filters the piece's pseudo-legal moves down to those that do
// not leave its own king in check. Castling destinations are accepted
// directly: CanCastle already guarantees the king's path is safe.
func (g *GameState) LegalMoves(p *Piece) []Square {
	if p == nil || g.Board.PieceAtSquare(p.Pos) != p {
		return nil
	}
	ctx := g.moveContext(p)
	pseudo := PossibleMoves(g.Board, p, ctx)
	legal := make([]Square, 0, len(pseudo))
	for _, to := range pseudo {
		if p.Type == King && abs(to.Col-p.Pos.Col) == 2 {
			legal = append(legal, to)
			continue
		}
		if g.moveKeepsKingSafe(p, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// moveKeepsKingSafe speculatively plays the move on a scratch board and
// tests whether the mover's king ends up attacked.
func (g *GameState) moveKeepsKingSafe(p *Piece, to Square) bool {
	scratch := g.Board.Clone()
	moved := scratch.PieceAtSquare(p.Pos)
	scratch.removePiece(p.Pos)
	if p.Type == Pawn && to == g.EnPassantTarget && scratch.PieceAtSquare(to) == nil {
		scratch.removePiece(Square{p.Pos.Row, to.Col})
	}
	scratch.setPiece(moved, to)

	kingSq := g.kingPositions[p.Color]
	if p.Type == King {
		kingSq = to
	}
	return !boardSquareAttacked(scratch, kingSq, p.Color.Opposite())
}

// CanCastle validates every castling precondition for one side and wing:
// unmoved king and rook on their home squares, empty squares between them,
// king not in check, and no attacked square on the king's path.
func (g *GameState) CanCastle(color Color, kingSide bool) bool {
	homeRow := 7
	if color == Black {
		homeRow = 0
	}
	king := g.Board.PieceAt(homeRow, 4)
	if king == nil || king.Type != King || king.Color != color || king.HasMoved {
		return false
	}

	rookCol := 0
	if kingSide {
		rookCol = 7
	}
	rook := g.Board.PieceAt(homeRow, rookCol)
	if rook == nil || rook.Type != Rook || rook.Color != color || rook.HasMoved {
		return false
	}

	between := []int{1, 2, 3}
	transit := []int{3, 2} // squares the king crosses, destination last
	if kingSide {
		between = []int{5, 6}
		transit = []int{5, 6}
	}
	for _, col := range between {
		if g.Board.PieceAt(homeRow, col) != nil {
			return false
		}
	}

	enemy := color.Opposite()
	if g.IsSquareAttacked(Square{homeRow, 4}, enemy) {
		return false
	}
	for _, col := range transit {
		if g.IsSquareAttacked(Square{homeRow, col}, enemy) {
			return false
		}
	}
	return true
}

// ApplyMove plays a move for the current player, promoting to a queen when a
// pawn reaches the last rank. It returns false, leaving the state untouched,
// when the move is illegal.
func (g *GameState) ApplyMove(from, to Square) bool {
	return g.ApplyMovePromote(from, to, Queen)
}

// ApplyMovePromote is ApplyMove with an explicit promotion choice.
func (g *GameState) ApplyMovePromote(from, to Square, promotion PieceType) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := g.Board.PieceAtSquare(from)
	if piece == nil || piece.Color != g.CurrentPlayer {
		return false
	}
	if !containsSquare(g.LegalMoves(piece), to) {
		return false
	}

	switch promotion {
	case Knight, Bishop, Rook, Queen:
	default:
		promotion = Queen
	}

	record := MoveRecord{From: from, To: to, PieceType: piece.Type}

	// Resolve the capture. En passant removes a pawn from a square distinct
	// from the destination.
	captured := g.Board.PieceAtSquare(to)
	isEnPassant := piece.Type == Pawn && to == g.EnPassantTarget && captured == nil
	if isEnPassant {
		captured = g.Board.removePiece(Square{from.Row, to.Col})
	}
	if captured != nil {
		g.Board.removePiece(captured.Pos)
		g.CapturedPieces[captured.Color] = append(g.CapturedPieces[captured.Color], *captured)
		record.Captured = captured.Type
	}

	if piece.Type == Pawn || captured != nil {
		g.HalfMoveClock = 0
	} else {
		g.HalfMoveClock++
	}

	// Castling relocates the matching rook alongside the king.
	isCastle := piece.Type == King && abs(to.Col-from.Col) == 2
	if isCastle {
		rookFrom, rookTo := Square{from.Row, 0}, Square{from.Row, 3}
		if to.Col == 6 {
			rookFrom, rookTo = Square{from.Row, 7}, Square{from.Row, 5}
		}
		rook := g.Board.removePiece(rookFrom)
		rook.HasMoved = true
		g.Board.setPiece(rook, rookTo)
	}

	g.Board.removePiece(from)
	g.Board.setPiece(piece, to)
	piece.HasMoved = true
	if piece.Type == King {
		g.kingPositions[piece.Color] = to
	}

	// Promotion swaps the type only; color, position and HasMoved carry over.
	promoted := NoPieceType
	if piece.Type == Pawn && (to.Row == 0 || to.Row == 7) {
		piece.Type = promotion
		promoted = promotion
	}

	// The en passant target exists only for the single reply to a double push.
	g.EnPassantTarget = NoSquare
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 {
		g.EnPassantTarget = Square{(from.Row + to.Row) / 2, from.Col}
	}

	record.Notation = moveNotation(record, isCastle, isEnPassant, promoted)
	g.MoveHistory = append(g.MoveHistory, record)

	g.CurrentPlayer = g.CurrentPlayer.Opposite()
	if g.CurrentPlayer == White {
		g.FullMoveNumber++
	}
	g.positionHistory = append(g.positionHistory, g.Hash())
	g.updateStatus()
	return true
}

// MakeNullMove passes the turn without moving: the side to move flips and
// the en passant target is cleared. Used only by search (null-move pruning
// and hint mode); it records no history and does not touch the clocks.
func (g *GameState) MakeNullMove() {
	g.CurrentPlayer = g.CurrentPlayer.Opposite()
	g.EnPassantTarget = NoSquare
}

// HasAnyLegalMove reports whether the side has at least one legal move.
func (g *GameState) HasAnyLegalMove(color Color) bool {
	for _, p := range g.Board.Pieces(color) {
		if len(g.LegalMoves(p)) > 0 {
			return true
		}
	}
	return false
}

func (g *GameState) updateStatus() {
	mover := g.CurrentPlayer
	inCheck := g.InCheck(mover)
	hasMoves := g.HasAnyLegalMove(mover)

	switch {
	case inCheck && !hasMoves:
		g.status = Checkmate
	case !inCheck && !hasMoves:
		g.status = Stalemate
	case g.HalfMoveClock >= 100:
		g.status = Draw
	case g.IsInsufficientMaterial():
		g.status = Draw
	case g.isThreefoldRepetition():
		g.status = Draw
	case inCheck:
		g.status = Check
	default:
		g.status = Playing
	}
}

// IsInsufficientMaterial reports the dead positions this engine recognizes:
// bare kings, or king plus a single minor piece against a bare king.
func (g *GameState) IsInsufficientMaterial() bool {
	var minors int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g.Board.squares[row][col]
			if p == nil || p.Type == King {
				continue
			}
			if p.Type == Bishop || p.Type == Knight {
				minors++
				continue
			}
			return false // any pawn, rook or queen is enough to play on
		}
	}
	return minors <= 1
}

func (g *GameState) isThreefoldRepetition() bool {
	if len(g.positionHistory) == 0 {
		return false
	}
	current := g.positionHistory[len(g.positionHistory)-1]
	seen := 0
	for _, h := range g.positionHistory {
		if h == current {
			seen++
		}
	}
	return seen >= 3
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
