package chessgame

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN here is position setup for tests and tooling, not a game-record
// import/export format: a parsed state has an empty move history.

func pieceFromChar(ch rune) (PieceType, Color) {
	color := White
	lower := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
	} else {
		lower = ch + ('a' - 'A')
	}
	switch lower {
	case 'p':
		return Pawn, color
	case 'n':
		return Knight, color
	case 'b':
		return Bishop, color
	case 'r':
		return Rook, color
	case 'q':
		return Queen, color
	case 'k':
		return King, color
	default:
		return NoPieceType, color
	}
}

func charFromPiece(p *Piece) byte {
	chars := [7]byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}
	ch := chars[p.Type]
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a GameState from a FEN string. Returns an error if the
// string is malformed or does not describe a position with one king per side.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("fen: need at least 4 fields")
	}

	g := &GameState{
		Board:           &Board{},
		EnPassantTarget: NoSquare,
		FullMoveNumber:  1,
	}
	g.kingPositions[White] = NoSquare
	g.kingPositions[Black] = NoSquare

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("fen: placement needs 8 ranks")
	}
	for row, rank := range ranks {
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			pt, color := pieceFromChar(ch)
			if pt == NoPieceType {
				return nil, errors.New("fen: bad piece character " + string(ch))
			}
			if col > 7 {
				return nil, errors.New("fen: rank overflow")
			}
			sq := Square{row, col}
			// Non-starting squares imply the piece has moved; castling
			// rights below re-open the king/rook flags that matter.
			piece := &Piece{Type: pt, Color: color, HasMoved: true}
			g.Board.setPiece(piece, sq)
			if pt == King {
				g.kingPositions[color] = sq
			}
			col++
		}
		if col != 8 {
			return nil, errors.New("fen: rank underflow")
		}
	}
	if !g.kingPositions[White].Valid() || !g.kingPositions[Black].Valid() {
		return nil, errors.New("fen: both kings required")
	}

	switch fields[1] {
	case "w":
		g.CurrentPlayer = White
	case "b":
		g.CurrentPlayer = Black
	default:
		return nil, errors.New("fen: bad side to move")
	}

	// Castling rights translate into unmoved king/rook pairs.
	applyRight := func(color Color, homeRow, rookCol int) {
		king := g.Board.PieceAt(homeRow, 4)
		rook := g.Board.PieceAt(homeRow, rookCol)
		if king != nil && king.Type == King && king.Color == color &&
			rook != nil && rook.Type == Rook && rook.Color == color {
			king.HasMoved = false
			rook.HasMoved = false
		}
	}
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				applyRight(White, 7, 7)
			case 'Q':
				applyRight(White, 7, 0)
			case 'k':
				applyRight(Black, 0, 7)
			case 'q':
				applyRight(Black, 0, 0)
			}
		}
	}

	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if !sq.Valid() {
			return nil, errors.New("fen: bad en passant square")
		}
		g.EnPassantTarget = sq
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			g.HalfMoveClock = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			g.FullMoveNumber = n
		}
	}

	g.positionHistory = []uint64{g.Hash()}
	g.updateStatus()
	return g, nil
}

// FEN renders the current position as a FEN string.
func (g *GameState) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := g.Board.squares[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if g.CurrentPlayer == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if g.castlingRightIntact(White, 7) {
		rights += "K"
	}
	if g.castlingRightIntact(White, 0) {
		rights += "Q"
	}
	if g.castlingRightIntact(Black, 7) {
		rights += "k"
	}
	if g.castlingRightIntact(Black, 0) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteString(" " + g.EnPassantTarget.String())
	sb.WriteString(" " + strconv.Itoa(g.HalfMoveClock))
	sb.WriteString(" " + strconv.Itoa(g.FullMoveNumber))
	return sb.String()
}

// castlingRightIntact checks only the unmoved king/rook pair, not the
// transient conditions (check, occupied squares) that CanCastle adds.
func (g *GameState) castlingRightIntact(color Color, rookCol int) bool {
	homeRow := 7
	if color == Black {
		homeRow = 0
	}
	king := g.Board.PieceAt(homeRow, 4)
	rook := g.Board.PieceAt(homeRow, rookCol)
	return king != nil && king.Type == King && king.Color == color && !king.HasMoved &&
		rook != nil && rook.Type == Rook && rook.Color == color && !rook.HasMoved
}
