package chessgame

// Color of a side. White moves first and owns rows 6-7 in the board-array
// convention used throughout this package (row 0 is Black's back rank).
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece tag, usable directly as a table index.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

var pieceTypeNames = [7]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}
var pieceTypeLetters = [7]string{"", "", "N", "B", "R", "Q", "K"}

func (pt PieceType) String() string { return pieceTypeNames[pt] }

// Letter returns the SAN-style piece letter ("" for pawns).
func (pt PieceType) Letter() string { return pieceTypeLetters[pt] }

// Square addresses a board cell. Row 0 is Black's back rank, row 7 White's;
// column 0 is the "a" file.
type Square struct {
	Row int
	Col int
}

// NoSquare is the sentinel for "no square" (cleared en passant target,
// missing move, and so on).
var NoSquare = Square{-1, -1}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Index maps the square onto [0,63] for flat table lookups, row-major from
// Black's back rank.
func (s Square) Index() int { return s.Row*8 + s.Col }

// String renders coordinate notation, e.g. {6,4} -> "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.Col)) + string(rune('8'-s.Row))
}

// SquareFromString parses coordinate notation ("e2"). Returns NoSquare on
// malformed input.
func SquareFromString(str string) Square {
	if len(str) != 2 {
		return NoSquare
	}
	col := int(str[0] - 'a')
	row := int('8' - str[1])
	sq := Square{row, col}
	if !sq.Valid() {
		return NoSquare
	}
	return sq
}

// Piece is a single man on the board. Pieces are owned by the Board they sit
// on; HasMoved is set irreversibly on the first move and gates castling.
type Piece struct {
	Type     PieceType
	Color    Color
	Pos      Square
	HasMoved bool
}

// Value returns the intrinsic material value in centipawns.
func (p *Piece) Value() int { return pieceValues[p.Type] }

var pieceValues = [7]int{0, 100, 320, 330, 500, 900, 20000}

// PieceValue returns the intrinsic material value of a piece type.
func PieceValue(pt PieceType) int { return pieceValues[pt] }

// Board is an 8x8 grid with at most one piece per cell.
type Board struct {
	squares [8][8]*Piece
}

// PieceAt returns the piece on (row, col), or nil when the cell is empty or
// the coordinates are off the board.
func (b *Board) PieceAt(row, col int) *Piece {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return nil
	}
	return b.squares[row][col]
}

// PieceAtSquare is PieceAt for a Square value.
func (b *Board) PieceAtSquare(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

func (b *Board) setPiece(p *Piece, sq Square) {
	b.squares[sq.Row][sq.Col] = p
	if p != nil {
		p.Pos = sq
	}
}

func (b *Board) removePiece(sq Square) *Piece {
	p := b.squares[sq.Row][sq.Col]
	b.squares[sq.Row][sq.Col] = nil
	return p
}

// Pieces collects all pieces of one color, scanning from Black's back rank.
func (b *Board) Pieces(color Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.squares[row][col]; p != nil && p.Color == color {
				out = append(out, p)
			}
		}
	}
	return out
}

// Clone deep-copies the board; the clone owns fresh Piece values.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.squares[row][col]; p != nil {
				cp := *p
				nb.squares[row][col] = &cp
			}
		}
	}
	return nb
}

// setupStartingPosition fills the board with the standard initial army.
func (b *Board) setupStartingPosition() {
	*b = Board{}
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		b.setPiece(&Piece{Type: backRank[col], Color: Black}, Square{0, col})
		b.setPiece(&Piece{Type: Pawn, Color: Black}, Square{1, col})
		b.setPiece(&Piece{Type: Pawn, Color: White}, Square{6, col})
		b.setPiece(&Piece{Type: backRank[col], Color: White}, Square{7, col})
	}
}
