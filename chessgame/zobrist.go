package chessgame

import "math/rand"

// Zobrist keys: one pseudorandom constant per (color, piece type, square),
// one for Black to move, and one per en passant file. A position's hash is
// the XOR of the constants for its occupied squares plus the side/en-passant
// terms. Hashes are recomputed from scratch; the clone-per-move search model
// makes incremental updates unnecessary.
var (
	zobristPiece [2][7][64]uint64
	zobristSide  uint64
	zobristEP    [8]uint64
)

func init() {
	// Fixed seed so hashes are reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for color := 0; color < 2; color++ {
		for pt := 1; pt < 7; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[color][pt][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
	for file := 0; file < 8; file++ {
		zobristEP[file] = rnd.Uint64()
	}
}

// Hash returns the Zobrist hash of the current position: piece placement,
// side to move, and en passant file.
func (g *GameState) Hash() uint64 {
	var key uint64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := g.Board.squares[row][col]; p != nil {
				key ^= zobristPiece[p.Color][p.Type][row*8+col]
			}
		}
	}
	if g.CurrentPlayer == Black {
		key ^= zobristSide
	}
	if g.EnPassantTarget.Valid() {
		key ^= zobristEP[g.EnPassantTarget.Col]
	}
	return key
}
