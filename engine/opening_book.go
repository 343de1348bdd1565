package engine

import (
	"math/rand"

	gm "chess-ai/chessgame"
)

// bookPlyLimit is how deep into the game the book is consulted.
const bookPlyLimit = 8

// OpeningBook maps a move-sequence prefix (concatenated from-to coordinate
// pairs) to candidate replies in the same notation. Lookup is an exact match
// against the game's history so far; the searcher picks uniformly among the
// replies. The table is static: no learning, no external files.
type OpeningBook struct {
	lines map[string][]string
}

// NewOpeningBook returns the built-in book: a few mainstream lines for the
// first handful of plies on both sides.
func NewOpeningBook() *OpeningBook {
	return &OpeningBook{lines: map[string][]string{
		// First moves
		"": {"e2e4", "d2d4", "g1f3", "c2c4"},

		// 1.e4
		"e2e4":                 {"e7e5", "c7c5", "e7e6", "c7c6"},
		"e2e4e7e5":             {"g1f3", "f1c4", "b1c3"},
		"e2e4e7e5g1f3":         {"b8c6", "g8f6", "d7d6"},
		"e2e4e7e5g1f3b8c6":     {"f1b5", "f1c4", "d2d4"},
		"e2e4e7e5g1f3b8c6f1b5": {"a7a6", "g8f6", "f8c5"},
		"e2e4e7e5g1f3b8c6f1c4": {"f8c5", "g8f6"},
		"e2e4e7e5g1f3b8c6d2d4": {"e5d4"},
		"e2e4e7e5f1c4":         {"g8f6", "b8c6"},
		"e2e4e7e5b1c3":         {"g8f6", "b8c6"},

		// Sicilian
		"e2e4c7c5":         {"g1f3", "b1c3", "c2c3"},
		"e2e4c7c5g1f3":     {"d7d6", "b8c6", "e7e6"},
		"e2e4c7c5g1f3d7d6": {"d2d4"},
		"e2e4c7c5g1f3b8c6": {"d2d4", "f1b5"},

		// French and Caro-Kann
		"e2e4e7e6":     {"d2d4", "d2d3"},
		"e2e4e7e6d2d4": {"d7d5"},
		"e2e4c7c6":     {"d2d4", "b1c3"},
		"e2e4c7c6d2d4": {"d7d5"},

		// 1.d4
		"d2d4":             {"d7d5", "g8f6"},
		"d2d4d7d5":         {"c2c4", "g1f3"},
		"d2d4d7d5c2c4":     {"e7e6", "c7c6", "d5c4"},
		"d2d4d7d5c2c4e7e6": {"b1c3", "g1f3"},
		"d2d4d7d5g1f3":     {"g8f6", "e7e6"},
		"d2d4g8f6":         {"c2c4", "g1f3"},
		"d2d4g8f6c2c4":     {"e7e6", "g7g6", "c7c5"},
		"d2d4g8f6c2c4e7e6": {"b1c3", "g1f3"},
		"d2d4g8f6c2c4g7g6": {"b1c3", "g1f3"},

		// Flank openings
		"g1f3":     {"d7d5", "g8f6", "c7c5"},
		"g1f3d7d5": {"d2d4", "g2g3"},
		"g1f3g8f6": {"c2c4", "d2d4", "g2g3"},
		"c2c4":     {"e7e5", "g8f6", "c7c5", "e7e6"},
		"c2c4e7e5": {"b1c3", "g2g3"},
		"c2c4g8f6": {"b1c3", "d2d4"},
	}}
}

// Lookup returns the candidate replies for a move-sequence key, or nil.
func (b *OpeningBook) Lookup(key string) []string {
	return b.lines[key]
}

// pickMove resolves the current history against the book and converts a
// uniformly chosen reply into a legal Move. It refuses positions that were
// not reached by playing out a game from the initial position (the book key
// would be meaningless there).
func (b *OpeningBook) pickMove(g *gm.GameState, rng *rand.Rand) (Move, bool) {
	history := g.MoveHistory
	if len(history) >= bookPlyLimit {
		return NoMove, false
	}
	// A state set up from an arbitrary position has an empty history but a
	// non-initial move number; its empty key must not hit the book.
	if g.FullMoveNumber != len(history)/2+1 {
		return NoMove, false
	}

	candidates := b.Lookup(gm.MoveSequenceKey(history))
	if len(candidates) == 0 {
		return NoMove, false
	}

	// Uniform choice; fall through the rest in random order in case a
	// candidate is illegal in the actual position.
	order := rng.Perm(len(candidates))
	for _, idx := range order {
		notation := candidates[idx]
		if len(notation) != 4 {
			continue
		}
		from := gm.SquareFromString(notation[:2])
		to := gm.SquareFromString(notation[2:])
		if !from.Valid() || !to.Valid() {
			continue
		}
		if m, ok := findMove(g, from, to); ok {
			return m, true
		}
	}
	return NoMove, false
}
