package engine

// Bound type of a stored score.
const (
	BoundExact uint8 = iota
	BoundLower
	BoundUpper
)

// Past this entry count the table is evicted wholesale; no fine-grained
// replacement scheme is attempted.
const ttMaxEntries = 1 << 20

// TTEntry caches the result of searching one position to some depth.
type TTEntry struct {
	Hash  uint64
	Depth int
	Score int
	Move  Move
	Bound uint8
}

// TransTable is the transposition table, keyed by the Zobrist hash of
// (piece placement, side to move, en passant file). It belongs to exactly
// one Searcher and is never shared.
type TransTable struct {
	entries    map[uint64]TTEntry
	maxEntries int
}

func newTransTable(maxEntries int) *TransTable {
	return &TransTable{
		entries:    make(map[uint64]TTEntry),
		maxEntries: maxEntries,
	}
}

// Len returns the number of cached positions.
func (tt *TransTable) Len() int { return len(tt.entries) }

// Clear evicts every entry.
func (tt *TransTable) Clear() {
	tt.entries = make(map[uint64]TTEntry)
}

// Probe looks up a position. Mate scores are stored relative to the node
// they were found at and converted back to root-relative here.
func (tt *TransTable) Probe(hash uint64, ply int) (TTEntry, bool) {
	entry, ok := tt.entries[hash]
	if !ok {
		return TTEntry{}, false
	}
	if entry.Score >= MateThreshold {
		entry.Score -= ply
	} else if entry.Score <= -MateThreshold {
		entry.Score += ply
	}
	return entry, true
}

// Store caches a search result, clearing the whole table first if it has
// outgrown its cap.
func (tt *TransTable) Store(hash uint64, depth, score int, move Move, bound uint8, ply int) {
	if len(tt.entries) >= tt.maxEntries {
		tt.Clear()
	}
	if score >= MateThreshold {
		score += ply
	} else if score <= -MateThreshold {
		score -= ply
	}
	tt.entries[hash] = TTEntry{Hash: hash, Depth: depth, Score: score, Move: move, Bound: bound}
}
