package chessgame

// moveNotation builds the display string stored on a MoveRecord. It is a
// coordinate-based form ("Ng1f3", "exd6 e.p.", "e7e8=Q", "O-O") rather than
// full SAN; the UI history list and tests only need something readable and
// unambiguous.
func moveNotation(r MoveRecord, isCastle, isEnPassant bool, promoted PieceType) string {
	if isCastle {
		if r.To.Col == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	s := r.PieceType.Letter() + r.From.String()
	if r.Captured != NoPieceType {
		s += "x"
	}
	s += r.To.String()
	if promoted != NoPieceType {
		s += "=" + promoted.Letter()
	}
	if isEnPassant {
		s += " e.p."
	}
	return s
}

// MoveSequenceKey concatenates the compact from-to encodings of every move
// played so far ("e2e4e7e5..."); the opening book is keyed by these prefixes.
func MoveSequenceKey(history []MoveRecord) string {
	key := ""
	for _, r := range history {
		key += r.CoordKey()
	}
	return key
}
