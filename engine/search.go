package engine

import (
	"math/rand"
	"time"

	gm "chess-ai/chessgame"
)

// Quiescence explores capture chains at most this many plies past the
// horizon.
const qMaxDepth = 4

// topMoveChoices is how many order-ranked root moves the weak-play
// randomizer picks among.
const topMoveChoices = 3

// Searcher chooses moves by iterative-deepening alpha-beta search. All
// mutable search state (transposition, killer and history tables, node
// counter, deadline) belongs to one Searcher; killers and history reset at
// the top of every ChooseMove, the transposition table survives across
// moves but is dropped wholesale on difficulty changes or when it outgrows
// its cap. A Searcher must not be shared between concurrent searches.
type Searcher struct {
	cfg     Config
	tt      *TransTable
	killers KillerTable
	history HistoryTable
	book    *OpeningBook
	rng     *rand.Rand

	nodes    uint64
	deadline time.Time
	stopped  bool
}

// NewSearcher returns a Searcher at difficulty 3.
func NewSearcher() *Searcher {
	s := &Searcher{
		tt:   newTransTable(ttMaxEntries),
		book: NewOpeningBook(),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.cfg = LevelConfig(3)
	return s
}

// SetDifficulty reconfigures depth, time budget, randomness and book usage.
// Levels outside [1,5] are clamped. Cached search state is dropped since
// scores from another difficulty's search are not comparable.
func (s *Searcher) SetDifficulty(level int) {
	s.cfg = LevelConfig(level)
	s.tt.Clear()
	s.killers.Clear()
	s.history.Clear()
}

// Config returns the active difficulty configuration.
func (s *Searcher) Config() Config { return s.cfg }

// Nodes returns the node count of the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// ChooseMove picks a move for the side to move. It returns NoMove only when
// no legal move exists (the game status already reflects mate or stalemate).
// The game state is never mutated; all exploration happens on clones.
func (s *Searcher) ChooseMove(g *gm.GameState) Move {
	s.killers.Clear()
	s.history.Clear()
	s.nodes = 0
	s.stopped = false
	if s.tt.Len() >= ttMaxEntries {
		s.tt.Clear()
	}

	rootMoves := generateMoves(g)
	if len(rootMoves) == 0 {
		return NoMove
	}

	if s.cfg.UseOpeningBook {
		if m, ok := s.book.pickMove(g, s.rng); ok {
			return m
		}
	}

	// Weak-play emulation: occasionally settle for one of the top-ranked
	// moves without searching. Never consulted at zero probability, so
	// full-strength play stays deterministic.
	if s.cfg.RandomMoveProb > 0 && s.rng.Float64() < s.cfg.RandomMoveProb {
		return s.randomTopMove(g, rootMoves)
	}

	s.deadline = time.Now().Add(s.cfg.MoveTime)

	// Iterative deepening: each completed depth overwrites the previous
	// best; an interrupted depth contributes only if nothing completed yet.
	best := NoMove
	pvMove := NoMove
	for depth := 1; depth <= s.cfg.MaxDepth; depth++ {
		if depth > 1 && !time.Now().Before(s.deadline) {
			break
		}
		move, _, completed := s.searchRoot(g, rootMoves, depth, pvMove)
		if !move.IsNone() && (completed || best.IsNone()) {
			best = move
			pvMove = move
		}
		if !completed {
			break
		}
	}

	if best.IsNone() {
		// Budget exhausted before depth 1 finished a single move; any legal
		// move beats returning nothing.
		best = rootMoves[0]
	}
	return best
}

// Hint runs the identical search with the side to move overridden, to
// suggest a move for the given color without touching the live game.
func (s *Searcher) Hint(g *gm.GameState, forColor gm.Color) Move {
	scratch := g.Clone()
	if scratch.CurrentPlayer != forColor {
		scratch.MakeNullMove()
	}
	return s.ChooseMove(scratch)
}

// randomTopMove orders the moves and picks uniformly among the best few.
func (s *Searcher) randomTopMove(g *gm.GameState, moves []Move) Move {
	s.scoreMoves(g, moves, NoMove, 0)
	orderMoves(moves)
	return moves[s.rng.Intn(Min(topMoveChoices, len(moves)))]
}

// searchRoot runs one full-depth iteration over the root moves. It reports
// completed=false when the time budget ran out mid-loop; the best move found
// so far is still returned.
func (s *Searcher) searchRoot(g *gm.GameState, moves []Move, depth int, pvMove Move) (Move, int, bool) {
	s.scoreMoves(g, moves, pvMove, 0)
	orderMoves(moves)

	alpha, beta := -Infinity, Infinity
	best := NoMove
	bestScore := -Infinity

	for _, m := range moves {
		if !time.Now().Before(s.deadline) {
			return best, bestScore, false
		}
		child := applyToClone(g, m)
		score := -s.alphabeta(child, depth-1, -beta, -alpha, 1)
		if s.stopped {
			// The aborted child returned a sentinel, not a search result.
			return best, bestScore, false
		}
		if score > bestScore {
			best, bestScore = m, score
		}
		if score > alpha {
			alpha = score
		}
	}

	if !best.IsNone() {
		s.tt.Store(g.Hash(), depth, bestScore, best, BoundExact, 0)
	}
	return best, bestScore, true
}

// alphabeta is the negamax recursion: transposition probe, quiescence at the
// horizon, null-move pruning, then principal variation search over the
// ordered moves, recording killers/history on quiet cutoffs.
func (s *Searcher) alphabeta(g *gm.GameState, depth, alpha, beta, ply int) int {
	s.nodes++
	if s.nodes&1023 == 0 && !time.Now().Before(s.deadline) {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}
	if ply >= maxPly {
		return s.evalForSide(g)
	}

	// Clones recompute status on every applied move, so terminal detection
	// is a lookup. Mates prefer shorter distance from the root.
	switch g.Status() {
	case gm.Checkmate:
		return -(MateScore - ply)
	case gm.Stalemate, gm.Draw:
		return 0
	}

	alphaOrig := alpha
	hash := g.Hash()
	ttMove := NoMove
	if entry, ok := s.tt.Probe(hash, ply); ok && entry.Hash == hash {
		ttMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case BoundExact:
				return entry.Score
			case BoundLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case BoundUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(g, alpha, beta, qMaxDepth, ply)
	}

	inCheck := g.InCheck(g.CurrentPlayer)

	// Null-move pruning: if passing the turn still fails high, the position
	// is good enough to cut. Unsound in check or without real pieces
	// (zugzwang), so skip it there.
	if depth >= 3 && !inCheck && s.hasNonPawnMaterial(g) {
		nullChild := g.Clone()
		nullChild.MakeNullMove()
		score := -s.alphabeta(nullChild, depth-3, -beta, -beta+1, ply+1)
		if score >= beta && score < MateThreshold {
			return beta
		}
	}

	moves := generateMoves(g)
	if len(moves) == 0 {
		if inCheck {
			return -(MateScore - ply)
		}
		return 0
	}
	s.scoreMoves(g, moves, ttMove, ply)
	orderMoves(moves)

	bestScore := -Infinity
	bestMove := NoMove

	for i, m := range moves {
		child := applyToClone(g, m)

		var score int
		if i == 0 {
			score = -s.alphabeta(child, depth-1, -beta, -alpha, ply+1)
		} else {
			// Principal variation search: prove later moves worse with a
			// null window, re-search on the rare fail-high inside the window.
			score = -s.alphabeta(child, depth-1, -(alpha + 1), -alpha, ply+1)
			if score > alpha && score < beta {
				score = -s.alphabeta(child, depth-1, -beta, -alpha, ply+1)
			}
		}
		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.Captured == gm.NoPieceType {
				s.killers.Insert(ply, m)
				s.history.Increment(g.CurrentPlayer, m, depth)
			}
			break
		}
	}

	bound := BoundExact
	if bestScore <= alphaOrig {
		bound = BoundUpper
	} else if bestScore >= beta {
		bound = BoundLower
	}
	s.tt.Store(hash, depth, bestScore, bestMove, bound, ply)
	return bestScore
}

// quiescence resolves pending capture chains at the horizon so the static
// evaluation is never taken in the middle of an exchange.
func (s *Searcher) quiescence(g *gm.GameState, alpha, beta, depth, ply int) int {
	s.nodes++
	if s.nodes&1023 == 0 && !time.Now().Before(s.deadline) {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}

	switch g.Status() {
	case gm.Checkmate:
		return -(MateScore - ply)
	case gm.Stalemate, gm.Draw:
		return 0
	}

	standPat := s.evalForSide(g)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth <= 0 || ply >= maxPly {
		return standPat
	}

	captures := generateCaptures(g)
	scoreCaptures(captures)
	orderMoves(captures)

	bestScore := standPat
	for _, m := range captures {
		child := applyToClone(g, m)
		score := -s.quiescence(child, -beta, -alpha, depth-1, ply+1)
		if s.stopped {
			return 0
		}
		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestScore
}

// evalForSide returns the evaluation from the side to move's perspective,
// with the difficulty's zero-mean noise applied when configured.
func (s *Searcher) evalForSide(g *gm.GameState) int {
	score := Evaluate(g)
	if s.cfg.EvalNoise > 0 {
		score += s.rng.Intn(2*s.cfg.EvalNoise+1) - s.cfg.EvalNoise
	}
	if g.CurrentPlayer == gm.Black {
		return -score
	}
	return score
}

// hasNonPawnMaterial reports whether the side to move still has pieces
// beyond king and pawns.
func (s *Searcher) hasNonPawnMaterial(g *gm.GameState) bool {
	for _, p := range g.Board.Pieces(g.CurrentPlayer) {
		switch p.Type {
		case gm.Knight, gm.Bishop, gm.Rook, gm.Queen:
			return true
		}
	}
	return false
}
