package engine

import (
	gm "chess-ai/chessgame"
)

// maxPly bounds search depth, including quiescence plies.
const maxPly = 64

// historyMaxVal keeps history scores below the capture/killer ordering
// offsets; the table is aged when any entry reaches it.
const historyMaxVal = 10000

// KillerTable remembers up to two quiet moves per ply that caused a beta
// cutoff, so siblings try them early.
type KillerTable struct {
	moves [maxPly + 1][2]Move
}

// Insert records a killer, demoting the previous first slot.
func (k *KillerTable) Insert(ply int, m Move) {
	if ply < 0 || ply > maxPly {
		return
	}
	if !k.moves[ply][0].Same(m) {
		k.moves[ply][1] = k.moves[ply][0]
		k.moves[ply][0] = m
	}
}

// IsKiller reports whether the move sits in this ply's killer slots.
func (k *KillerTable) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply > maxPly {
		return false
	}
	return k.moves[ply][0].Same(m) || k.moves[ply][1].Same(m)
}

// Clear resets every slot; called at the top of each search.
func (k *KillerTable) Clear() {
	for ply := 0; ply <= maxPly; ply++ {
		k.moves[ply][0] = NoMove
		k.moves[ply][1] = NoMove
	}
}

// HistoryTable accumulates cutoff-weighted scores per (side, from, to),
// rewarding quiet moves that keep causing cutoffs. Deeper cutoffs count
// quadratically more.
type HistoryTable struct {
	scores [2][64][64]int
}

// Increment boosts a move by depth squared, aging the side's table when an
// entry would exceed the cap.
func (h *HistoryTable) Increment(side gm.Color, m Move, depth int) {
	from, to := m.From.Index(), m.To.Index()
	h.scores[side][from][to] += depth * depth
	if h.scores[side][from][to] >= historyMaxVal {
		h.age(side)
	}
}

// Score returns the accumulated history value for a move.
func (h *HistoryTable) Score(side gm.Color, m Move) int {
	return h.scores[side][m.From.Index()][m.To.Index()]
}

func (h *HistoryTable) age(side gm.Color) {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			h.scores[side][from][to] /= 2
		}
	}
}

// Clear resets both sides' tables; called at the top of each search.
func (h *HistoryTable) Clear() {
	h.scores = [2][64][64]int{}
}
