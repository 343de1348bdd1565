package engine

import "time"

// Config is the per-difficulty tuning bundle. Lower levels trade strength
// for human-feeling play with shallower depth, occasional unsearched moves
// and noisy evaluation; the top level has no randomness source at all, so
// its choice for a given position is reproducible.
type Config struct {
	Level          int
	MaxDepth       int
	MoveTime       time.Duration
	RandomMoveProb float64
	UseOpeningBook bool
	EvalNoise      int // half-width of the uniform evaluation noise, centipawns
}

var levelConfigs = [5]Config{
	{Level: 1, MaxDepth: 2, MoveTime: 500 * time.Millisecond, RandomMoveProb: 0.40, UseOpeningBook: false, EvalNoise: 30},
	{Level: 2, MaxDepth: 3, MoveTime: 1 * time.Second, RandomMoveProb: 0.20, UseOpeningBook: true, EvalNoise: 15},
	{Level: 3, MaxDepth: 4, MoveTime: 2 * time.Second, RandomMoveProb: 0.08, UseOpeningBook: true},
	{Level: 4, MaxDepth: 5, MoveTime: 3 * time.Second, RandomMoveProb: 0.02, UseOpeningBook: true},
	{Level: 5, MaxDepth: 6, MoveTime: 5 * time.Second},
}

// LevelConfig returns the configuration for a difficulty level, clamping
// out-of-range levels into [1,5].
func LevelConfig(level int) Config {
	return levelConfigs[Clamp(level, 1, 5)-1]
}
