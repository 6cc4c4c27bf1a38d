// Package engine implements the season simulation core: horse generation,
// training, scouting, loans, race simulation, post-race decay, random
// events and the season state machine. Every operation is a total function
// over (state, input, rng); the engine performs no I/O and never mutates a
// state it was given - callers receive a fresh clone.
package engine

import (
	"math/rand"

	"github.com/billcuious/horse-race-betting-simulator-sub000/internal/config"
)

// Engine evaluates simulation operations against a seeded RNG. Randomness
// is the only non-determinism source: two engines built from the same seed
// replay identical seasons given identical inputs.
type Engine struct {
	rng  *rand.Rand
	bal  config.Balance
	odds OddsStrategy
}

// New builds an engine from a seed and balance table, using the
// field-average odds strategy.
func New(seed int64, bal config.Balance) *Engine {
	return NewWithOdds(seed, bal, FieldAverageOdds{})
}

// NewWithOdds builds an engine with an explicit odds strategy.
func NewWithOdds(seed int64, bal config.Balance, odds OddsStrategy) *Engine {
	return &Engine{
		rng:  rand.New(rand.NewSource(seed)),
		bal:  bal,
		odds: odds,
	}
}

// Balance exposes the tuning table the engine was built with.
func (e *Engine) Balance() config.Balance { return e.bal }
