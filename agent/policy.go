// Package agent provides card-choosing policies for the King engine: a
// per-round-type greedy heuristic and a Monte Carlo playout policy that
// samples opponent hands from tracked belief sets.
package agent

import "github.com/king-engine/king/engine"

// Chooser picks one card from the legal set for the given seat. The round
// is read-only to the chooser; implementations must not mutate it.
// Implementations return engine.ErrInvalidInput on an empty legal set.
type Chooser interface {
	Choose(r *engine.Round, seat uint8, legal engine.CardSet) (engine.Card, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(r *engine.Round, seat uint8, legal engine.CardSet) (engine.Card, error)

func (f ChooserFunc) Choose(r *engine.Round, seat uint8, legal engine.CardSet) (engine.Card, error) {
	return f(r, seat, legal)
}
