// Package game sequences a full King session: the ten rounds in their
// fixed order, per-festa configuration, skipped rounds, and the cumulative
// score ledger.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/king-engine/king/engine"
)

// RoundOrder is the fixed sequence of rounds in a session.
var RoundOrder = [engine.NumRoundTypes]engine.RoundType{
	engine.RoundVazas,
	engine.RoundCopas,
	engine.RoundHomens,
	engine.RoundMulheres,
	engine.RoundKing,
	engine.RoundLast,
	engine.RoundFesta1,
	engine.RoundFesta2,
	engine.RoundFesta3,
	engine.RoundFesta4,
}

// FestaChoice is the configuration the leading seat announces for a festa
// round before it is dealt.
type FestaChoice struct {
	Leader uint8
	Nulos  bool
	Trump  uint8 // NoSuit for none; ignored in nulos mode
}

// Game is one session: ten rounds, four seats, a ledger of outcomes.
type Game struct {
	ID     uuid.UUID
	Ledger Ledger

	next  int // index into RoundOrder
	festa map[engine.RoundType]FestaChoice
}

// NewGame starts a fresh session.
func NewGame() *Game {
	return &Game{ID: uuid.New(), festa: make(map[engine.RoundType]FestaChoice)}
}

// Finished reports whether all ten rounds are recorded.
func (g *Game) Finished() bool { return g.next >= len(RoundOrder) }

// NextRoundType returns the round type up next.
func (g *Game) NextRoundType() (engine.RoundType, error) {
	if g.Finished() {
		return 0, fmt.Errorf("%w: session is finished", engine.ErrInvalidState)
	}
	return RoundOrder[g.next], nil
}

// SetFestaChoice stores the announced configuration for a festa round. It
// must be set before the round is dealt; non-festa rounds reject it.
func (g *Game) SetFestaChoice(t engine.RoundType, choice FestaChoice) error {
	if !t.IsFesta() {
		return fmt.Errorf("%w: %s is not a festa round", engine.ErrInvalidInput, t)
	}
	if choice.Leader >= engine.NumSeats {
		return fmt.Errorf("%w: leader seat %d out of range", engine.ErrInvalidInput, choice.Leader)
	}
	g.festa[t] = choice
	return nil
}

// NextConfig builds the configuration for the upcoming round. Non-festa
// rounds rotate the lead one seat per round; festa rounds use the stored
// choice and fail if none was announced.
func (g *Game) NextConfig() (engine.RoundConfig, error) {
	t, err := g.NextRoundType()
	if err != nil {
		return engine.RoundConfig{}, err
	}
	if !t.IsFesta() {
		return engine.NewRoundConfig(t, uint8(g.next%engine.NumSeats)), nil
	}
	choice, ok := g.festa[t]
	if !ok {
		return engine.RoundConfig{}, fmt.Errorf("%w: festa round %s has no announced configuration", engine.ErrInvalidState, t)
	}
	return engine.NewFestaConfig(t, choice.Leader, choice.Nulos, choice.Trump), nil
}

// RecordRound folds a finished round into the ledger and advances the
// session. The round must match the upcoming type and be fully played.
func (g *Game) RecordRound(r *engine.Round) error {
	t, err := g.NextRoundType()
	if err != nil {
		return err
	}
	if r.Config.Type != t {
		return fmt.Errorf("%w: recorded %s, expected %s", engine.ErrInvalidState, r.Config.Type, t)
	}
	if !r.IsOver() && !r.PenaltyExhausted() {
		return fmt.Errorf("%w: round %s is not finished", engine.ErrInvalidState, t)
	}
	g.Ledger.Record(r)
	g.next++
	return nil
}

// SkipRound records the upcoming round as unplayed, with zero points for
// every seat, and advances the session.
func (g *Game) SkipRound() error {
	t, err := g.NextRoundType()
	if err != nil {
		return err
	}
	g.Ledger.RecordSkipped(engine.NewRoundConfig(t, uint8(g.next%engine.NumSeats)))
	g.next++
	return nil
}

// Totals returns cumulative points for every seat.
func (g *Game) Totals() [engine.NumSeats]int { return g.Ledger.Totals() }
