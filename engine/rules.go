package engine

import "fmt"

// RoundType identifies one of the ten rounds of a King session.
type RoundType uint8

const (
	RoundVazas RoundType = iota
	RoundCopas
	RoundHomens
	RoundMulheres
	RoundKing
	RoundLast
	RoundFesta1
	RoundFesta2
	RoundFesta3
	RoundFesta4

	NumRoundTypes = 10
)

var roundNames = [NumRoundTypes]string{
	"vazas", "copas", "homens", "mulheres", "king", "last",
	"festa1", "festa2", "festa3", "festa4",
}

func (t RoundType) String() string {
	if int(t) < len(roundNames) {
		return roundNames[t]
	}
	return fmt.Sprintf("round(%d)", uint8(t))
}

// IsFesta reports whether t is one of the four festa rounds.
func (t RoundType) IsFesta() bool { return t >= RoundFesta1 && t <= RoundFesta4 }

// Policy is the per-round-type rule record: which cards must be discarded
// when a seat is off the main suit, and which cards carry the penalty.
// A nil predicate means the rule does not apply to this round type.
type Policy struct {
	// ForcedDiscard constrains off-suit plays: while the seat still holds
	// a matching card, only matching cards are legal.
	ForcedDiscard func(Card) bool

	// PenaltyCard classifies the cards that cost points when won. Nil for
	// round types where the penalty is trick-based rather than card-based.
	PenaltyCard func(Card) bool
}

func isHeart(c Card) bool { return c.Suit() == SuitHearts }

func isManCard(c Card) bool { return c.IsMan() }

func isWomanCard(c Card) bool { return c.IsWoman() }

func isKingOfHearts(c Card) bool { return c == KingOfHearts }

var policies = [NumRoundTypes]Policy{
	RoundCopas:    {ForcedDiscard: isHeart, PenaltyCard: isHeart},
	RoundHomens:   {ForcedDiscard: isManCard, PenaltyCard: isManCard},
	RoundMulheres: {ForcedDiscard: isWomanCard, PenaltyCard: isWomanCard},
	RoundKing:     {PenaltyCard: isKingOfHearts},
}

// Policy returns the rule record for the round type.
func (t RoundType) Policy() Policy { return policies[t] }

// RoundConfig describes one round before play begins.
type RoundConfig struct {
	Type   RoundType
	Leader uint8 // seat that leads the first trick

	// Festa settings, ignored for non-festa rounds. Nulos selects the
	// avoid-tricks objective; otherwise the round is positivos and Trump
	// may name a trump suit (NoSuit for none).
	Nulos bool
	Trump uint8
}

// NewRoundConfig builds a configuration for a non-festa round.
func NewRoundConfig(t RoundType, leader uint8) RoundConfig {
	return RoundConfig{Type: t, Leader: leader, Trump: NoSuit}
}

// NewFestaConfig builds a festa configuration. Trump is ignored in nulos
// mode.
func NewFestaConfig(t RoundType, leader uint8, nulos bool, trump uint8) RoundConfig {
	if nulos {
		trump = NoSuit
	}
	return RoundConfig{Type: t, Leader: leader, Nulos: nulos, Trump: trump}
}

// Validate checks internal consistency of the configuration.
func (cfg RoundConfig) Validate() error {
	if cfg.Type >= NumRoundTypes {
		return fmt.Errorf("%w: unknown round type %d", ErrInvalidInput, cfg.Type)
	}
	if cfg.Leader >= NumSeats {
		return fmt.Errorf("%w: leader seat %d out of range", ErrInvalidInput, cfg.Leader)
	}
	if cfg.Trump != NoSuit && cfg.Trump > SuitSpades {
		return fmt.Errorf("%w: trump suit %d out of range", ErrInvalidInput, cfg.Trump)
	}
	if cfg.Trump != NoSuit && !cfg.Positivos() {
		return fmt.Errorf("%w: trump is only valid in festa positivos", ErrInvalidInput)
	}
	return nil
}

// Positivos reports whether this round maximizes tricks won.
func (cfg RoundConfig) Positivos() bool { return cfg.Type.IsFesta() && !cfg.Nulos }

// PenaltyCard reports whether c carries a penalty under this round's
// rules. Always false for trick-based round types.
func (cfg RoundConfig) PenaltyCard(c Card) bool {
	if p := cfg.Type.Policy().PenaltyCard; p != nil {
		return p(c)
	}
	return false
}
