package agent

import (
	"fmt"

	"github.com/king-engine/king/engine"
)

// Heuristic is the stateless greedy policy. It avoids winning tricks in
// every round type except festa positivos, where it tries to win them. It
// serves both as a baseline opponent and as the Monte Carlo rollout
// policy.
type Heuristic struct{}

// NewHeuristic returns the greedy policy.
func NewHeuristic() *Heuristic { return &Heuristic{} }

// Choose picks a card from legal for the seat.
func (h *Heuristic) Choose(r *engine.Round, seat uint8, legal engine.CardSet) (engine.Card, error) {
	if legal.IsEmpty() {
		return engine.EmptyCard, fmt.Errorf("%w: empty legal set for seat %d", engine.ErrInvalidInput, seat)
	}
	if legal.Len() == 1 {
		return legal.Lowest(), nil
	}
	if r.Config.Positivos() {
		return h.chooseWin(r, legal), nil
	}
	return h.chooseAvoid(r, legal), nil
}

// chooseAvoid implements the trick-avoiding policy used by every round
// type except festa positivos.
func (h *Heuristic) chooseAvoid(r *engine.Round, legal engine.CardSet) engine.Card {
	penalty := r.Config.Type.Policy().PenaltyCard
	trick := &r.Current
	trump := r.Config.Trump

	// Leading. Copas leads its penalty suit low to bleed hearts out
	// early. The other penalty rounds lead a low non-penalty card: a led
	// jack, queen or King of Hearts tends to win its own trick and hand
	// the leader the penalty.
	if trick.NumPlays == 0 {
		if r.Config.Type == engine.RoundCopas {
			if hearts := legal.Filter(penalty); !hearts.IsEmpty() {
				return hearts.Lowest()
			}
		} else if penalty != nil {
			if clean := legal.Filter(func(c engine.Card) bool { return !penalty(c) }); !clean.IsEmpty() {
				return clean.Lowest()
			}
		}
		return legal.Lowest()
	}

	safe := legal.Filter(func(c engine.Card) bool {
		return !trick.WouldWin(c, trump)
	})
	if !safe.IsEmpty() {
		// Safe to dump: unload the worst penalty card, or failing that
		// the highest safe card.
		if penalty != nil {
			if dump := safe.Filter(penalty); !dump.IsEmpty() {
				return dump.Highest()
			}
		}
		return safe.Highest()
	}

	// Every legal card wins the trick. Last to play means the trick is
	// already ours, so spend the highest card; otherwise commit as
	// little as possible.
	if trick.NumPlays == engine.NumSeats-1 {
		return legal.Highest()
	}
	return legal.Lowest()
}

// chooseWin implements the trick-seeking policy for festa positivos.
func (h *Heuristic) chooseWin(r *engine.Round, legal engine.CardSet) engine.Card {
	trick := &r.Current
	trump := r.Config.Trump

	if trick.NumPlays == 0 {
		return legal.Highest()
	}
	winning := legal.Filter(func(c engine.Card) bool {
		return trick.WouldWin(c, trump)
	})
	if !winning.IsEmpty() {
		// Win as cheaply as possible.
		return winning.Lowest()
	}
	return legal.Lowest()
}
