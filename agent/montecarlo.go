package agent

import (
	"fmt"
	"math/rand/v2"

	"github.com/king-engine/king/engine"
)

// Trial budget parameters. The base count scales up for high-stakes round
// types and for decisions with more uncertainty, capped at MaxTrials.
const (
	BaseTrials = 100
	MaxTrials  = 300
)

// MonteCarlo chooses cards by sampled rollout: for each legal card it
// draws plausible opponent hands from its belief sets, plays the round out
// with the heuristic policy for every seat, and picks the card with the
// best average utility.
//
// The driver must call StartRound at the start of each round and Observe
// after every play by any seat; Choose relies on the belief sets those
// calls maintain. MonteCarlo is not safe for concurrent use.
type MonteCarlo struct {
	Seat    uint8
	Rollout Chooser

	rng    *rand.Rand
	belief *Belief

	// TrialFailures counts rollouts that errored and contributed a
	// neutral score instead of aborting the decision.
	TrialFailures int
}

// NewMonteCarlo builds a Monte Carlo chooser for the seat. A nil rng gets
// replaced per round with a PCG seeded from the round's state hash, which
// makes decisions reproducible for a given deal.
func NewMonteCarlo(seat uint8, rng *rand.Rand) *MonteCarlo {
	return &MonteCarlo{Seat: seat, Rollout: NewHeuristic(), rng: rng}
}

// StartRound resets the belief sets from the seat's dealt hand.
func (m *MonteCarlo) StartRound(r *engine.Round) {
	m.belief = NewBelief(m.Seat, r.Hand(m.Seat), r.Config.Type)
	if m.rng == nil {
		seed := r.StateHash()
		m.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeefcafe1234))
	}
}

// Observe narrows the belief sets after any seat's play. mainSuit is the
// trick's main suit at the moment of the play.
func (m *MonteCarlo) Observe(seat uint8, c engine.Card, mainSuit uint8) {
	if m.belief != nil {
		m.belief.Observe(seat, c, mainSuit)
	}
}

// budget returns the trial count for one decision.
func budget(r *engine.Round, handSize, numLegal int) int {
	n := float64(BaseTrials)
	switch {
	case r.Config.Type == engine.RoundKing:
		n *= 2.0
	case r.Config.Type.IsFesta():
		n *= 1.5
	case r.Config.Type == engine.RoundLast:
		n *= 1.3
	}
	if handSize > 8 {
		n *= 1.3
	}
	if numLegal > 5 {
		n *= 1.2
	}
	if n > MaxTrials {
		n = MaxTrials
	}
	return int(n)
}

// Choose picks the legal card with the best average rollout utility.
func (m *MonteCarlo) Choose(r *engine.Round, seat uint8, legal engine.CardSet) (engine.Card, error) {
	if legal.IsEmpty() {
		return engine.EmptyCard, fmt.Errorf("%w: empty legal set for seat %d", engine.ErrInvalidInput, seat)
	}
	if legal.Len() == 1 {
		return legal.Lowest(), nil
	}
	if m.belief == nil {
		m.StartRound(r)
	}

	hand := r.Hand(seat)
	trials := budget(r, hand.Len(), legal.Len())

	var sizes [engine.NumSeats]int
	for s := uint8(0); s < engine.NumSeats; s++ {
		if s != seat {
			sizes[s] = r.Hand(s).Len()
		}
	}

	best := engine.EmptyCard
	bestAvg := 0.0
	for _, c := range legal.Cards() {
		total := 0.0
		for t := 0; t < trials; t++ {
			score, err := m.trial(r, seat, c, sizes)
			if err != nil {
				m.TrialFailures++
				continue // neutral contribution
			}
			total += float64(score)
		}
		avg := total / float64(trials)
		if best == engine.EmptyCard || avg > bestAvg {
			best = c
			bestAvg = avg
		}
	}
	return best, nil
}

// trial runs one rollout: snapshot the live round, replace opponent hands
// with a belief sample, play the candidate card, and let the rollout
// policy finish the round for every seat.
func (m *MonteCarlo) trial(r *engine.Round, seat uint8, candidate engine.Card, sizes [engine.NumSeats]int) (int, error) {
	sim := r.Snapshot()
	for s, hand := range m.belief.Sample(sizes, m.rng) {
		if uint8(s) != seat {
			sim.SetHand(uint8(s), hand)
		}
	}

	if !sim.InTrick {
		if err := sim.StartTrick(); err != nil {
			return 0, err
		}
	}
	if err := sim.Play(seat, candidate); err != nil {
		return 0, err
	}
	if sim.Current.Complete() {
		if _, err := sim.ResolveTrick(); err != nil {
			return 0, err
		}
	}

	for !sim.IsOver() {
		if !sim.InTrick {
			if err := sim.StartTrick(); err != nil {
				return 0, err
			}
		}
		next, err := sim.ExpectedSeat()
		if err != nil {
			return 0, err
		}
		c, err := m.Rollout.Choose(&sim, next, sim.LegalPlays(next))
		if err != nil {
			return 0, err
		}
		if err := sim.Play(next, c); err != nil {
			return 0, err
		}
		if sim.Current.Complete() {
			if _, err := sim.ResolveTrick(); err != nil {
				return 0, err
			}
		}
	}
	return sim.Utility(seat), nil
}
