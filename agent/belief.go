package agent

import (
	"math/rand/v2"
	"sort"

	"github.com/king-engine/king/engine"
)

// Belief tracks, for one observing seat, the set of cards each opponent
// could still be holding. Candidates start as every card outside the
// owner's hand and narrow as plays reveal information.
type Belief struct {
	owner     uint8
	roundType engine.RoundType
	// candidates[owner] is unused.
	candidates [engine.NumSeats]engine.CardSet
}

// NewBelief initializes belief sets for a fresh round from the owner's
// dealt hand.
func NewBelief(owner uint8, hand engine.CardSet, rt engine.RoundType) *Belief {
	b := &Belief{owner: owner, roundType: rt}
	unseen := engine.FullDeck.Diff(hand)
	for seat := uint8(0); seat < engine.NumSeats; seat++ {
		if seat != owner {
			b.candidates[seat] = unseen
		}
	}
	return b
}

// Candidates returns the cards the seat could still hold.
func (b *Belief) Candidates(seat uint8) engine.CardSet { return b.candidates[seat] }

// Observe narrows the belief sets after any seat plays a card. mainSuit is
// the trick's main suit at the moment of the play (NoSuit when the play
// led the trick).
//
// Inferences, strongest first: nobody still holds a played card; a seat
// that failed to follow the main suit is void in it; a seat that was off
// the main suit and still did not discard a penalty card must be void in
// the round's penalty category too, since the forced-discard rule would
// have compelled one.
func (b *Belief) Observe(seat uint8, c engine.Card, mainSuit uint8) {
	for s := uint8(0); s < engine.NumSeats; s++ {
		b.candidates[s] = b.candidates[s].Remove(c)
	}
	if seat == b.owner || mainSuit == engine.NoSuit || c.Suit() == mainSuit {
		return
	}
	b.candidates[seat] = b.candidates[seat].WithoutSuit(mainSuit)

	pol := b.roundType.Policy()
	if pol.ForcedDiscard != nil && !pol.ForcedDiscard(c) {
		b.candidates[seat] = b.candidates[seat].Filter(func(x engine.Card) bool {
			return !pol.ForcedDiscard(x)
		})
	}
}

// Sample draws one concrete hand per opponent from the belief sets.
// sizes gives each seat's required hand size; the owner's entry is
// ignored. Assignment is most-constrained-first with disjointness across
// opponents, and fails soft: when a seat's candidate pool runs short the
// cardinality constraint relaxes to whatever unassigned candidates
// remain, rather than failing the draw.
func (b *Belief) Sample(sizes [engine.NumSeats]int, rng *rand.Rand) [engine.NumSeats]engine.CardSet {
	var out [engine.NumSeats]engine.CardSet

	order := make([]uint8, 0, engine.NumSeats-1)
	for seat := uint8(0); seat < engine.NumSeats; seat++ {
		if seat != b.owner {
			order = append(order, seat)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return b.candidates[order[i]].Len() < b.candidates[order[j]].Len()
	})

	var assigned engine.CardSet
	for _, seat := range order {
		avail := b.candidates[seat].Diff(assigned)
		if avail.Len() < sizes[seat] {
			// Relax the seat's own inferences: draw the shortfall from
			// any card some opponent could hold.
			pool := b.candidates[order[0]]
			for _, s := range order[1:] {
				pool = pool.Union(b.candidates[s])
			}
			avail = avail.Union(pool.Diff(assigned))
		}
		hand := drawN(avail, sizes[seat], rng)
		out[seat] = hand
		assigned = assigned.Union(hand)
	}
	return out
}

// drawN picks min(n, len) cards uniformly without replacement via a
// partial Fisher-Yates over the candidate slice.
func drawN(from engine.CardSet, n int, rng *rand.Rand) engine.CardSet {
	cards := from.Cards()
	if n > len(cards) {
		n = len(cards)
	}
	var out engine.CardSet
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
		out = out.Add(cards[i])
	}
	return out
}
