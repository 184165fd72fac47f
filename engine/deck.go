package engine

import (
	"fmt"
	"math/rand/v2"
)

// NumSeats is the fixed player count. Seats are numbered 0-3 and play
// proceeds clockwise.
const NumSeats = 4

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// RemainderPolicy controls what happens to cards left over when the deck
// does not divide evenly across seats. The standard 4-seat deal has no
// remainder; the policy matters only for custom deals.
type RemainderPolicy uint8

const (
	// RemainderRoundRobin hands leftover cards out one at a time starting
	// from the first seat.
	RemainderRoundRobin RemainderPolicy = iota
	// RemainderDiscard sets leftover cards aside, out of play.
	RemainderDiscard
)

// Deck is an ordered pile of cards, top at index 0.
type Deck struct {
	Cards []Card
}

// NewDeck returns a full 52-card deck in index order.
func NewDeck() *Deck {
	d := &Deck{Cards: make([]Card, 0, 52)}
	for i := 0; i < 52; i++ {
		d.Cards = append(d.Cards, cardFromIndex(i))
	}
	return d
}

// Shuffle permutes the deck in place using the injected rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Deal splits the deck across the seats, handSize cards each, and applies
// the remainder policy to whatever is left. The deck is consumed.
func (d *Deck) Deal(handSize int, policy RemainderPolicy) ([NumSeats]CardSet, error) {
	var hands [NumSeats]CardSet
	need := handSize * NumSeats
	if need > len(d.Cards) {
		return hands, fmt.Errorf("%w: deal needs %d cards, deck has %d", ErrInvalidInput, need, len(d.Cards))
	}
	for seat := 0; seat < NumSeats; seat++ {
		for i := 0; i < handSize; i++ {
			hands[seat] = hands[seat].Add(d.Cards[0])
			d.Cards = d.Cards[1:]
		}
	}
	if policy == RemainderRoundRobin {
		for seat := 0; len(d.Cards) > 0; seat = (seat + 1) % NumSeats {
			hands[seat] = hands[seat].Add(d.Cards[0])
			d.Cards = d.Cards[1:]
		}
	} else {
		d.Cards = d.Cards[:0]
	}
	return hands, nil
}
