package engine

import (
	"math/bits"
	"strings"
)

// CardSet is a bitmask over the 52-card deck index space. The zero value is
// the empty set. Sets are values; all operations return new sets.
type CardSet uint64

// FullDeck contains all 52 cards.
const FullDeck CardSet = (1 << 52) - 1

// Add returns the set with c included.
func (s CardSet) Add(c Card) CardSet { return s | 1<<c.Index() }

// Remove returns the set with c excluded.
func (s CardSet) Remove(c Card) CardSet { return s &^ (1 << c.Index()) }

// Has reports whether c is in the set.
func (s CardSet) Has(c Card) bool { return s&(1<<c.Index()) != 0 }

// Len returns the number of cards in the set.
func (s CardSet) Len() int { return bits.OnesCount64(uint64(s)) }

// IsEmpty reports whether the set holds no cards.
func (s CardSet) IsEmpty() bool { return s == 0 }

// Union returns the set of cards in either set.
func (s CardSet) Union(o CardSet) CardSet { return s | o }

// Intersect returns the set of cards in both sets.
func (s CardSet) Intersect(o CardSet) CardSet { return s & o }

// Diff returns the cards in s that are not in o.
func (s CardSet) Diff(o CardSet) CardSet { return s &^ o }

// suitMask covers the 13 cards of one suit.
func suitMask(suit uint8) CardSet {
	return CardSet(0x1FFF) << (13 * suit)
}

// OfSuit returns the subset of s with the given suit.
func (s CardSet) OfSuit(suit uint8) CardSet {
	if suit == NoSuit {
		return 0
	}
	return s & suitMask(suit)
}

// WithoutSuit returns s with every card of the given suit removed.
func (s CardSet) WithoutSuit(suit uint8) CardSet {
	if suit == NoSuit {
		return s
	}
	return s &^ suitMask(suit)
}

// Filter returns the subset of s for which keep returns true.
func (s CardSet) Filter(keep func(Card) bool) CardSet {
	var out CardSet
	for m := s; m != 0; m &= m - 1 {
		c := cardFromIndex(bits.TrailingZeros64(uint64(m)))
		if keep(c) {
			out = out.Add(c)
		}
	}
	return out
}

// Cards returns the cards in deck-index order (suit-major, ranks ascending).
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for m := s; m != 0; m &= m - 1 {
		out = append(out, cardFromIndex(bits.TrailingZeros64(uint64(m))))
	}
	return out
}

// Lowest returns the lowest-ranked card in the set; suit order breaks rank
// ties (hearts first). Returns EmptyCard on an empty set.
func (s CardSet) Lowest() Card {
	best := EmptyCard
	for m := s; m != 0; m &= m - 1 {
		c := cardFromIndex(bits.TrailingZeros64(uint64(m)))
		if best == EmptyCard || c.Rank() < best.Rank() {
			best = c
		}
	}
	return best
}

// Highest returns the highest-ranked card in the set; suit order breaks rank
// ties. Returns EmptyCard on an empty set.
func (s CardSet) Highest() Card {
	best := EmptyCard
	for m := s; m != 0; m &= m - 1 {
		c := cardFromIndex(bits.TrailingZeros64(uint64(m)))
		if best == EmptyCard || c.Rank() > best.Rank() {
			best = c
		}
	}
	return best
}

// String renders the set as space-separated card tokens in index order.
func (s CardSet) String() string {
	var b strings.Builder
	for i, c := range s.Cards() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
