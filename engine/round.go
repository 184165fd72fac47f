package engine

import (
	"fmt"
	"math/rand/v2"
)

// Round is the full state of one round: thirteen tricks played out under
// one RoundConfig. Round is a flat value type with no pointers or slices,
// so a plain struct copy is a complete, independent snapshot.
type Round struct {
	Config RoundConfig

	Hands     [NumSeats]CardSet
	TricksWon [NumSeats]uint8
	WonCards  [NumSeats]CardSet

	// History holds completed tricks; History[0] is the first trick of
	// the round and History[12] the last.
	History   [HandSize]Trick
	NumTricks uint8

	Current Trick
	InTrick bool
	Leader  uint8 // seat leading the current or next trick
}

// NewRound builds a round from externally supplied hands. Hands must be
// disjoint 13-card sets covering the full deck.
func NewRound(cfg RoundConfig, hands [NumSeats]CardSet) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var union CardSet
	for seat, h := range hands {
		if h.Len() != HandSize {
			return nil, fmt.Errorf("%w: seat %d holds %d cards, want %d", ErrInvalidInput, seat, h.Len(), HandSize)
		}
		if !union.Intersect(h).IsEmpty() {
			return nil, fmt.Errorf("%w: seat %d shares cards with an earlier hand", ErrInvalidInput, seat)
		}
		union = union.Union(h)
	}
	return &Round{Config: cfg, Hands: hands, Leader: cfg.Leader}, nil
}

// NewDealtRound shuffles a fresh deck with rng and deals the four hands.
func NewDealtRound(cfg RoundConfig, rng *rand.Rand) (*Round, error) {
	deck := NewDeck()
	deck.Shuffle(rng)
	hands, err := deck.Deal(HandSize, RemainderDiscard)
	if err != nil {
		return nil, err
	}
	return NewRound(cfg, hands)
}

// Hand returns the seat's current hand.
func (r *Round) Hand(seat uint8) CardSet { return r.Hands[seat] }

// SetHand overwrites the seat's hand. Used by simulation to substitute
// sampled hands for hidden ones; no consistency checks are performed.
func (r *Round) SetHand(seat uint8, hand CardSet) { r.Hands[seat] = hand }

// Snapshot returns an independent copy of the round.
func (r *Round) Snapshot() Round { return *r }

// IsOver reports whether all thirteen tricks have been resolved.
func (r *Round) IsOver() bool { return r.NumTricks == HandSize }

// StartTrick opens the next trick with the current leader. It is an error
// to start a trick while one is in progress or after the round is over.
func (r *Round) StartTrick() error {
	if r.InTrick {
		return fmt.Errorf("%w: trick already in progress", ErrInvalidState)
	}
	if r.IsOver() {
		return fmt.Errorf("%w: round is over", ErrInvalidState)
	}
	r.Current = newTrick(r.Leader)
	r.InTrick = true
	return nil
}

// ExpectedSeat returns the seat whose turn it is in the current trick.
func (r *Round) ExpectedSeat() (uint8, error) {
	if !r.InTrick {
		return 0, fmt.Errorf("%w: no trick in progress", ErrInvalidState)
	}
	return (r.Current.Starter + r.Current.NumPlays) % NumSeats, nil
}

// Play lays the seat's card into the current trick. The seat must be next
// in rotation, must hold the card, and the card must be legal for the
// trick under the round's rules.
func (r *Round) Play(seat uint8, c Card) error {
	want, err := r.ExpectedSeat()
	if err != nil {
		return err
	}
	if seat != want {
		return fmt.Errorf("%w: seat %d played out of turn, expected %d", ErrIllegalPlay, seat, want)
	}
	if !r.Hands[seat].Has(c) {
		return fmt.Errorf("%w: seat %d does not hold %s", ErrIllegalPlay, seat, c)
	}
	if !r.LegalPlays(seat).Has(c) {
		return fmt.Errorf("%w: %s is not legal for seat %d", ErrIllegalPlay, c, seat)
	}
	r.Hands[seat] = r.Hands[seat].Remove(c)
	r.Current.add(seat, c)
	return nil
}

// ResolveTrick closes a complete trick: determines the winner, credits the
// trick and its cards to the winner, appends it to the history, and makes
// the winner the next leader.
func (r *Round) ResolveTrick() (uint8, error) {
	if !r.InTrick {
		return 0, fmt.Errorf("%w: no trick in progress", ErrInvalidState)
	}
	if !r.Current.Complete() {
		return 0, fmt.Errorf("%w: trick has %d plays", ErrInvalidState, r.Current.NumPlays)
	}
	win := r.Current.leader(r.Config.Trump)
	r.Current.Winner = int8(win.Seat)
	r.TricksWon[win.Seat]++
	r.WonCards[win.Seat] = r.WonCards[win.Seat].Union(r.Current.CardsPlayed())
	r.History[r.NumTricks] = r.Current
	r.NumTricks++
	r.InTrick = false
	r.Leader = win.Seat
	return win.Seat, nil
}

// Tricks returns the completed tricks in play order.
func (r *Round) Tricks() []Trick {
	return append([]Trick(nil), r.History[:r.NumTricks]...)
}

// PlayedCards returns every card laid so far, including the current trick.
func (r *Round) PlayedCards() CardSet {
	var s CardSet
	for i := uint8(0); i < r.NumTricks; i++ {
		s = s.Union(r.History[i].CardsPlayed())
	}
	if r.InTrick {
		s = s.Union(r.Current.CardsPlayed())
	}
	return s
}

// StateHash returns a fast FNV-1a hash of the round state, suitable for
// seeding simulation PRNGs deterministically. The same state always
// hashes to the same value.
func (r *Round) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	for seat := uint8(0); seat < NumSeats; seat++ {
		h ^= uint64(r.Hands[seat])
		h *= prime
		h ^= uint64(r.TricksWon[seat]) << 8
		h *= prime
	}
	h ^= uint64(r.NumTricks) << 16
	h *= prime
	h ^= uint64(r.Current.NumPlays) << 24
	h *= prime
	h ^= uint64(r.Leader) << 32
	h *= prime
	h ^= uint64(r.Config.Type) << 40
	h *= prime
	return h
}

// PenaltyExhausted reports whether every penalty card of this round type
// has already left the hands. Always false for trick-based round types,
// whose penalty never runs out before the round ends. Drivers may use
// this to cut a decided round short or to skip a dead round entirely.
func (r *Round) PenaltyExhausted() bool {
	pred := r.Config.Type.Policy().PenaltyCard
	if pred == nil {
		return false
	}
	for seat := uint8(0); seat < NumSeats; seat++ {
		if !r.Hands[seat].Filter(pred).IsEmpty() {
			return false
		}
	}
	return true
}
