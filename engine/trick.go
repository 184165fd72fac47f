package engine

// TrickPlay is one card laid into a trick.
type TrickPlay struct {
	Seat uint8
	Card Card
}

// Trick holds the state of one vaza: up to four plays in rotation order
// starting from Starter. MainSuit is set by the first play; Winner is -1
// until the trick resolves.
type Trick struct {
	Starter  uint8
	Plays    [NumSeats]TrickPlay
	NumPlays uint8
	MainSuit uint8
	Winner   int8
}

func newTrick(starter uint8) Trick {
	return Trick{Starter: starter, MainSuit: NoSuit, Winner: -1}
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool { return t.NumPlays == NumSeats }

// CardsPlayed returns the cards laid so far as a set.
func (t *Trick) CardsPlayed() CardSet {
	var s CardSet
	for i := uint8(0); i < t.NumPlays; i++ {
		s = s.Add(t.Plays[i].Card)
	}
	return s
}

// HasPlayed reports whether the seat has already played into this trick.
func (t *Trick) HasPlayed(seat uint8) bool {
	for i := uint8(0); i < t.NumPlays; i++ {
		if t.Plays[i].Seat == seat {
			return true
		}
	}
	return false
}

// add appends a play; the first play fixes the main suit.
func (t *Trick) add(seat uint8, c Card) {
	if t.NumPlays == 0 {
		t.MainSuit = c.Suit()
	}
	t.Plays[t.NumPlays] = TrickPlay{Seat: seat, Card: c}
	t.NumPlays++
}

// leader returns the play currently winning the trick under the given
// trump suit: the highest trump if any trump was played, otherwise the
// highest card of the main suit.
func (t *Trick) leader(trump uint8) TrickPlay {
	best := t.Plays[0]
	for i := uint8(1); i < t.NumPlays; i++ {
		p := t.Plays[i]
		if beats(p.Card, best.Card, t.MainSuit, trump) {
			best = p
		}
	}
	return best
}

// beats reports whether a wins over the currently leading card b.
func beats(a, b Card, mainSuit, trump uint8) bool {
	if trump != NoSuit && a.Suit() == trump {
		return b.Suit() != trump || a.Rank() > b.Rank()
	}
	if trump != NoSuit && b.Suit() == trump {
		return false
	}
	return a.Suit() == mainSuit && b.Suit() == mainSuit && a.Rank() > b.Rank() ||
		a.Suit() == mainSuit && b.Suit() != mainSuit
}

// WouldWin reports whether playing c into the trick as it stands would
// take the lead. On an empty trick every card leads.
func (t *Trick) WouldWin(c Card, trump uint8) bool {
	if t.NumPlays == 0 {
		return true
	}
	return beats(c, t.leader(trump).Card, t.MainSuit, trump)
}
