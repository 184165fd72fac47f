package engine

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func mustCard(t *testing.T, token string) Card {
	t.Helper()
	c, err := ParseCard(token)
	if err != nil {
		t.Fatalf("bad card token %q: %v", token, err)
	}
	return c
}

// suitHands deals each seat one complete suit: hearts, diamonds, clubs,
// spades in seat order.
func suitHands() [NumSeats]CardSet {
	var hands [NumSeats]CardSet
	for seat := uint8(0); seat < NumSeats; seat++ {
		hands[seat] = FullDeck.OfSuit(seat)
	}
	return hands
}

func conserved(r *Round) bool {
	total := r.Current.CardsPlayed().Len()
	for seat := uint8(0); seat < NumSeats; seat++ {
		total += r.Hands[seat].Len() + r.WonCards[seat].Len()
	}
	return total == 52
}

func TestTrickWinnerMainSuit(t *testing.T) {
	tr := newTrick(0)
	tr.add(0, mustCard(t, "4S"))
	tr.add(1, mustCard(t, "7S"))
	tr.add(2, mustCard(t, "2H"))
	tr.add(3, mustCard(t, "KS"))

	if tr.MainSuit != SuitSpades {
		t.Fatalf("expected main suit spades, got %d", tr.MainSuit)
	}
	if win := tr.leader(NoSuit); win.Seat != 3 {
		t.Errorf("expected seat 3 to win with KS, got seat %d (%s)", win.Seat, win.Card)
	}
}

func TestTrickWinnerTrumpOverride(t *testing.T) {
	tr := newTrick(0)
	tr.add(0, mustCard(t, "4S"))
	tr.add(1, mustCard(t, "7S"))
	tr.add(2, mustCard(t, "2H"))
	tr.add(3, mustCard(t, "KS"))

	if win := tr.leader(SuitHearts); win.Seat != 2 {
		t.Errorf("expected seat 2 to win with trump 2H, got seat %d (%s)", win.Seat, win.Card)
	}
}

func TestTrickWouldWin(t *testing.T) {
	tr := newTrick(1)
	tr.add(1, mustCard(t, "9C"))
	tr.add(2, mustCard(t, "QC"))

	if tr.WouldWin(mustCard(t, "JC"), NoSuit) {
		t.Errorf("JC should not beat QC")
	}
	if !tr.WouldWin(mustCard(t, "KC"), NoSuit) {
		t.Errorf("KC should beat QC")
	}
	if tr.WouldWin(mustCard(t, "AH"), NoSuit) {
		t.Errorf("off-suit AH should not win without trump")
	}
	if !tr.WouldWin(mustCard(t, "2H"), SuitHearts) {
		t.Errorf("trump 2H should win")
	}
}

func TestNewRoundValidation(t *testing.T) {
	hands := suitHands()
	if _, err := NewRound(NewRoundConfig(RoundVazas, 0), hands); err != nil {
		t.Fatalf("valid hands rejected: %v", err)
	}

	short := hands
	short[0] = short[0].Remove(mustCard(t, "AH"))
	if _, err := NewRound(NewRoundConfig(RoundVazas, 0), short); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for 12-card hand, got %v", err)
	}

	overlap := hands
	overlap[1] = overlap[0]
	if _, err := NewRound(NewRoundConfig(RoundVazas, 0), overlap); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for overlapping hands, got %v", err)
	}
}

func TestRoundConfigValidation(t *testing.T) {
	bad := RoundConfig{Type: RoundVazas, Trump: SuitHearts}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("trump outside festa positivos: expected ErrInvalidInput, got %v", err)
	}
	good := NewFestaConfig(RoundFesta2, 1, false, SuitHearts)
	if err := good.Validate(); err != nil {
		t.Errorf("positivos with trump rejected: %v", err)
	}
	nulos := NewFestaConfig(RoundFesta1, 0, true, SuitHearts)
	if nulos.Trump != NoSuit {
		t.Errorf("nulos config should drop trump, got %d", nulos.Trump)
	}
}

func TestPlayEnforcement(t *testing.T) {
	r, err := NewRound(NewRoundConfig(RoundVazas, 0), suitHands())
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Play(0, mustCard(t, "2H")); !errors.Is(err, ErrInvalidState) {
		t.Errorf("play before StartTrick: expected ErrInvalidState, got %v", err)
	}
	if err := r.StartTrick(); err != nil {
		t.Fatal(err)
	}
	if err := r.StartTrick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double StartTrick: expected ErrInvalidState, got %v", err)
	}
	if err := r.Play(1, mustCard(t, "2D")); !errors.Is(err, ErrIllegalPlay) {
		t.Errorf("out-of-turn play: expected ErrIllegalPlay, got %v", err)
	}
	if err := r.Play(0, mustCard(t, "2D")); !errors.Is(err, ErrIllegalPlay) {
		t.Errorf("card not held: expected ErrIllegalPlay, got %v", err)
	}
	if _, err := r.ResolveTrick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("resolving incomplete trick: expected ErrInvalidState, got %v", err)
	}
}

func TestFullRoundConservationAndRotation(t *testing.T) {
	r, err := NewRound(NewRoundConfig(RoundVazas, 0), suitHands())
	if err != nil {
		t.Fatal(err)
	}

	for !r.IsOver() {
		if err := r.StartTrick(); err != nil {
			t.Fatal(err)
		}
		for !r.Current.Complete() {
			seat, err := r.ExpectedSeat()
			if err != nil {
				t.Fatal(err)
			}
			legal := r.LegalPlays(seat)
			if legal.IsEmpty() {
				t.Fatalf("empty legal set for seat %d", seat)
			}
			if !legal.Diff(r.Hands[seat]).IsEmpty() {
				t.Fatalf("legal plays not a subset of hand for seat %d", seat)
			}
			if err := r.Play(seat, legal.Lowest()); err != nil {
				t.Fatal(err)
			}
			if !conserved(r) {
				t.Fatalf("conservation violated after play in trick %d", r.NumTricks)
			}
		}
		winner, err := r.ResolveTrick()
		if err != nil {
			t.Fatal(err)
		}
		// Only seat 0 holds the main suit, so it wins every trick and
		// keeps the lead.
		if winner != 0 {
			t.Fatalf("expected seat 0 to win, got %d", winner)
		}
	}

	if r.NumTricks != 13 {
		t.Errorf("expected 13 resolved tricks, got %d", r.NumTricks)
	}
	if r.TricksWon != [NumSeats]uint8{13, 0, 0, 0} {
		t.Errorf("unexpected trick counts: %v", r.TricksWon)
	}
	if got := r.Scores(); got != [NumSeats]int{-260, 0, 0, 0} {
		t.Errorf("expected [-260 0 0 0], got %v", got)
	}
}

func TestDealtRoundIsComplete(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	r, err := NewDealtRound(NewRoundConfig(RoundCopas, 2), rng)
	if err != nil {
		t.Fatal(err)
	}
	var union CardSet
	for seat := uint8(0); seat < NumSeats; seat++ {
		if r.Hands[seat].Len() != HandSize {
			t.Errorf("seat %d dealt %d cards", seat, r.Hands[seat].Len())
		}
		union = union.Union(r.Hands[seat])
	}
	if union != FullDeck {
		t.Errorf("deal does not cover the deck")
	}
	if r.Leader != 2 {
		t.Errorf("expected leader 2, got %d", r.Leader)
	}
}

func TestSnapshotIndependence(t *testing.T) {
	r, err := NewRound(NewRoundConfig(RoundVazas, 0), suitHands())
	if err != nil {
		t.Fatal(err)
	}
	snap := r.Snapshot()
	if err := r.StartTrick(); err != nil {
		t.Fatal(err)
	}
	if err := r.Play(0, mustCard(t, "2H")); err != nil {
		t.Fatal(err)
	}
	if snap.InTrick || snap.Hands[0].Len() != 13 {
		t.Errorf("snapshot aliased live round state")
	}
	if r.Hands[0].Len() != 12 {
		t.Errorf("live round did not advance")
	}
}

func TestPenaltyExhausted(t *testing.T) {
	r, err := NewRound(NewRoundConfig(RoundKing, 0), suitHands())
	if err != nil {
		t.Fatal(err)
	}
	if r.PenaltyExhausted() {
		t.Errorf("KH still in a hand, should not be exhausted")
	}
	r.Hands[0] = r.Hands[0].Remove(KingOfHearts)
	r.WonCards[1] = r.WonCards[1].Add(KingOfHearts)
	if !r.PenaltyExhausted() {
		t.Errorf("KH left all hands, should be exhausted")
	}

	vazas, _ := NewRound(NewRoundConfig(RoundVazas, 0), suitHands())
	if vazas.PenaltyExhausted() {
		t.Errorf("trick-based rounds never exhaust early")
	}
}

func TestStateHashDeterministic(t *testing.T) {
	r1, _ := NewRound(NewRoundConfig(RoundVazas, 0), suitHands())
	r2, _ := NewRound(NewRoundConfig(RoundVazas, 0), suitHands())
	if r1.StateHash() != r2.StateHash() {
		t.Errorf("identical states should hash equal")
	}
	r3, _ := NewRound(NewRoundConfig(RoundCopas, 0), suitHands())
	if r1.StateHash() == r3.StateHash() {
		t.Errorf("different round types should hash differently")
	}
}
