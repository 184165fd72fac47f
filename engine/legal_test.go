package engine

import "testing"

func handOf(t *testing.T, tokens string) CardSet {
	t.Helper()
	h, err := ParseHand(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func trickWithLead(t *testing.T, lead string) *Trick {
	t.Helper()
	tr := newTrick(0)
	tr.add(0, mustCard(t, lead))
	return &tr
}

func TestLegalPlaysLeading(t *testing.T) {
	hand := handOf(t, "2H 9D QC")
	tr := newTrick(0)
	if got := legalPlays(hand, &tr, RoundVazas); got != hand {
		t.Errorf("leading: expected whole hand, got %s", got)
	}
}

func TestLegalPlaysFollowSuit(t *testing.T) {
	hand := handOf(t, "2S 9S QC AH")
	tr := trickWithLead(t, "4S")
	got := legalPlays(hand, tr, RoundVazas)
	want := handOf(t, "2S 9S")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	// Suit-following applies identically in every round type.
	for rt := RoundType(0); rt < NumRoundTypes; rt++ {
		if legalPlays(hand, tr, rt) != want {
			t.Errorf("round %s: suit following broken", rt)
		}
	}
}

func TestLegalPlaysForcedDiscardCopas(t *testing.T) {
	hand := handOf(t, "2H 9H QC")
	tr := trickWithLead(t, "4S")
	got := legalPlays(hand, tr, RoundCopas)
	want := handOf(t, "2H 9H")
	if got != want {
		t.Errorf("off-suit with hearts in copas: expected %s, got %s", want, got)
	}
	// No such restriction in vazas.
	if got := legalPlays(hand, tr, RoundVazas); got != hand {
		t.Errorf("vazas: expected whole hand, got %s", got)
	}
}

func TestLegalPlaysForcedDiscardHomens(t *testing.T) {
	hand := handOf(t, "JH KC 5D")
	tr := trickWithLead(t, "4S")
	got := legalPlays(hand, tr, RoundHomens)
	want := handOf(t, "JH KC")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestLegalPlaysForcedDiscardMulheres(t *testing.T) {
	hand := handOf(t, "QH 5D 8C")
	tr := trickWithLead(t, "4S")
	got := legalPlays(hand, tr, RoundMulheres)
	want := handOf(t, "QH")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestLegalPlaysNoForcedCategory(t *testing.T) {
	hand := handOf(t, "2H 5D 8C")
	tr := trickWithLead(t, "4S")
	for _, rt := range []RoundType{RoundMulheres, RoundHomens, RoundKing, RoundLast} {
		if got := legalPlays(hand, tr, rt); got != hand {
			t.Errorf("round %s: off-suit with no forced cards, expected whole hand, got %s", rt, got)
		}
	}
}

func TestLegalPlaysNeverEmpty(t *testing.T) {
	tr := trickWithLead(t, "4S")
	for rt := RoundType(0); rt < NumRoundTypes; rt++ {
		hand := handOf(t, "2H 9D QC")
		if legalPlays(hand, tr, rt).IsEmpty() {
			t.Errorf("round %s: legal set empty for non-empty hand", rt)
		}
	}
}
