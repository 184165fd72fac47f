package engine

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestDeckShuffleDeterministic(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(1, 2)))
	b.Shuffle(rand.New(rand.NewPCG(1, 2)))
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			t.Fatalf("same seed diverged at position %d", i)
		}
	}

	c := NewDeck()
	c.Shuffle(rand.New(rand.NewPCG(3, 4)))
	same := true
	for i := range a.Cards {
		if a.Cards[i] != c.Cards[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical order")
	}
}

func TestDealRemainderRoundRobin(t *testing.T) {
	d := NewDeck()
	hands, err := d.Deal(12, RemainderRoundRobin)
	if err != nil {
		t.Fatal(err)
	}
	for seat, h := range hands {
		if h.Len() != 13 {
			t.Errorf("seat %d: expected 13 cards after remainder, got %d", seat, h.Len())
		}
	}
	if len(d.Cards) != 0 {
		t.Errorf("expected consumed deck, %d cards left", len(d.Cards))
	}
}

func TestDealRemainderDiscard(t *testing.T) {
	d := NewDeck()
	hands, err := d.Deal(12, RemainderDiscard)
	if err != nil {
		t.Fatal(err)
	}
	for seat, h := range hands {
		if h.Len() != 12 {
			t.Errorf("seat %d: expected 12 cards, got %d", seat, h.Len())
		}
	}
	if len(d.Cards) != 0 {
		t.Errorf("discarded remainder should leave an empty deck")
	}
}

func TestDealTooFewCards(t *testing.T) {
	d := NewDeck()
	if _, err := d.Deal(14, RemainderDiscard); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
