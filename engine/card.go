// Package engine implements the King card game rules.
//
// The package provides the round/trick engine: legal-play enforcement per
// round type, trick-winner resolution with optional trump, and round
// scoring. State types are flat values so a full round can be snapshotted
// with a plain struct copy for simulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit constants — packed into the upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3

	// NoSuit marks the absence of a suit (no main suit yet, no trump).
	NoSuit uint8 = 0xF
)

// Rank constants — packed into the lower 4 bits of Card. Ace is high.
const (
	RankTwo   uint8 = 2
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
	RankAce   uint8 = 14
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank (2–14).
// Equality is value equality.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Index returns the card's position in the 0–51 deck index space
// (suit-major, ranks ascending).
func (c Card) Index() int {
	return int(c.Suit())*13 + int(c.Rank()) - 2
}

// cardFromIndex is the inverse of Index.
func cardFromIndex(i int) Card {
	return NewCard(uint8(i/13), uint8(i%13+2))
}

// KingOfHearts is the single penalty card of the king round.
var KingOfHearts = NewCard(SuitHearts, RankKing)

// IsMan reports whether the card is a Jack or a King (homens penalty).
func (c Card) IsMan() bool {
	r := c.Rank()
	return r == RankJack || r == RankKing
}

// IsWoman reports whether the card is a Queen (mulheres penalty).
func (c Card) IsWoman() bool { return c.Rank() == RankQueen }

var suitLetters = [4]string{"H", "D", "C", "S"}

// SuitName returns the long suit name for display.
func SuitName(suit uint8) string {
	switch suit {
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	case SuitSpades:
		return "Spades"
	}
	return "?"
}

// String renders the card as a token like "AH", "10D" or "KS".
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	var rank string
	switch c.Rank() {
	case RankAce:
		rank = "A"
	case RankKing:
		rank = "K"
	case RankQueen:
		rank = "Q"
	case RankJack:
		rank = "J"
	default:
		rank = strconv.Itoa(int(c.Rank()))
	}
	return rank + suitLetters[c.Suit()]
}

// ParseCard parses a card token: rank is a 2–14 numeral or one of A/K/Q/J,
// suit is one of H/D/C/S. Returns ErrInvalidInput on malformed tokens.
func ParseCard(token string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(token))
	if len(s) < 2 {
		return EmptyCard, fmt.Errorf("%w: card token %q too short", ErrInvalidInput, token)
	}

	var suit uint8
	switch s[len(s)-1] {
	case 'H':
		suit = SuitHearts
	case 'D':
		suit = SuitDiamonds
	case 'C':
		suit = SuitClubs
	case 'S':
		suit = SuitSpades
	default:
		return EmptyCard, fmt.Errorf("%w: unknown suit in %q", ErrInvalidInput, token)
	}

	var rank uint8
	switch rs := s[:len(s)-1]; rs {
	case "A":
		rank = RankAce
	case "K":
		rank = RankKing
	case "Q":
		rank = RankQueen
	case "J":
		rank = RankJack
	default:
		n, err := strconv.Atoi(rs)
		if err != nil || n < 2 || n > 14 {
			return EmptyCard, fmt.Errorf("%w: unknown rank in %q", ErrInvalidInput, token)
		}
		rank = uint8(n)
	}

	return NewCard(suit, rank), nil
}

// ParseHand parses a whitespace-separated list of card tokens into a set.
// Duplicate cards are rejected.
func ParseHand(line string) (CardSet, error) {
	var hand CardSet
	for _, token := range strings.Fields(line) {
		c, err := ParseCard(token)
		if err != nil {
			return 0, err
		}
		if hand.Has(c) {
			return 0, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		hand = hand.Add(c)
	}
	return hand, nil
}
