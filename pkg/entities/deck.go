package entities

import (
	"errors"
	"math/rand"
	"time"
)

// ErrDeckExhausted is returned when drawing from an empty deck. A
// single game draws at most ~20 cards from a 52-card shoe, so hitting
// this indicates a lifecycle bug rather than normal play.
var ErrDeckExhausted = errors.New("deck exhausted")

type Deck struct {
	Cards []*Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, 52)
	suits := []Suit{Clubs, Diamonds, Hearts, Spades}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// NewShuffledDeck creates a new 52-card deck in uniform random order
func NewShuffledDeck() *Deck {
	deck := NewDeck()
	deck.Shuffle()
	return deck
}

func (d *Deck) Shuffle() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrDeckExhausted
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, nil
}

// Size returns the number of undealt cards
func (d *Deck) Size() int {
	return len(d.Cards)
}
