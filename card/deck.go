package card

import "math/rand"

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// Deck is an ordered card sequence; the top is the back of the slice
type Deck struct {
	cards []Card
}

// NewDeck creates a standard 52-card deck in index order
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	return d
}

// DeckOf wraps an explicit card order, bottom first
func DeckOf(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle randomizes the order in place (Fisher-Yates)
func (d *Deck) Shuffle(r *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// Insert places a card on top
func (d *Deck) Insert(c Card) {
	d.cards = append(d.cards, c)
}

// Len returns the number of remaining cards
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
