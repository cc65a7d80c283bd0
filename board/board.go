package board

import (
	"fmt"

	"github.com/lixenwraith/klondike/card"
)

// Board owns every pile and is the single source of truth for card location
// Not safe for concurrent use; the game loop is its only writer
type Board struct {
	stock      []card.Card
	waste      []card.Card
	tableau    [TableauCount][]card.Card
	foundation [FoundationCount][]card.Card

	// boundary[i] is the first face-up index of tableau column i
	boundary [TableauCount]int
}

// New deals a deck into a fresh board
// The deck must hold exactly the 52-card standard deck
func New(deck *card.Deck) (*Board, error) {
	b := &Board{}
	if err := b.Deal(deck); err != nil {
		return nil, err
	}
	return b, nil
}

// Deal resets the board: column i receives i+1 cards popped from the deck,
// only the last face-up, and the remaining cards become the stock
func (b *Board) Deal(deck *card.Deck) error {
	if deck.Len() != card.DeckSize {
		return fmt.Errorf("%w: deal needs %d cards, got %d", ErrInvariantViolation, card.DeckSize, deck.Len())
	}

	*b = Board{}
	for col := 0; col < TableauCount; col++ {
		column := make([]card.Card, 0, col+1+card.RankCount)
		for n := 0; n <= col; n++ {
			c, _ := deck.Draw()
			column = append(column, c)
		}
		b.tableau[col] = column
		b.boundary[col] = col
	}
	b.stock = deck.Cards()
	b.waste = make([]card.Card, 0, len(b.stock))

	return b.Verify()
}

// Piles is an explicit board position, used to restore or construct states
type Piles struct {
	Stock      []card.Card
	Waste      []card.Card
	Tableau    [TableauCount][]card.Card
	Boundary   [TableauCount]int
	Foundation [FoundationCount][]card.Card
}

// FromPiles builds a board from an explicit position and verifies it
func FromPiles(p Piles) (*Board, error) {
	b := &Board{
		stock: clone(p.Stock),
		waste: clone(p.Waste),
	}
	for i := range p.Tableau {
		b.tableau[i] = clone(p.Tableau[i])
		b.boundary[i] = p.Boundary[i]
		// Normalize so the top of every non-empty column is face-up
		b.reveal(i)
	}
	for i := range p.Foundation {
		b.foundation[i] = clone(p.Foundation[i])
	}
	if err := b.Verify(); err != nil {
		return nil, err
	}
	return b, nil
}

// Snapshot returns a deep copy of the current position
func (b *Board) Snapshot() Piles {
	p := Piles{
		Stock:    clone(b.stock),
		Waste:    clone(b.waste),
		Boundary: b.boundary,
	}
	for i := range b.tableau {
		p.Tableau[i] = clone(b.tableau[i])
	}
	for i := range b.foundation {
		p.Foundation[i] = clone(b.foundation[i])
	}
	return p
}

// Top peeks at the top card of a pile
func (b *Board) Top(p PileID) (card.Card, bool) {
	cards := b.pile(p)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[len(cards)-1], true
}

// Len returns the number of cards in a pile
func (b *Board) Len(p PileID) int {
	return len(b.pile(p))
}

// Cards returns a copy of a pile, bottom first
func (b *Board) Cards(p PileID) []card.Card {
	return clone(b.pile(p))
}

// FaceUp reports whether the card at index of pile is showing its face
func (b *Board) FaceUp(p PileID, index int) bool {
	cards := b.pile(p)
	if index < 0 || index >= len(cards) {
		return false
	}
	switch p.Kind {
	case KindStock:
		return false
	case KindTableau:
		return index >= b.boundary[p.Index]
	default:
		return true
	}
}

// Boundary returns the reveal boundary of a tableau column
func (b *Board) Boundary(col int) int {
	if col < 0 || col >= TableauCount {
		return 0
	}
	return b.boundary[col]
}

// FoundationSuit returns the suit a foundation slot has been assigned, if any
func (b *Board) FoundationSuit(i int) (card.Suit, bool) {
	if i < 0 || i >= FoundationCount || len(b.foundation[i]) == 0 {
		return 0, false
	}
	return b.foundation[i][0].Suit, true
}

// Won reports whether every foundation holds a full suit
func (b *Board) Won() bool {
	for i := range b.foundation {
		if len(b.foundation[i]) != card.RankCount {
			return false
		}
	}
	return true
}

// DrawStock moves the stock top onto the waste, face-up
func (b *Board) DrawStock() (card.Card, Result, error) {
	if len(b.stock) == 0 {
		return card.Card{}, Result{}, ErrEmptySource
	}
	last := len(b.stock) - 1
	c := b.stock[last]
	b.stock = b.stock[:last]
	b.waste = append(b.waste, c)

	return c, Result{Changes: []Change{{
		Card:   c,
		From:   Stock,
		To:     Waste,
		Index:  len(b.waste) - 1,
		FaceUp: true,
	}}}, nil
}

// Recycle turns the waste back into the stock once the stock is exhausted
// The waste is reversed so the next pass draws in the same order as the last
func (b *Board) Recycle() (Result, error) {
	if len(b.stock) != 0 {
		return Result{}, ErrStockNotEmpty
	}
	if len(b.waste) == 0 {
		return Result{}, ErrEmptySource
	}

	n := len(b.waste)
	stock := make([]card.Card, n)
	res := Result{Changes: make([]Change, 0, n)}
	for i, c := range b.waste {
		idx := n - 1 - i
		stock[idx] = c
		res.Changes = append(res.Changes, Change{Card: c, From: Waste, To: Stock, Index: idx})
	}
	b.stock = stock
	b.waste = b.waste[:0]

	return res, nil
}

// MoveCard moves c from the top of one pile onto another
// c must be the top of from; anything else is a caller bug and reported as
// ErrInvariantViolation. Rule legality is not checked here
func (b *Board) MoveCard(c card.Card, from, to PileID) (Result, error) {
	if !from.Valid() || !to.Valid() {
		return Result{}, fmt.Errorf("%w: invalid pile %v -> %v", ErrInvariantViolation, from, to)
	}
	if from == to {
		return Result{}, fmt.Errorf("%w: move %v within %v", ErrInvariantViolation, c, from)
	}
	top, ok := b.Top(from)
	if !ok || top != c {
		return Result{}, fmt.Errorf("%w: %v is not the top of %v", ErrInvariantViolation, c, from)
	}

	src := b.pile(from)
	b.setPile(from, src[:len(src)-1])
	dst := append(b.pile(to), c)
	b.setPile(to, dst)

	res := Result{Changes: []Change{{
		Card:   c,
		From:   from,
		To:     to,
		Index:  len(dst) - 1,
		FaceUp: to.Kind != KindStock,
	}}}

	if from.Kind == KindTableau {
		if r, revealed := b.reveal(from.Index); revealed {
			res.Revealed = append(res.Revealed, r)
		}
	}
	if to.Kind == KindTableau {
		b.reveal(to.Index)
	}

	return res, nil
}

func (b *Board) pile(p PileID) []card.Card {
	switch p.Kind {
	case KindStock:
		return b.stock
	case KindWaste:
		return b.waste
	case KindTableau:
		if p.Index >= 0 && p.Index < TableauCount {
			return b.tableau[p.Index]
		}
	case KindFoundation:
		if p.Index >= 0 && p.Index < FoundationCount {
			return b.foundation[p.Index]
		}
	}
	return nil
}

func (b *Board) setPile(p PileID, cards []card.Card) {
	switch p.Kind {
	case KindStock:
		b.stock = cards
	case KindWaste:
		b.waste = cards
	case KindTableau:
		b.tableau[p.Index] = cards
	case KindFoundation:
		b.foundation[p.Index] = cards
	}
}

func clone(cards []card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return out
}
