package board

import (
	"fmt"

	"github.com/lixenwraith/klondike/card"
)

// Verify checks conservation and pile ordering
// Any failure wraps ErrInvariantViolation
func (b *Board) Verify() error {
	if err := b.verifyConservation(); err != nil {
		return err
	}
	for i := range b.foundation {
		if err := verifyFoundation(i, b.foundation[i]); err != nil {
			return err
		}
	}
	for i := range b.tableau {
		if err := verifyTableau(i, b.tableau[i], b.boundary[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) verifyConservation() error {
	var seen [card.DeckSize]bool
	total := 0

	for _, id := range AllPiles() {
		for _, c := range b.pile(id) {
			idx := c.Index()
			if idx < 0 || idx >= card.DeckSize {
				return fmt.Errorf("%w: invalid card %v in %v", ErrInvariantViolation, c, id)
			}
			if seen[idx] {
				return fmt.Errorf("%w: duplicate %v in %v", ErrInvariantViolation, c, id)
			}
			seen[idx] = true
			total++
		}
	}

	if total != card.DeckSize {
		return fmt.Errorf("%w: %d cards on board, want %d", ErrInvariantViolation, total, card.DeckSize)
	}
	return nil
}

func verifyFoundation(i int, cards []card.Card) error {
	for j, c := range cards {
		if int(c.Rank) != j {
			return fmt.Errorf("%w: %v at position %d of %v", ErrInvariantViolation, c, j, Foundation(i))
		}
		if c.Suit != cards[0].Suit {
			return fmt.Errorf("%w: %v mixes suits in %v", ErrInvariantViolation, c, Foundation(i))
		}
	}
	return nil
}

func verifyTableau(i int, cards []card.Card, boundary int) error {
	if len(cards) == 0 {
		return nil
	}
	if boundary < 0 || boundary >= len(cards) {
		return fmt.Errorf("%w: %v boundary %d outside 0..%d", ErrInvariantViolation, Tableau(i), boundary, len(cards)-1)
	}
	for j := boundary + 1; j < len(cards); j++ {
		below, above := cards[j-1], cards[j]
		if !below.Rank.IsNext(above.Rank) || below.Color() == above.Color() {
			return fmt.Errorf("%w: %v on %v breaks run in %v", ErrInvariantViolation, above, below, Tableau(i))
		}
	}
	return nil
}
