// Package rules holds the Klondike placement predicates
// All functions are pure; a missing top card is passed as ok=false
package rules

import (
	"errors"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
)

// ErrIllegalMove marks a placement rejected by the rules
var ErrIllegalMove = errors.New("illegal move")

// CanPlaceOnFoundation allows an Ace on an empty foundation, or the next rank of the same suit
func CanPlaceOnFoundation(c card.Card, top card.Card, ok bool) bool {
	if !ok {
		return c.Rank.IsAce()
	}
	return c.Suit == top.Suit && c.Rank.IsNext(top.Rank)
}

// CanPlaceOnTableau allows a King on an empty column, or one rank below the top in the opposite color
func CanPlaceOnTableau(c card.Card, top card.Card, ok bool) bool {
	if !ok {
		return c.Rank.IsKing()
	}
	return c.Color() != top.Color() && top.Rank.IsNext(c.Rank)
}

// CanPlace dispatches on the target pile kind; stock and waste never accept a drop
func CanPlace(kind board.Kind, c card.Card, top card.Card, ok bool) bool {
	switch kind {
	case board.KindFoundation:
		return CanPlaceOnFoundation(c, top, ok)
	case board.KindTableau:
		return CanPlaceOnTableau(c, top, ok)
	default:
		return false
	}
}

// Check evaluates a drop of c onto pile to against the current board
func Check(b *board.Board, c card.Card, to board.PileID) error {
	if !to.Valid() {
		return ErrIllegalMove
	}
	top, ok := b.Top(to)
	if !CanPlace(to.Kind, c, top, ok) {
		return ErrIllegalMove
	}
	return nil
}
