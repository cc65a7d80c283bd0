package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
	"github.com/lixenwraith/klondike/vmath"
)

// DealtPayload identifies a new deal
type DealtPayload struct {
	DealID uuid.UUID
	Seed   int64
}

// PickedPayload carries the lifted card and where it was grabbed
type PickedPayload struct {
	Card     card.Card
	From     board.PileID
	Position vmath.Vec2
}

// MovedPayload carries one committed change and the card's resting position on the target
type MovedPayload struct {
	Change   board.Change
	Position vmath.Vec2
}

// RevertedPayload carries a card sent back to Home
// Err wraps the reason: no target, own pile, or rules.ErrIllegalMove
type RevertedPayload struct {
	Card card.Card
	From board.PileID
	Home vmath.Vec2
	Err  error
}

// RevealedPayload carries a tableau card that turned face-up
type RevealedPayload struct {
	Reveal   board.Reveal
	Position vmath.Vec2
}

// DrawnPayload carries the stock to waste change
type DrawnPayload struct {
	Change board.Change
}

// RecycledPayload reports how many cards went back to the stock
type RecycledPayload struct {
	Count int
}

// WonPayload closes a deal
type WonPayload struct {
	DealID uuid.UUID
	Moves  int
}
