package event

// EventType represents the type of game event
type EventType int

const (
	// EventDealt signals a fresh layout on the table
	// Trigger: Game.NewDeal
	// Consumer: Renderer, Cues | Payload: *DealtPayload
	EventDealt EventType = iota + 1

	// EventPicked signals a card lifted off its pile
	// Trigger: gesture Idle -> Selecting
	// Consumer: Renderer | Payload: *PickedPayload
	EventPicked

	// EventMoved signals a committed card move between piles
	// Trigger: gesture release on a legal target
	// Consumer: Renderer, Cues | Payload: *MovedPayload
	EventMoved

	// EventReverted signals a dropped card returning to its pile
	// Trigger: gesture release on an illegal or missing target
	// Consumer: Renderer, Cues | Payload: *RevertedPayload
	EventReverted

	// EventRevealed signals a tableau card turned face-up
	// Trigger: MoveCard leaving a face-down card on top
	// Consumer: Cues | Payload: *RevealedPayload
	EventRevealed

	// EventDrawn signals a stock card turned onto the waste
	// Trigger: stock click with cards in stock
	// Consumer: Renderer, Cues | Payload: *DrawnPayload
	EventDrawn

	// EventRecycled signals the waste returned face-down to the stock
	// Trigger: stock click on an empty stock
	// Consumer: Renderer, Cues | Payload: *RecycledPayload
	EventRecycled

	// EventWon signals all four foundations complete
	// Trigger: Game.Tick, once per deal
	// Consumer: Renderer, Cues | Payload: *WonPayload
	EventWon
)

var typeNames = map[EventType]string{
	EventDealt:    "Dealt",
	EventPicked:   "Picked",
	EventMoved:    "Moved",
	EventReverted: "Reverted",
	EventRevealed: "Revealed",
	EventDrawn:    "Drawn",
	EventRecycled: "Recycled",
	EventWon:      "Won",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// All returns every event type in declaration order
func All() []EventType {
	return []EventType{
		EventDealt, EventPicked, EventMoved, EventReverted,
		EventRevealed, EventDrawn, EventRecycled, EventWon,
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
}
