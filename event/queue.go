package event

// EventQueue buffers events raised during a tick until the router drains them
// Single goroutine only: producers and the consumer all run on the game loop
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Emit is Push with the event built from its parts
func (eq *EventQueue) Emit(t EventType, payload any) {
	eq.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
