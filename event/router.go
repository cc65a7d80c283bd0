package event

// Handler processes specific event types
// Renderer and audio cues implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously at the end of a tick, after the board settled
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the game loop
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//
// Usage:
//  1. Create router: NewRouter(queue)
//  2. Register handlers: router.Register(renderer)
//  3. Each tick: router.DispatchAll() after the tick's mutations
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers
// All handlers for an event are called before moving to the next event
// Returns the dispatched events
func (r *Router) DispatchAll() []GameEvent {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return events
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
