package event

// Handler processes specific event types
// Presentation collaborators (audio, renderer, logger) implement it
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
// Handlers are invoked in registration order, single-threaded
type Router struct {
	handlers map[EventType][]Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{handlers: make(map[EventType][]Handler)}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch routes events in FIFO order
func (r *Router) Dispatch(events []GameEvent) {
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
