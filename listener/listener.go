package listener

// This module exposes the primary interfaces and types for the listener
// package. Errors are found in errors.go, the subscription lifecycle helper in
// subscription.go and the in-process event source in dispatcher.go

// Event is a payload delivered by an EventSource. The name is used to route
// the event to the handlers registered for it.
type Event interface {
	EventName() string
}

// Handler receives events from an EventSource. Implementations must be
// comparable (pointers in practice) because sources pair AddEventListener and
// RemoveEventListener calls by handler identity.
type Handler interface {
	HandleEvent(Event)
}

// Callback is the logic a consumer wants to run for each event. Its identity
// is never registered with a source; see Subscription.
type Callback func(Event)

// EventSource represents a type which can accept handler registrations for
// named events and dispatch payloads to them. Sources are compared with ==
// to decide whether a registration can be kept, so implementations must be
// pointers.
type EventSource interface {
	// AddEventListener registers h for events named name. Registering the
	// same handler twice for the same name is a no-op.
	AddEventListener(name string, h Handler) error

	// RemoveEventListener unregisters h. Removing a handler that is not
	// registered is a no-op.
	RemoveEventListener(name string, h Handler)
}
