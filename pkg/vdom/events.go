package vdom

// Event is the payload delivered to event handlers.
type Event struct {
	Type   string // Event name without the "on" prefix ("click", "input", ...)
	Value  string // Committed value for input/change events
	Target string // Identifier of the originating node, when known
}

// Handler is a plain event callback.
type Handler func(Event)

// LinkedEvent bundles a callback with auxiliary data. The wrapped
// listener invokes Fn(Data, event) rather than Fn(event), so the
// listener can be re-created lazily while staying referentially
// distinguishable from a plain handler.
type LinkedEvent struct {
	Fn   func(data any, evt Event)
	Data any
}

// Linked creates a LinkedEvent.
func Linked(fn func(data any, evt Event), data any) LinkedEvent {
	return LinkedEvent{Fn: fn, Data: data}
}

// OwnedHandler is a handler installed and owned by another subsystem
// (for example the controlled-form wrapper). The reconciler never
// clears a live slot holding an OwnedHandler with a non-empty Owner.
type OwnedHandler struct {
	Fn    Handler
	Owner string
}

// RawHTML is markup injected verbatim, bypassing structured child
// reconciliation. Two payloads are equal when their HTML strings are
// equal, regardless of identity.
type RawHTML struct {
	HTML string
}

// On creates an event handler prop entry name for the given event.
func On(event string) string {
	return "on" + event
}
