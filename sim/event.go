package sim

// VTimeInSec is the time inside the simulated clock domain, in seconds.
type VTimeInSec float64

// An Event is a state change scheduled to happen at a future time.
type Event interface {
	// Time returns the time at which the event takes effect.
	Time() VTimeInSec

	// Handler returns the handler that processes the event.
	Handler() Handler

	// IsSecondary marks events that must be processed after all the primary
	// events scheduled at the same time.
	IsSecondary() bool
}

// EventBase provides the fields and getters shared by all events.
type EventBase struct {
	ID        string
	time      VTimeInSec
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTimeInSec, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = GetIDGenerator().Generate()
	e.time = t
	e.handler = handler

	return e
}

// Time returns the time at which the event takes effect.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns the handler that processes the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// A Handler processes the events scheduled on it. An event can only be
// scheduled by the handler that owns it, so handling an event never mutates
// another handler's state.
type Handler interface {
	Handle(e Event) error
}
