// Package events provides a small synchronous publish/subscribe bus used to
// observe engine lifecycle changes without coupling subscribers to the core.
package events

import "time"

// Event is one published occurrence. Implementations must be immutable once
// published.
type Event interface {
	Type() string
	Timestamp() time.Time
	Data() any
}

// Handler consumes one event. A non-nil error is reported back to the
// publisher but does not stop delivery to other handlers.
type Handler func(Event) error

// Subscription is the caller's handle on a registered Handler.
type Subscription interface {
	ID() string
	EventType() string
	Active() bool
	Cancel()
}

type simpleEvent struct {
	typ  string
	ts   time.Time
	data any
}

func (e simpleEvent) Type() string         { return e.typ }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }

// New creates a basic Event carrying arbitrary data, stamped with the
// current time.
func New(eventType string, data any) Event {
	return simpleEvent{typ: eventType, ts: time.Now(), data: data}
}
