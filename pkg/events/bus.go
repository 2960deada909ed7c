package events

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sasakali/ecs/pkg/concurrent"
	"github.com/sasakali/ecs/pkg/sequence"
)

// Bus is a thread-safe in-memory event bus. Delivery order within one event
// type follows subscription order for synchronous publishes.
type Bus struct {
	mu      sync.RWMutex
	nextSeq uint64
	// eventType -> subscription ID -> subscription
	subs map[string]map[string]*subscription
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[string]*subscription)}
}

type subscription struct {
	id      string
	typ     string
	seq     uint64
	handler Handler
	active  bool
	cancel  func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.typ }
func (s *subscription) Active() bool      { return s.active }
func (s *subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
	s.active = false
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(eventType string, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[eventType] == nil {
		b.subs[eventType] = make(map[string]*subscription)
	}
	id := uuid.NewString()
	s := &subscription{id: id, typ: eventType, seq: b.nextSeq, handler: handler, active: true}
	b.nextSeq++
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[eventType], id)
	}
	b.subs[eventType][id] = s
	return s
}

// SubscriberCount returns the number of active handlers for an event type.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[eventType])
}

// Publish delivers the event to every handler of its type, synchronously
// and in subscription order. Handler errors are joined and returned; they
// never abort delivery to the remaining handlers.
func (b *Bus) Publish(event Event) error {
	var errs []error
	for _, h := range b.handlersFor(event.Type()) {
		if err := h(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublishAsync delivers the event to every handler of its type from
// separate goroutines and reports the joined handler error, if any, on the
// returned channel.
func (b *Bus) PublishAsync(event Event) <-chan error {
	handlers := b.handlersFor(event.Type())
	done := make(chan error, 1)
	go func() {
		done <- concurrent.ForEach(sequence.From(handlers), func(h Handler) error {
			return h(event)
		})
		close(done)
	}()
	return done
}

// handlersFor snapshots the handlers for one event type in subscription
// order, so delivery can proceed without holding the bus lock.
func (b *Bus) handlersFor(eventType string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	byID := b.subs[eventType]
	if len(byID) == 0 {
		return nil
	}
	ordered := make([]*subscription, 0, len(byID))
	for _, s := range byID {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].seq < ordered[j].seq })
	out := make([]Handler, len(ordered))
	for i, s := range ordered {
		out[i] = s.handler
	}
	return out
}
