package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"findbar/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventFind             = domain.EventFind
	EventFindWords        = domain.EventFindWords
	EventFindBarClose     = domain.EventFindBarClose
	EventResize           = domain.EventResize
	EventFindStatus       = domain.EventFindStatus
	EventFindMatchesCount = domain.EventFindMatchesCount
	EventDocumentOpen     = domain.EventDocumentOpen
)

// Re-export domain event types
type FindEvent = domain.FindEvent
type FindWordsEvent = domain.FindWordsEvent
type FindBarCloseEvent = domain.FindBarCloseEvent
type ResizeEvent = domain.ResizeEvent
type FindStatusEvent = domain.FindStatusEvent
type FindMatchesCountEvent = domain.FindMatchesCountEvent
type DocumentOpenEvent = domain.DocumentOpenEvent

// Re-export payload types carried by search engine events
type FindState = domain.FindState
type MatchesCount = domain.MatchesCount

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Publish runs every handler on the caller's goroutine, in subscription order,
// before returning. A handler may publish; nested events are delivered depth-first.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventResize, EventFindMatchesCount:
		// Too frequent to log
	default:
		slog.Debug("eventbus: publish", "event", string(event.Type()))
	}

	// Copy so handlers can subscribe or unsubscribe while we iterate
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	handlersCopy := make([]subscription, len(subs))
	copy(handlersCopy, subs)
	b.mu.RUnlock()

	for _, sub := range handlersCopy {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("eventbus: handler panic", "event", string(event.Type()), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function; calling it more than once is harmless
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				// Build a fresh slice; an in-flight Publish may hold the old one
				next := make([]subscription, 0, len(subs)-1)
				next = append(next, subs[:i]...)
				next = append(next, subs[i+1:]...)
				b.handlers[eventType] = next
				break
			}
		}
	}
}

// Recorder collects published events. Tests and diagnostics subscribe it to a bus.
type Recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

// Record subscribes the recorder to the given event types and returns an unsubscribe function
func (r *Recorder) Record(b EventBus, types ...EventType) func() {
	var unsubs []func()
	for _, t := range types {
		unsubs = append(unsubs, b.Subscribe(t, r.add))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (r *Recorder) add(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events of one type, in publish order
func (r *Recorder) OfType(t EventType) []DomainEvent {
	var out []DomainEvent
	for _, e := range r.Events() {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
