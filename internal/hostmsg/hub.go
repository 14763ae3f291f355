package hostmsg

import (
	"errors"
	"log/slog"
	"sync"

	"findbar/internal/domain"
)

// Handler receives validated host params
type Handler func(domain.HostParams)

// Source delivers inbound host payloads to subscribers
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Sink posts outbound messages to the host. Post never blocks on delivery and never reports failure.
type Sink interface {
	Post(msg Outbound)
}

// Hub is the Source every transport feeds: it decodes, checks the origin and fans out
type Hub struct {
	policy *OriginPolicy

	mu     sync.RWMutex
	subs   map[uint64]Handler
	nextID uint64
}

// NewHub creates a hub guarded by policy
func NewHub(policy *OriginPolicy) *Hub {
	return &Hub{policy: policy, subs: make(map[uint64]Handler)}
}

// Subscribe registers h until the returned function is called
func (h *Hub) Subscribe(handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.subs[id] = handler
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Subscribers returns the number of live subscriptions
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Deliver validates a raw payload from origin and hands it to every subscriber
func (h *Hub) Deliver(origin string, data []byte) error {
	if h.policy != nil && !h.policy.Allow(origin) {
		slog.Warn("hostmsg: dropping message from untrusted origin", "origin", origin)
		return ErrOriginRejected
	}
	params, err := DecodeParams(data)
	if err != nil {
		if errors.Is(err, ErrEmptyPayload) {
			slog.Debug("hostmsg: ignoring empty payload", "origin", origin)
		} else {
			slog.Warn("hostmsg: ignoring malformed payload", "origin", origin, "error", err)
		}
		return err
	}

	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs))
	for _, s := range h.subs {
		handlers = append(handlers, s)
	}
	h.mu.RUnlock()

	slog.Info("hostmsg: keyword set received", "origin", origin, "keywords", len(params.Keywords))
	for _, handler := range handlers {
		handler(params)
	}
	return nil
}

// Sinks posts to several sinks in order
type Sinks []Sink

func (s Sinks) Post(msg Outbound) {
	for _, sink := range s {
		sink.Post(msg)
	}
}
