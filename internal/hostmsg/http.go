package hostmsg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxPayloadBytes = 1 << 20

// HeaderMessageID identifies an outbound message for host-side logging
const HeaderMessageID = "X-Findbar-Message-Id"

// NewRouter exposes the hub to hosts that push keyword sets over HTTP
func NewRouter(hub *Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/messages", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		err = hub.Deliver(r.Header.Get("Origin"), body)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusAccepted)
		case errors.Is(err, ErrOriginRejected):
			http.Error(w, "origin not allowed", http.StatusForbidden)
		case errors.Is(err, ErrEmptyPayload):
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	})

	return r
}

// Server is the inbound HTTP endpoint
type Server struct {
	srv      *http.Server
	listener net.Listener
}

// Listen binds addr and starts serving in the background
func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	s := &Server{
		srv: &http.Server{
			Handler:           NewRouter(hub),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("hostmsg: http server stopped", "error", err)
		}
	}()
	slog.Info("hostmsg: listening", "addr", ln.Addr().String())
	return s, nil
}

// Addr returns the bound address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Shutdown stops accepting messages
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// HTTPSink posts outbound messages to the host's callback URL.
// Messages are sent one at a time in Post order by a single worker.
type HTTPSink struct {
	url    string
	origin string
	client *http.Client

	mu     sync.Mutex
	closed bool
	queue  chan Outbound
	done   chan struct{}
}

// NewHTTPSink refuses a callback URL outside the own origin
func NewHTTPSink(callbackURL, ownOrigin string, client *http.Client) (*HTTPSink, error) {
	origin, err := OriginOf(callbackURL)
	if err != nil {
		return nil, err
	}
	if origin != normalizeOrigin(ownOrigin) {
		return nil, fmt.Errorf("%w: callback %s is outside %s", ErrOriginRejected, origin, ownOrigin)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	s := &HTTPSink{
		url:    callbackURL,
		origin: origin,
		client: client,
		queue:  make(chan Outbound, 64),
		done:   make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// Post enqueues msg; a full queue or a closed sink drops it
func (s *HTTPSink) Post(msg Outbound) {
	if err := msg.Validate(); err != nil {
		slog.Warn("hostmsg: refusing invalid outbound message", "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		slog.Debug("hostmsg: sink closed, dropping message", "event", string(msg.Event))
		return
	}
	select {
	case s.queue <- msg:
	default:
		slog.Warn("hostmsg: outbound queue full, dropping message", "event", string(msg.Event))
	}
}

// Close flushes queued messages and stops the worker
func (s *HTTPSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *HTTPSink) run() {
	defer close(s.done)
	for msg := range s.queue {
		if err := s.send(msg); err != nil {
			slog.Warn("hostmsg: outbound post failed", "event", string(msg.Event), "error", err)
		}
	}
}

func (s *HTTPSink) send(msg Outbound) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", s.origin)
	req.Header.Set(HeaderMessageID, uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("host responded %s", resp.Status)
	}
	return nil
}
