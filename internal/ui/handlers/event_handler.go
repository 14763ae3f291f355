package handlers

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/eventbus"
)

// StatusRenderer is the part of the find bar that renders search engine output
type StatusRenderer interface {
	UpdateUIState(state eventbus.FindState, previous bool, matches eventbus.MatchesCount) tea.Cmd
	UpdateResultsCount(matches eventbus.MatchesCount) tea.Cmd
}

// EventHandler turns search engine events into find bar renders
type EventHandler struct {
	bar StatusRenderer
}

// NewEventHandler creates a new event handler
func NewEventHandler(bar StatusRenderer) *EventHandler {
	return &EventHandler{bar: bar}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.FindStatusEvent:
		return h.bar.UpdateUIState(e.State, e.Previous, e.MatchesCount)

	case eventbus.FindMatchesCountEvent:
		return h.bar.UpdateResultsCount(e.MatchesCount)

	default:
		slog.Debug("ui: unhandled event", "event", string(event.Type()))
	}
	return nil
}
