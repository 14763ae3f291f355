package findbar

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/domain"
	"findbar/internal/eventbus"
	"findbar/internal/hostmsg"
)

type fakeView struct {
	focused   int
	measured  int
	overflows bool
}

func (v *fakeView) FocusQuery()     { v.focused++ }
func (v *fakeView) Overflows() bool { v.measured++; return v.overflows }

type fakeSink struct{ msgs []hostmsg.Outbound }

func (s *fakeSink) Post(m hostmsg.Outbound) { s.msgs = append(s.msgs, m) }

type fakeSource struct {
	handlers map[int]hostmsg.Handler
	next     int
}

func (s *fakeSource) Subscribe(h hostmsg.Handler) func() {
	if s.handlers == nil {
		s.handlers = make(map[int]hostmsg.Handler)
	}
	s.next++
	id := s.next
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}

func (s *fakeSource) send(p domain.HostParams) {
	for _, h := range s.handlers {
		h(p)
	}
}

// failingLocalizer rejects every lookup
type failingLocalizer struct{}

func (failingLocalizer) Get(context.Context, string, map[string]any, string) (string, error) {
	return "", errors.New("catalog unavailable")
}

type fixture struct {
	c      *Coordinator
	bus    eventbus.EventBus
	rec    *eventbus.Recorder
	view   *fakeView
	sink   *fakeSink
	source *fakeSource
}

func newFixture(t *testing.T, mutate ...func(*Options)) *fixture {
	t.Helper()
	f := &fixture{
		bus:    eventbus.New(),
		rec:    &eventbus.Recorder{},
		view:   &fakeView{},
		sink:   &fakeSink{},
		source: &fakeSource{},
	}
	f.rec.Record(f.bus, eventbus.EventFind, eventbus.EventFindWords, eventbus.EventFindBarClose, eventbus.EventDocumentOpen)
	opts := Options{Bus: f.bus, Host: f.source, Sink: f.sink, View: f.view, HighlightAll: true}
	for _, m := range mutate {
		m(&opts)
	}
	f.c = New(opts)
	t.Cleanup(f.c.Dispose)
	return f
}

func (f *fixture) finds() []domain.FindEvent {
	var out []domain.FindEvent
	for _, e := range f.rec.OfType(eventbus.EventFind) {
		out = append(out, e.(domain.FindEvent))
	}
	return out
}

func (f *fixture) words() []domain.FindWordsEvent {
	var out []domain.FindWordsEvent
	for _, e := range f.rec.OfType(eventbus.EventFindWords) {
		out = append(out, e.(domain.FindWordsEvent))
	}
	return out
}

func keywordSet(entries ...domain.KeywordEntry) domain.HostParams {
	return domain.HostParams{Keywords: entries}
}

func fixed(word string) domain.KeywordEntry {
	return domain.KeywordEntry{Keyword: word, Kind: domain.KindFixed}
}

func editable(id, word string) domain.KeywordEntry {
	return domain.KeywordEntry{ID: id, Keyword: word, Kind: domain.KindEditable}
}

// collect runs cmd and every command batched under it, returning the leaf messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collect(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settle runs cmd and feeds the results back in order
func settle(c *Coordinator, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		c.Update(msg)
	}
}
