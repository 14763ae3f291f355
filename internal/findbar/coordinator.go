// Package findbar implements the find bar coordinator: query and option state,
// the host-supplied keyword list with cyclic navigation, the host message
// protocol, and rendering of search engine status.
//
// A Coordinator is not safe for concurrent use. Every method must run on the
// UI loop; host messages arriving on other goroutines are marshalled there
// through Options.Post, and asynchronous renders come back as tea.Msg values
// for Update.
package findbar

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"findbar/internal/domain"
	"findbar/internal/eventbus"
	"findbar/internal/hostmsg"
	"findbar/internal/keywords"
	"findbar/internal/l10n"
)

// MatchesCountLimit caps the displayed match total
const MatchesCountLimit = 1000

// View is the part of the screen the coordinator drives but does not draw
type View interface {
	// FocusQuery focuses the query input and selects its contents
	FocusQuery()
	// Overflows reports whether the bar, laid out on a single row, is wider than the screen
	Overflows() bool
}

// Options configures a Coordinator. Bus is required.
type Options struct {
	Bus  eventbus.EventBus
	Host hostmsg.Source
	Sink hostmsg.Sink
	L10n l10n.Localizer
	View View

	// Post hands a message to the UI loop. When nil, host messages are applied
	// on the delivering goroutine, which is only correct for synchronous sources.
	Post func(tea.Msg)

	HighlightAll  bool
	CaseSensitive bool
	EntireWord    bool

	// MatchesLimit overrides MatchesCountLimit when positive
	MatchesLimit int
	// NoResultsCount disables the match counter entirely
	NoResultsCount bool
}

// Coordinator owns the find bar state
type Coordinator struct {
	id   string
	bus  eventbus.EventBus
	sink hostmsg.Sink
	l10n l10n.Localizer
	view View
	post func(tea.Msg)

	store     *keywords.Store
	params    domain.HostParams
	hasParams bool
	docPath   string
	items     []Item

	opened        bool
	query         string
	caseSensitive bool
	entireWord    bool
	highlightAll  bool

	notFound      bool
	status        string
	message       string
	resultsCount  string
	resultsShown  bool
	wrapped       bool
	matchesLimit  int
	hasResults    bool
	messageGen    uint64
	resultsGen    uint64
	unsubscribers []func()
}

// New creates a coordinator and subscribes it to the bus and the host source.
// Call Dispose to release both subscriptions.
func New(opts Options) *Coordinator {
	c := &Coordinator{
		id:            uuid.NewString(),
		bus:           opts.Bus,
		sink:          opts.Sink,
		l10n:          opts.L10n,
		view:          opts.View,
		post:          opts.Post,
		store:         keywords.NewStore(),
		caseSensitive: opts.CaseSensitive,
		entireWord:    opts.EntireWord,
		highlightAll:  opts.HighlightAll,
		matchesLimit:  MatchesCountLimit,
		hasResults:    !opts.NoResultsCount,
	}
	if opts.MatchesLimit > 0 {
		c.matchesLimit = opts.MatchesLimit
	}
	if c.l10n == nil {
		c.l10n = l10n.Null{}
	}

	c.unsubscribers = append(c.unsubscribers,
		c.bus.Subscribe(eventbus.EventResize, func(eventbus.DomainEvent) { c.adjustWidth() }),
	)
	if opts.Host != nil {
		c.unsubscribers = append(c.unsubscribers, opts.Host.Subscribe(c.receiveHostParams))
	}
	return c
}

// ID identifies this coordinator as the source of its events
func (c *Coordinator) ID() string {
	return c.id
}

// SetView attaches the view after construction, for views that need the coordinator first
func (c *Coordinator) SetView(v View) {
	c.view = v
}

// Dispose drops the bus and host subscriptions
func (c *Coordinator) Dispose() {
	for _, unsub := range c.unsubscribers {
		unsub()
	}
	c.unsubscribers = nil
}

// IsOpen reports whether the bar is shown
func (c *Coordinator) IsOpen() bool {
	return c.opened
}

// Open shows the bar. Opening an open bar does nothing.
func (c *Coordinator) Open() {
	if c.opened {
		return
	}
	c.opened = true
	if c.view != nil {
		c.view.FocusQuery()
	}
	c.renderItems()
	if c.hasParams {
		// Closing cleared keyword highlighting; put it back
		c.DispatchKeywordsSearch(domain.RequestNew, false, "")
	}
	c.adjustWidth()
}

// Close hides the bar and clears keyword highlighting. Closing a closed bar does nothing.
func (c *Coordinator) Close() {
	if !c.opened {
		return
	}
	c.opened = false
	c.bus.Publish(domain.FindBarCloseEvent{Source: c.id})
	c.publishWords(domain.RequestNew, false, "")
}

// Toggle closes an open bar and opens a closed one
func (c *Coordinator) Toggle() {
	if c.opened {
		c.Close()
	} else {
		c.Open()
	}
}

// Query returns the current query text
func (c *Coordinator) Query() string {
	return c.query
}

// SetQuery replaces the query text, as on every keystroke, and restarts the search
func (c *Coordinator) SetQuery(text string) {
	c.query = text
	c.DispatchFind(domain.RequestNew, false)
}

// FindAgain moves to the next or previous match of the unchanged query
func (c *Coordinator) FindAgain(previous bool) {
	c.DispatchFind(domain.RequestAgain, previous)
}

// SetHighlightAll changes the highlight-all option and re-searches
func (c *Coordinator) SetHighlightAll(on bool) {
	c.highlightAll = on
	c.DispatchFind(domain.RequestHighlightAllChange, false)
}

// SetCaseSensitive changes the match-case option and re-searches
func (c *Coordinator) SetCaseSensitive(on bool) {
	c.caseSensitive = on
	c.DispatchFind(domain.RequestCaseChange, false)
}

// SetEntireWord changes the whole-word option and re-searches
func (c *Coordinator) SetEntireWord(on bool) {
	c.entireWord = on
	c.DispatchFind(domain.RequestEntireWordChange, false)
}

// ToggleHighlightAll flips the highlight-all option
func (c *Coordinator) ToggleHighlightAll() { c.SetHighlightAll(!c.highlightAll) }

// ToggleCaseSensitive flips the match-case option
func (c *Coordinator) ToggleCaseSensitive() { c.SetCaseSensitive(!c.caseSensitive) }

// ToggleEntireWord flips the whole-word option
func (c *Coordinator) ToggleEntireWord() { c.SetEntireWord(!c.entireWord) }

// SaveQuery asks the host to store the current query as a new keyword
func (c *Coordinator) SaveQuery() {
	if isBlank(c.query) {
		return
	}
	c.postHost(hostmsg.SaveKey(c.query, ""))
}

func (c *Coordinator) postHost(msg hostmsg.Outbound) {
	if c.sink == nil {
		slog.Debug("findbar: no host sink, dropping message", "event", string(msg.Event))
		return
	}
	c.sink.Post(msg)
}

// adjustWidth switches to the wrapped layout when the single-row bar overflows
func (c *Coordinator) adjustWidth() {
	if !c.opened {
		return
	}
	c.wrapped = false
	if c.view != nil && c.view.Overflows() {
		c.wrapped = true
	}
}
