package findbar

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/domain"
)

// StatusPending marks a search the engine has not finished
const StatusPending = "pending"

const localizeTimeout = 2 * time.Second

// UpdateUIState renders a search engine verdict. The not-found flag and
// pending marker apply immediately; the message and the match counter are
// localized asynchronously and applied by Update.
func (c *Coordinator) UpdateUIState(state domain.FindState, previous bool, matches domain.MatchesCount) tea.Cmd {
	notFound := false
	status := ""
	var key, fallback string

	switch state {
	case domain.FindFound:
	case domain.FindPending:
		status = StatusPending
	case domain.FindNotFound:
		key, fallback = "find_not_found", "Phrase not found"
		notFound = true
	case domain.FindWrapped:
		if previous {
			key, fallback = "find_reached_top", "Reached top of document, continued from bottom"
		} else {
			key, fallback = "find_reached_bottom", "Reached end of document, continued from top"
		}
	}

	c.notFound = notFound
	c.status = status

	c.messageGen++
	gen := c.messageGen
	messageCmd := c.localize(key, nil, fallback, func(text string, err error) tea.Msg {
		return statusMessageMsg{owner: c.id, gen: gen, text: text, err: err}
	})

	return tea.Batch(messageCmd, c.UpdateResultsCount(matches))
}

// UpdateResultsCount renders the match counter. Totals above the limit show
// as "more than"; a zero total hides the counter.
func (c *Coordinator) UpdateResultsCount(matches domain.MatchesCount) tea.Cmd {
	if !c.hasResults {
		return nil
	}
	limit := c.matchesLimit
	current, total := matches.Current, matches.Total

	var key, fallback string
	var args map[string]any
	if total > 0 {
		if total > limit {
			key = "find_match_count_limit"
			fallback = "More than {{limit}} match" + plural(limit)
			args = map[string]any{"limit": limit}
		} else {
			key = "find_match_count"
			fallback = "{{current}} of {{total}} match" + plural(total)
			args = map[string]any{"current": current, "total": total}
		}
	}

	c.resultsGen++
	gen := c.resultsGen
	return c.localize(key, args, fallback, func(text string, err error) tea.Msg {
		return resultsCountMsg{owner: c.id, gen: gen, text: text, total: total, err: err}
	})
}

// Reset renders the idle state: no message, no counter
func (c *Coordinator) Reset() tea.Cmd {
	return c.UpdateUIState(domain.FindFound, false, domain.MatchesCount{})
}

// localize resolves key off the UI loop. An empty key renders the empty string.
func (c *Coordinator) localize(key string, args map[string]any, fallback string, wrap func(string, error) tea.Msg) tea.Cmd {
	if key == "" {
		return func() tea.Msg { return wrap("", nil) }
	}
	loc := c.l10n
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), localizeTimeout)
		defer cancel()
		text, err := loc.Get(ctx, key, args, fallback)
		return wrap(text, err)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}

// Update applies host messages and finished renders. A render is dropped when
// a newer render of the same kind has been requested since.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case HostParamsMsg:
		if msg.owner != c.id {
			return nil
		}
		c.ApplyHostParams(msg.Params)

	case statusMessageMsg:
		if msg.owner != c.id || msg.gen != c.messageGen {
			return nil
		}
		if msg.err != nil {
			slog.Warn("findbar: status message not localized", "error", msg.err)
			return nil
		}
		c.message = msg.text
		c.adjustWidth()

	case resultsCountMsg:
		if msg.owner != c.id || msg.gen != c.resultsGen {
			return nil
		}
		if msg.err != nil {
			slog.Warn("findbar: match count not localized", "error", msg.err)
			return nil
		}
		c.resultsCount = msg.text
		c.resultsShown = msg.total > 0
		c.adjustWidth()
	}
	return nil
}

// Snapshot is everything a view needs to draw the bar
type Snapshot struct {
	Open          bool
	Query         string
	CaseSensitive bool
	EntireWord    bool
	HighlightAll  bool

	NotFound     bool
	Status       string
	Message      string
	ResultsCount string
	ResultsShown bool
	Wrapped      bool

	Items  []Item
	Cursor int
}

// Snapshot returns the current render state
func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{
		Open:          c.opened,
		Query:         c.query,
		CaseSensitive: c.caseSensitive,
		EntireWord:    c.entireWord,
		HighlightAll:  c.highlightAll,
		NotFound:      c.notFound,
		Status:        c.status,
		Message:       c.message,
		ResultsCount:  c.resultsCount,
		ResultsShown:  c.resultsShown,
		Wrapped:       c.wrapped,
		Items:         c.Items(),
		Cursor:        c.store.Cursor(),
	}
}
