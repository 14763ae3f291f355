package viewer

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"findbar/internal/domain"
	"findbar/internal/eventbus"
)

// Span is a match inside one document line, as byte offsets
type Span struct {
	Line  int
	Start int
	End   int
}

// KeywordHit lists the highlighted occurrences of one stored keyword
type KeywordHit struct {
	Keyword string
	Spans   []Span
}

// Engine is a line-oriented search engine. It answers find and findwords
// requests with findstatus events and tracks highlights for rendering
type Engine struct {
	mu       sync.Mutex
	bus      eventbus.EventBus
	doc      *Document
	query    domain.SearchQuery
	matches  []Span
	current  int
	keywords []KeywordHit

	unsubscribers []func()
}

// NewEngine creates an engine subscribed to bus
func NewEngine(bus eventbus.EventBus) *Engine {
	e := &Engine{bus: bus, current: -1}
	e.unsubscribers = []func(){
		bus.Subscribe(eventbus.EventFind, func(ev eventbus.DomainEvent) {
			if find, ok := ev.(eventbus.FindEvent); ok {
				e.onFind(find)
			}
		}),
		bus.Subscribe(eventbus.EventFindWords, func(ev eventbus.DomainEvent) {
			if words, ok := ev.(eventbus.FindWordsEvent); ok {
				e.onFindWords(words)
			}
		}),
		bus.Subscribe(eventbus.EventFindBarClose, func(eventbus.DomainEvent) {
			e.clearMatches()
		}),
		bus.Subscribe(eventbus.EventDocumentOpen, func(ev eventbus.DomainEvent) {
			if open, ok := ev.(eventbus.DocumentOpenEvent); ok {
				if err := e.Load(open.Path); err != nil {
					slog.Warn("viewer: open document", "path", open.Path, "error", err)
				}
			}
		}),
	}
	return e
}

// Close detaches the engine from the bus
func (e *Engine) Close() {
	for _, unsub := range e.unsubscribers {
		unsub()
	}
	e.unsubscribers = nil
}

// Load reads path and makes it the current document
func (e *Engine) Load(path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	e.Open(doc)
	return nil
}

// Open replaces the current document and drops all highlights
func (e *Engine) Open(doc *Document) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
	e.query = domain.SearchQuery{}
	e.matches = nil
	e.current = -1
	e.keywords = nil
	slog.Info("viewer: document opened", "name", doc.Name, "size", doc.SizeLabel())
}

func (e *Engine) Document() *Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// Matches returns the matches of the active query
func (e *Engine) Matches() []Span {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.matches)
}

// Current returns the selected match
func (e *Engine) Current() (Span, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current < 0 || e.current >= len(e.matches) {
		return Span{}, false
	}
	return e.matches[e.current], true
}

// HighlightAll reports whether every match of the active query is highlighted
func (e *Engine) HighlightAll() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query.HighlightAll
}

// Keywords returns the keyword highlights of the last search-all request
func (e *Engine) Keywords() []KeywordHit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.keywords)
}

func (e *Engine) onFind(ev eventbus.FindEvent) {
	e.search(domain.SearchQuery{
		Text:          ev.Query,
		CaseSensitive: ev.CaseSensitive,
		EntireWord:    ev.EntireWord,
		HighlightAll:  ev.HighlightAll,
		PhraseSearch:  ev.PhraseSearch,
	}, ev.RequestType, ev.FindPrevious)
}

func (e *Engine) onFindWords(ev eventbus.FindWordsEvent) {
	if ev.RequestType == domain.RequestAgain {
		e.search(domain.SearchQuery{Text: ev.Query, PhraseSearch: true, HighlightAll: true}, ev.RequestType, ev.FindPrevious)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.keywords = nil
	if e.doc == nil {
		return
	}
	for _, kw := range strings.Split(ev.Query, ",") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		e.keywords = append(e.keywords, KeywordHit{
			Keyword: kw,
			Spans:   findAll(e.doc.Lines, domain.SearchQuery{Text: kw, PhraseSearch: true}),
		})
	}
}

func (e *Engine) search(q domain.SearchQuery, requestType string, previous bool) {
	status, ok := e.step(q, requestType, previous)
	if ok {
		e.bus.Publish(status)
	}
}

// step updates the selection and returns the status to report. The lock is
// released before publishing so subscribers may call back into the engine
func (e *Engine) step(q domain.SearchQuery, requestType string, previous bool) (eventbus.FindStatusEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.doc == nil {
		return eventbus.FindStatusEvent{State: domain.FindPending, Previous: previous}, true
	}

	if strings.TrimSpace(q.Text) == "" {
		e.query = q
		e.matches = nil
		e.current = -1
		return eventbus.FindStatusEvent{State: domain.FindFound, Previous: previous}, true
	}

	if requestType != domain.RequestAgain || !sameSearch(q, e.query) {
		e.query = q
		e.matches = findAll(e.doc.Lines, q)
		e.current = -1
		if len(e.matches) == 0 {
			return eventbus.FindStatusEvent{State: domain.FindNotFound, Previous: previous}, true
		}
		e.current = 0
		if previous {
			e.current = len(e.matches) - 1
		}
		return e.status(domain.FindFound, previous), true
	}

	e.query = q
	n := len(e.matches)
	if n == 0 {
		return eventbus.FindStatusEvent{State: domain.FindNotFound, Previous: previous}, true
	}
	state := domain.FindFound
	if previous {
		e.current--
		if e.current < 0 {
			e.current = n - 1
			state = domain.FindWrapped
		}
	} else {
		e.current++
		if e.current >= n {
			e.current = 0
			state = domain.FindWrapped
		}
	}
	return e.status(state, previous), true
}

func (e *Engine) status(state domain.FindState, previous bool) eventbus.FindStatusEvent {
	return eventbus.FindStatusEvent{
		State:        state,
		Previous:     previous,
		MatchesCount: domain.MatchesCount{Current: e.current + 1, Total: len(e.matches)},
	}
}

func (e *Engine) clearMatches() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query = domain.SearchQuery{}
	e.matches = nil
	e.current = -1
}

// sameSearch ignores HighlightAll, which changes rendering but not the match set
func sameSearch(a, b domain.SearchQuery) bool {
	return a.Text == b.Text &&
		a.CaseSensitive == b.CaseSensitive &&
		a.EntireWord == b.EntireWord &&
		a.PhraseSearch == b.PhraseSearch
}

func findAll(lines []string, q domain.SearchQuery) []Span {
	terms := []string{q.Text}
	if !q.PhraseSearch {
		terms = strings.Fields(q.Text)
	}
	var spans []Span
	for _, term := range terms {
		if term == "" {
			continue
		}
		for ln, line := range lines {
			spans = append(spans, findInLine(ln, line, term, q.CaseSensitive, q.EntireWord)...)
		}
	}
	if len(terms) > 1 {
		slices.SortFunc(spans, func(a, b Span) int {
			if c := cmp.Compare(a.Line, b.Line); c != 0 {
				return c
			}
			return cmp.Compare(a.Start, b.Start)
		})
	}
	return spans
}

func findInLine(ln int, line, term string, caseSensitive, entireWord bool) []Span {
	var spans []Span
	for i := 0; i+len(term) <= len(line); {
		if !utf8.RuneStart(line[i]) {
			i++
			continue
		}
		end := i + len(term)
		seg := line[i:end]
		hit := seg == term
		if !caseSensitive && !hit {
			hit = strings.EqualFold(seg, term)
		}
		if hit && (!entireWord || wordBoundary(line, i, end)) {
			spans = append(spans, Span{Line: ln, Start: i, End: end})
			i = end
			continue
		}
		i++
	}
	return spans
}

func wordBoundary(line string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(line[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(line) {
		r, _ := utf8.DecodeRuneInString(line[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
