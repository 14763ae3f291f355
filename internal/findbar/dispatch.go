package findbar

import (
	"strings"

	"findbar/internal/domain"
)

// SearchQuery returns the snapshot a find event would carry
func (c *Coordinator) SearchQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Text:          c.query,
		CaseSensitive: c.caseSensitive,
		EntireWord:    c.entireWord,
		HighlightAll:  c.highlightAll,
		PhraseSearch:  true,
	}
}

// DispatchFind publishes a single-query find event for the current query and options
func (c *Coordinator) DispatchFind(requestType string, findPrevious bool) {
	q := c.SearchQuery()
	c.bus.Publish(domain.FindEvent{
		Source:        c.id,
		RequestType:   requestType,
		Query:         q.Text,
		PhraseSearch:  q.PhraseSearch,
		CaseSensitive: q.CaseSensitive,
		EntireWord:    q.EntireWord,
		HighlightAll:  q.HighlightAll,
		FindPrevious:  findPrevious,
	})
}

// DispatchKeywordsSearch publishes a findwords event for value, or for every
// stored keyword joined with commas when value is empty
func (c *Coordinator) DispatchKeywordsSearch(requestType string, findPrevious bool, value string) {
	if value == "" {
		value = c.store.JoinedQuery()
	}
	c.publishWords(requestType, findPrevious, value)
}

func (c *Coordinator) publishWords(requestType string, findPrevious bool, query string) {
	c.bus.Publish(domain.FindWordsEvent{
		Source:       c.id,
		RequestType:  requestType,
		Query:        query,
		FindPrevious: findPrevious,
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
