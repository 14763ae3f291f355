package keywords

import (
	"strings"
	"sync"

	"findbar/internal/domain"
)

// Store is the ordered keyword list with a cyclic cursor.
// The list is only ever replaced wholesale; entries are never edited in place.
type Store struct {
	mu      sync.RWMutex
	entries []domain.KeywordEntry
	cursor  int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new list and resets the cursor to 0
func (s *Store) Replace(entries []domain.KeywordEntry) {
	next := make([]domain.KeywordEntry, len(entries))
	copy(next, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = next
	s.cursor = 0
}

// Entries returns a copy of the current list
func (s *Store) Entries() []domain.KeywordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.KeywordEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Cursor returns the index the next navigation will search
func (s *Store) Cursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor
}

// Current returns the entry the next navigation searches. ok is false on an empty list.
func (s *Store) Current() (entry domain.KeywordEntry, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return domain.KeywordEntry{}, false
	}
	return s.entries[s.cursor], true
}

// Advance moves the cursor forward, wrapping from the last entry to the first
func (s *Store) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return
	}
	if s.cursor == len(s.entries)-1 {
		s.cursor = 0
	} else {
		s.cursor++
	}
}

// Retreat moves the cursor back, wrapping from the first entry to the last
func (s *Store) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return
	}
	if s.cursor == 0 {
		s.cursor = len(s.entries) - 1
	} else {
		s.cursor--
	}
}

// JoinedQuery returns every keyword joined with commas, the "search all" query
func (s *Store) JoinedQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, len(s.entries))
	for i, e := range s.entries {
		words[i] = e.Keyword
	}
	return strings.Join(words, ",")
}
