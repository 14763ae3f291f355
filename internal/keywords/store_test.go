package keywords

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
)

func entries(words ...string) []domain.KeywordEntry {
	out := make([]domain.KeywordEntry, len(words))
	for i, w := range words {
		out[i] = domain.KeywordEntry{Keyword: w, Kind: domain.KindFixed}
	}
	return out
}

func TestAdvanceVisitsEntriesCyclically(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			words := make([]string, n)
			for i := range words {
				words[i] = fmt.Sprintf("w%d", i)
			}
			s := NewStore()
			s.Replace(entries(words...))

			for step := 0; step < 3*n; step++ {
				e, ok := s.Current()
				require.True(t, ok)
				assert.Equal(t, words[step%n], e.Keyword)
				s.Advance()
			}
		})
	}
}

func TestRetreatVisitsEntriesBackwards(t *testing.T) {
	s := NewStore()
	s.Replace(entries("a", "b", "c"))

	// The first press searches the entry under the cursor, then wraps to the end
	var got []string
	for i := 0; i < 7; i++ {
		e, ok := s.Current()
		require.True(t, ok)
		got = append(got, e.Keyword)
		s.Retreat()
	}
	assert.Equal(t, []string{"a", "c", "b", "a", "c", "b", "a"}, got)
}

func TestEmptyStoreNavigationIsNoop(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok)
	s.Advance()
	s.Retreat()
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "", s.JoinedQuery())
}

func TestReplaceResetsCursor(t *testing.T) {
	s := NewStore()
	s.Replace(entries("a", "b", "c"))
	s.Advance()
	s.Advance()
	require.Equal(t, 2, s.Cursor())

	s.Replace(entries("x", "y"))
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "x,y", s.JoinedQuery())
}

func TestReplaceCopiesInput(t *testing.T) {
	in := entries("a", "b")
	s := NewStore()
	s.Replace(in)
	in[0].Keyword = "mutated"

	assert.Equal(t, "a", s.Entries()[0].Keyword)

	out := s.Entries()
	out[1].Keyword = "mutated"
	assert.Equal(t, "b", s.Entries()[1].Keyword)
}
