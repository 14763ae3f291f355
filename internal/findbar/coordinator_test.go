package findbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
	"findbar/internal/eventbus"
)

func TestOpenIsIdempotent(t *testing.T) {
	f := newFixture(t)

	f.c.Open()
	f.c.Open()

	assert.True(t, f.c.IsOpen())
	assert.Equal(t, 1, f.view.focused)
	assert.Equal(t, 1, f.view.measured)
	assert.Empty(t, f.words(), "nothing to restore without host params")
}

func TestCloseEmitsCloseAndClearOnce(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(fixed("a"), fixed("b")))
	f.c.Open()
	f.rec.Reset()

	f.c.Close()
	f.c.Close()

	assert.False(t, f.c.IsOpen())
	closes := f.rec.OfType(eventbus.EventFindBarClose)
	require.Len(t, closes, 1)
	assert.Equal(t, f.c.ID(), closes[0].(domain.FindBarCloseEvent).Source)

	words := f.words()
	require.Len(t, words, 1)
	assert.Equal(t, "", words[0].Query)
	assert.False(t, words[0].FindPrevious)
}

func TestCloseWhenNeverOpenedIsNoop(t *testing.T) {
	f := newFixture(t)
	f.c.Close()
	assert.Empty(t, f.rec.Events())
}

func TestToggle(t *testing.T) {
	f := newFixture(t)
	f.c.Toggle()
	assert.True(t, f.c.IsOpen())
	f.c.Toggle()
	assert.False(t, f.c.IsOpen())
	assert.Len(t, f.rec.OfType(eventbus.EventFindBarClose), 1)
}

func TestReopenRestoresKeywordHighlighting(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(fixed("a"), fixed("b")))
	f.c.Open()
	f.c.Close()
	f.rec.Reset()

	f.c.Open()

	words := f.words()
	require.Len(t, words, 1)
	assert.Equal(t, "a,b", words[0].Query)
}

func TestSetQueryDispatchesNewSearch(t *testing.T) {
	f := newFixture(t)

	f.c.SetQuery("dep")
	f.c.SetQuery("deposit")

	finds := f.finds()
	require.Len(t, finds, 2)
	assert.Equal(t, domain.FindEvent{
		Source:       f.c.ID(),
		RequestType:  domain.RequestNew,
		Query:        "deposit",
		PhraseSearch: true,
		HighlightAll: true,
	}, finds[1])
}

func TestFindAgainCarriesDirection(t *testing.T) {
	f := newFixture(t)
	f.c.SetQuery("term")
	f.rec.Reset()

	f.c.FindAgain(false)
	f.c.FindAgain(true)

	finds := f.finds()
	require.Len(t, finds, 2)
	assert.Equal(t, domain.RequestAgain, finds[0].RequestType)
	assert.False(t, finds[0].FindPrevious)
	assert.True(t, finds[1].FindPrevious)
	assert.Equal(t, "term", finds[1].Query)
}

func TestOptionChangesResearchWithoutTouchingKeywords(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(fixed("a"), fixed("b"), fixed("c")))
	f.c.FindNextKeyword()
	require.Equal(t, 1, f.c.Cursor())
	f.c.SetQuery("deposit")
	f.rec.Reset()

	f.c.ToggleCaseSensitive()
	f.c.ToggleEntireWord()
	f.c.ToggleHighlightAll()

	finds := f.finds()
	require.Len(t, finds, 3)
	assert.Equal(t, domain.RequestCaseChange, finds[0].RequestType)
	assert.True(t, finds[0].CaseSensitive)
	assert.Equal(t, "deposit", finds[0].Query)

	assert.Equal(t, domain.RequestEntireWordChange, finds[1].RequestType)
	assert.True(t, finds[1].EntireWord)

	assert.Equal(t, domain.RequestHighlightAllChange, finds[2].RequestType)
	assert.False(t, finds[2].HighlightAll)

	assert.Equal(t, 1, f.c.Cursor())
	assert.Len(t, f.c.Items(), 3)
	assert.Empty(t, f.words())
}

func TestSaveQuery(t *testing.T) {
	f := newFixture(t)

	f.c.SaveQuery()
	assert.Empty(t, f.sink.msgs)

	f.c.SetQuery("late fee")
	f.c.SaveQuery()
	require.Len(t, f.sink.msgs, 1)
	assert.Equal(t, "saveKey", string(f.sink.msgs[0].Event))
	assert.Equal(t, "late fee", f.sink.msgs[0].Params.Keyword)
	assert.Empty(t, f.sink.msgs[0].Params.ID)
}

func TestResizeReadjustsOnlyWhenOpen(t *testing.T) {
	f := newFixture(t)

	f.bus.Publish(domain.ResizeEvent{Width: 40})
	assert.Equal(t, 0, f.view.measured)

	f.c.Open()
	f.view.overflows = true
	f.bus.Publish(domain.ResizeEvent{Width: 40})
	assert.True(t, f.c.Snapshot().Wrapped)

	f.view.overflows = false
	f.bus.Publish(domain.ResizeEvent{Width: 200})
	assert.False(t, f.c.Snapshot().Wrapped)
}

func TestDisposeUnsubscribes(t *testing.T) {
	f := newFixture(t)
	f.c.Open()
	f.c.Dispose()
	measured := f.view.measured

	f.bus.Publish(domain.ResizeEvent{Width: 10})
	f.source.send(keywordSet(fixed("a")))

	assert.Equal(t, measured, f.view.measured)
	assert.Empty(t, f.c.Items())
	assert.Empty(t, f.source.handlers)
}
