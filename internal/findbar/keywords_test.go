package findbar

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
	"findbar/internal/eventbus"
	"findbar/internal/hostmsg"
)

func TestHostPayloadRebuildsList(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(fixed("old")))
	f.c.FindNextKeyword()
	f.rec.Reset()

	f.source.send(keywordSet(editable("k1", "deposit"), editable("", "draft"), fixed("advance payment")))

	items := f.c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 0, f.c.Cursor())

	assert.Equal(t, Item{Index: 0, ID: "k1", Keyword: "deposit", Controls: editableControls}, items[0])
	assert.Equal(t, Item{Index: 1, Keyword: "draft", Controls: editableControls}, items[1])
	assert.Equal(t, Item{Index: 2, Keyword: "advance payment", ReadOnly: true, Controls: fixedControls}, items[2])

	words := f.words()
	require.Len(t, words, 1)
	assert.Equal(t, "deposit,draft,advance payment", words[0].Query)
	assert.Equal(t, domain.RequestNew, words[0].RequestType)
}

func TestItemsDoNotShareControls(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(editable("k1", "deposit"), editable("k2", "loan")))

	items := f.c.Items()
	items[0].Controls[0] = ControlDelete

	assert.Equal(t, ControlFindPrevious, items[1].Controls[0])
	assert.Equal(t, ControlFindPrevious, f.c.Items()[0].Controls[0])
	assert.Equal(t, ControlFindPrevious, editableControls[0])
}

func TestEmptyKeywordListStillDispatchesSearchAll(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet())

	assert.Empty(t, f.c.Items())
	words := f.words()
	require.Len(t, words, 1)
	assert.Equal(t, "", words[0].Query)
}

func TestHostPayloadIsMarshalledThroughPost(t *testing.T) {
	var posted []tea.Msg
	f := newFixture(t, func(o *Options) { o.Post = func(m tea.Msg) { posted = append(posted, m) } })

	f.source.send(keywordSet(fixed("a")))
	assert.Empty(t, f.c.Items(), "not applied until the UI loop runs it")
	require.Len(t, posted, 1)

	f.c.Update(posted[0])
	assert.Len(t, f.c.Items(), 1)

	other := newFixture(t)
	other.c.Update(posted[0])
	assert.Empty(t, other.c.Items(), "messages are addressed to one coordinator")
}

func TestHostPathOpensDocumentOnce(t *testing.T) {
	f := newFixture(t)
	p := domain.HostParams{Path: "contract.txt", Keywords: []domain.KeywordEntry{fixed("a")}}

	f.c.ApplyHostParams(p)
	f.c.ApplyHostParams(p)

	opens := f.rec.OfType(eventbus.EventDocumentOpen)
	require.Len(t, opens, 1)
	assert.Equal(t, "contract.txt", opens[0].(domain.DocumentOpenEvent).Path)
}

func TestCyclicNextVisitsInOrder(t *testing.T) {
	for n := 1; n <= 4; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f := newFixture(t)
			var set []domain.KeywordEntry
			for i := 0; i < n; i++ {
				set = append(set, fixed(fmt.Sprintf("w%d", i)))
			}
			f.c.ApplyHostParams(keywordSet(set...))
			f.rec.Reset()

			for i := 0; i < 2*n+1; i++ {
				f.c.FindNextKeyword()
			}

			words := f.words()
			require.Len(t, words, 2*n+1)
			for i, w := range words {
				assert.Equal(t, fmt.Sprintf("w%d", i%n), w.Query)
				assert.Equal(t, domain.RequestAgain, w.RequestType)
				assert.False(t, w.FindPrevious)
			}
		})
	}
}

func TestCyclicPreviousVisitsBackwards(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(fixed("a"), fixed("b"), fixed("c")))
	f.rec.Reset()

	for i := 0; i < 5; i++ {
		f.c.FindPreviousKeyword()
	}

	var got []string
	for _, w := range f.words() {
		got = append(got, w.Query)
		assert.True(t, w.FindPrevious)
	}
	// The cursor starts at 0: the first press searches entry 0, then wraps to the end
	assert.Equal(t, []string{"a", "c", "b", "a", "c"}, got)
}

func TestNavigationOnEmptyListIsSilent(t *testing.T) {
	f := newFixture(t)
	f.c.FindNextKeyword()
	f.c.FindPreviousKeyword()

	f.c.ApplyHostParams(keywordSet())
	f.rec.Reset()
	f.c.FindNextKeyword()
	f.c.FindPreviousKeyword()

	assert.Empty(t, f.words())
	assert.Equal(t, 0, f.c.Cursor())
}

func TestItemFindControlsUseTheItemsOwnText(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(editable("k1", "deposit"), fixed("term")))
	f.rec.Reset()

	f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlFindNext, Text: "deposit paid"})
	f.c.HandleItemEvent(ItemEvent{Index: 1, Control: ControlFindPrevious, Text: "term"})

	words := f.words()
	require.Len(t, words, 2)
	assert.Equal(t, "deposit paid", words[0].Query)
	assert.False(t, words[0].FindPrevious)
	assert.Equal(t, "term", words[1].Query)
	assert.True(t, words[1].FindPrevious)
	assert.Equal(t, 0, f.c.Cursor())
}

func TestItemSaveWithoutID(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(editable("", "draft")))

	f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlSave, Text: "draft clause"})

	require.Len(t, f.sink.msgs, 1)
	assert.Equal(t, hostmsg.SaveKey("draft clause", ""), f.sink.msgs[0])
	assert.Empty(t, f.sink.msgs[0].Params.ID)
	assert.Len(t, f.c.Items(), 1, "the list waits for the host")
}

func TestItemSaveAndDeleteWithID(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(editable("k1", "deposit")))

	f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlSave, Text: "deposit"})
	f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlDelete, Text: "deposit"})

	require.Len(t, f.sink.msgs, 2)
	assert.Equal(t, hostmsg.SaveKey("deposit", "k1"), f.sink.msgs[0])
	assert.Equal(t, hostmsg.DeleteKey("k1"), f.sink.msgs[1])
	assert.Equal(t, "k1", f.sink.msgs[1].Params.ID)
	assert.Equal(t, "deposit", f.c.Items()[0].Keyword)
}

func TestItemEventsThatDoNotApply(t *testing.T) {
	f := newFixture(t)
	f.c.ApplyHostParams(keywordSet(fixed("term"), editable("k1", "deposit")))
	f.rec.Reset()

	f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlSave, Text: "term"})
	f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlDelete})
	f.c.HandleItemEvent(ItemEvent{Index: 1, Control: ControlSave, Text: "   "})
	f.c.HandleItemEvent(ItemEvent{Index: 5, Control: ControlFindNext, Text: "x"})
	f.c.HandleItemEvent(ItemEvent{Index: -1, Control: ControlDelete})

	assert.Empty(t, f.sink.msgs)
	assert.Empty(t, f.words())
}

func TestNoSinkDropsOutbound(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Sink = nil })
	f.c.ApplyHostParams(keywordSet(editable("k1", "deposit")))

	assert.NotPanics(t, func() {
		f.c.HandleItemEvent(ItemEvent{Index: 0, Control: ControlDelete})
	})
}
