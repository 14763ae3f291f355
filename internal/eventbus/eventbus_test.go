package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishIsSynchronousAndOrdered(t *testing.T) {
	b := New()
	var got []string
	b.Subscribe(EventFind, func(e DomainEvent) { got = append(got, "first:"+e.(FindEvent).Query) })
	b.Subscribe(EventFind, func(e DomainEvent) { got = append(got, "second:"+e.(FindEvent).Query) })

	b.Publish(FindEvent{Query: "a"})
	b.Publish(FindEvent{Query: "b"})

	assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, got)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	var a, c int
	unsubA := b.Subscribe(EventResize, func(DomainEvent) { a++ })
	b.Subscribe(EventResize, func(DomainEvent) { c++ })

	b.Publish(ResizeEvent{Width: 80})
	unsubA()
	unsubA()
	b.Publish(ResizeEvent{Width: 100})

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, c)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New()
	delivered := false
	b.Subscribe(EventFindBarClose, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventFindBarClose, func(DomainEvent) { delivered = true })

	require.NotPanics(t, func() { b.Publish(FindBarCloseEvent{Source: "x"}) })
	assert.True(t, delivered)
}

func TestNestedPublishIsDeliveredDepthFirst(t *testing.T) {
	b := New()
	var order []EventType
	b.Subscribe(EventFind, func(e DomainEvent) {
		order = append(order, e.Type())
		b.Publish(FindStatusEvent{})
	})
	b.Subscribe(EventFindStatus, func(e DomainEvent) { order = append(order, e.Type()) })
	b.Subscribe(EventFind, func(e DomainEvent) { order = append(order, "after") })

	b.Publish(FindEvent{})

	assert.Equal(t, []EventType{EventFind, EventFindStatus, "after"}, order)
}

func TestRecorderFiltersByType(t *testing.T) {
	b := New()
	var r Recorder
	stop := r.Record(b, EventFind, EventFindWords)

	b.Publish(FindEvent{Query: "x"})
	b.Publish(FindWordsEvent{Query: "y"})
	b.Publish(FindBarCloseEvent{})
	stop()
	b.Publish(FindEvent{Query: "ignored"})

	assert.Len(t, r.Events(), 2)
	require.Len(t, r.OfType(EventFindWords), 1)
	assert.Equal(t, "y", r.OfType(EventFindWords)[0].(FindWordsEvent).Query)
}
