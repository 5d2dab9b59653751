package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	hits  int
	onHit func()
}

func (c *countingHandler) HandleEvent(Event) {
	c.hits++
	if c.onHit != nil {
		c.onHit()
	}
}

func TestDispatcherAddIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	h := &countingHandler{}

	require.NoError(t, d.AddEventListener("tick", h))
	require.NoError(t, d.AddEventListener("tick", h))

	assert.Equal(t, 1, d.ListenerCount("tick"))
	assert.Equal(t, 1, d.Dispatch(testEvent{name: "tick"}))
	assert.Equal(t, 1, h.hits)
}

func TestDispatcherRejectsInvalidRegistrations(t *testing.T) {
	d := NewDispatcher()

	assert.ErrorIs(t, d.AddEventListener("tick", nil), ErrNilHandler)
	assert.ErrorAs(t, d.AddEventListener("", &countingHandler{}), &ErrEmptyEventName{})
	assert.Equal(t, 0, d.ListenerCount("tick"))
}

func TestDispatcherOrderAndRemoval(t *testing.T) {
	d := NewDispatcher()

	var order []string
	a := &countingHandler{onHit: func() { order = append(order, "a") }}
	b := &countingHandler{onHit: func() { order = append(order, "b") }}
	c := &countingHandler{onHit: func() { order = append(order, "c") }}

	for _, h := range []Handler{a, b, c} {
		require.NoError(t, d.AddEventListener("tick", h))
	}
	d.Dispatch(testEvent{name: "tick"})

	d.RemoveEventListener("tick", b)
	d.RemoveEventListener("tick", b)
	d.RemoveEventListener("tock", a)
	d.Dispatch(testEvent{name: "tick"})

	assert.Equal(t, []string{"a", "b", "c", "a", "c"}, order)
	assert.Equal(t, 2, d.ListenerCount("tick"))
}

func TestDispatcherRemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher()

	second := &countingHandler{}
	first := &countingHandler{}
	first.onHit = func() { d.RemoveEventListener("tick", first) }

	require.NoError(t, d.AddEventListener("tick", first))
	require.NoError(t, d.AddEventListener("tick", second))

	assert.Equal(t, 2, d.Dispatch(testEvent{name: "tick"}))
	assert.Equal(t, 1, d.Dispatch(testEvent{name: "tick"}))
	assert.Equal(t, 1, first.hits)
	assert.Equal(t, 2, second.hits)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher

	assert.ErrorIs(t, d.AddEventListener("tick", &countingHandler{}), ErrNilSource)
	assert.NotPanics(t, func() { d.RemoveEventListener("tick", &countingHandler{}) })
	assert.Equal(t, 0, d.Dispatch(testEvent{name: "tick"}))
	assert.Equal(t, 0, d.ListenerCount("tick"))
}
