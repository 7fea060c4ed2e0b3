package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPoller() func() tcell.Event {
	return func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	}
}

func TestPumpEventsStopsOnCancelWhenFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go func() {
		pumpEvents(ctx, keyPoller(), events)
		close(done)
	}()

	// the buffer fills and nobody reads it any more
	require.Eventually(t, func() bool { return len(events) == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event pump still blocked after cancel")
	}
}

func TestPumpEventsStopsWhenScreenCloses(t *testing.T) {
	queue := []tcell.Event{
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
		tcell.NewEventResize(80, 24),
	}
	poll := func() tcell.Event {
		if len(queue) == 0 {
			return nil
		}
		ev := queue[0]
		queue = queue[1:]
		return ev
	}

	events := make(chan tcell.Event, 4)
	pumpEvents(context.Background(), poll, events)

	require.Len(t, events, 2)
	_, isKey := (<-events).(*tcell.EventKey)
	assert.True(t, isKey)
	_, isResize := (<-events).(*tcell.EventResize)
	assert.True(t, isResize)
}
