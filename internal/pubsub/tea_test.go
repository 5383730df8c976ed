package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	ch := make(chan Event[string], 1)
	ch <- Event[string]{Type: TagAddedEvent, Payload: "blue"}

	msg := ListenCmd(context.Background(), ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "blue", event.Payload)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := ListenCmd(ctx, make(chan Event[string]))()
	require.Nil(t, msg)
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	require.Nil(t, ListenCmd(context.Background(), ch)())
}

func TestContinuousListener_Listen(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener[int](ctx, broker)

	broker.Publish(TagAddedEvent, 0)
	broker.Publish(TagAddedEvent, 1)
	broker.Publish(TagRemovedEvent, 1)

	want := []struct {
		typ     EventType
		payload int
	}{
		{TagAddedEvent, 0},
		{TagAddedEvent, 1},
		{TagRemovedEvent, 1},
	}
	for _, w := range want {
		event, ok := listener.Listen()().(Event[int])
		require.True(t, ok)
		require.Equal(t, w.typ, event.Type)
		require.Equal(t, w.payload, event.Payload)
	}
}
