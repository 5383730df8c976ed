package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zjrosen/taginput/internal/log"
)

// A control publishes every keystroke as a DraftChangedEvent, so the buffer
// must absorb a burst of typing between two reads by a slow host.
const defaultBufferSize = 64

// Broker delivers control events (draft edits, tag additions and removals,
// confirmation traffic) to hosts that watch a control from outside its
// update loop. Publishing never blocks the control: an event that does not
// fit a subscriber's buffer is dropped for that subscriber and counted.
type Broker[T any] struct {
	subs       map[chan Event[T]]struct{}
	mu         sync.RWMutex
	done       chan struct{}
	bufferSize int
	dropped    atomic.Uint64
}

// NewBroker creates a broker whose subscribers buffer 64 events.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer creates a broker whose subscribers buffer size events.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[chan Event[T]]struct{}),
		done:       make(chan struct{}),
		bufferSize: size,
	}
}

// Subscribe registers a host. The returned channel closes when ctx is done or
// the control closes the broker, whichever comes first. Subscribing to a
// closed broker yields an already closed channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		ch := make(chan Event[T])
		close(ch)
		return ch
	default:
	}

	sub := make(chan Event[T], b.bufferSize)
	b.subs[sub] = struct{}{}

	go b.release(ctx, sub)

	return sub
}

// release unregisters sub once its subscriber goes away.
func (b *Broker[T]) release(ctx context.Context, sub chan Event[T]) {
	select {
	case <-ctx.Done():
	case <-b.done:
		return // Close owns sub now
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub)
}

// Publish stamps payload and hands it to every subscriber with room for it.
// It is a no-op once the broker is closed.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	select {
	case <-b.done:
		return
	default:
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			n := b.dropped.Add(1)
			log.Debug(log.CatEvents, "subscriber full, event dropped", "type", eventType, "dropped", n)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber's
// buffer was full.
func (b *Broker[T]) Dropped() uint64 {
	return b.dropped.Load()
}

// Close shuts the broker down and closes every subscriber channel. The
// control calls it on teardown; later calls are no-ops.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		return
	default:
	}

	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount returns the number of hosts currently subscribed.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
