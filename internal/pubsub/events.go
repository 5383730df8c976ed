// Package pubsub provides a generic publish/subscribe event system used to
// fan control events out to hosts that are not in the Bubble Tea update path.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	DraftChangedEvent     EventType = "draft.changed"
	TagAddedEvent         EventType = "tag.added"
	TagRemovedEvent       EventType = "tag.removed"
	ConfirmRequestedEvent EventType = "confirm.requested"
	ConfirmResolvedEvent  EventType = "confirm.resolved"
	BlurredEvent          EventType = "blurred"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}
