package broadcast

import "github.com/google/uuid"

// Subscriber is the handle of one connected observer.
type Subscriber struct {
	id     string
	events chan Event
}

func newSubscriber(buffer int) *Subscriber {
	return &Subscriber{
		id:     uuid.NewString(),
		events: make(chan Event, buffer),
	}
}

// ID returns the opaque subscriber identifier.
func (s *Subscriber) ID() string {
	return s.id
}

// Events yields delivered events in publish order. The channel is closed once
// the subscriber is removed, either by Unsubscribe or after falling behind.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}
