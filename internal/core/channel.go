package core

import "sync"

// Channel is a named broadcast group. Subscribers are message bus handles;
// membership is tracked by bus identity so that unsubscribing one client can
// never detach another client's bus.
type Channel struct {
	ID   int
	Name string

	mu   sync.Mutex
	subs []*MessageBus[ChatMessage]
}

// NewChannel constructs a channel with no subscribers.
func NewChannel(id int, name string) *Channel {
	return &Channel{ID: id, Name: name}
}

// Subscribe appends bus to the subscriber list.
func (ch *Channel) Subscribe(bus *MessageBus[ChatMessage]) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.subs = append(ch.subs, bus)
}

// Unsubscribe removes the first subscriber with the same identity as bus.
// Callers must only unsubscribe a bus they previously subscribed.
func (ch *Channel) Unsubscribe(bus *MessageBus[ChatMessage]) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	for i, sub := range ch.subs {
		if sub.Same(bus) {
			ch.subs = append(ch.subs[:i], ch.subs[i+1:]...)
			return nil
		}
	}
	return ErrNotSubscribed
}

// Broadcast pushes msg onto every subscriber's bus except the excluded one
// (the sender's own inbound queue, which must not see its own chat).
// Delivery targets are a snapshot: a bus subscribed after the snapshot is
// taken does not receive msg.
func (ch *Channel) Broadcast(msg ChatMessage, exclude *MessageBus[ChatMessage]) {
	ch.mu.Lock()
	targets := make([]*MessageBus[ChatMessage], len(ch.subs))
	copy(targets, ch.subs)
	ch.mu.Unlock()

	for _, sub := range targets {
		if exclude != nil && sub.Same(exclude) {
			continue
		}
		sub.Push(msg)
	}
}

// NumSubscribers returns the subscriber count at snapshot time.
func (ch *Channel) NumSubscribers() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.subs)
}
