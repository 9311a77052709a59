package core

import (
	"context"
	"sync"
	"sync/atomic"
)

var busSeq atomic.Uint64

// MessageBus is an unbounded FIFO queue shared by many producers and one
// conceptual consumer. Handles compare by identity, not by contents: two
// handles refer to the same queue iff Same reports true.
type MessageBus[T any] struct {
	id     uint64
	notify chan struct{}

	mu    sync.Mutex
	queue []T
}

// NewMessageBus constructs an empty bus with a fresh identity.
func NewMessageBus[T any]() *MessageBus[T] {
	return &MessageBus[T]{
		id:     busSeq.Add(1),
		notify: make(chan struct{}, 1),
	}
}

// Push appends msg to the tail. It never blocks.
func (b *MessageBus[T]) Push(msg T) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Pop removes and returns the oldest message. The second return value is
// false if the bus is empty.
func (b *MessageBus[T]) Pop() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.queue) == 0 {
		var zero T
		return zero, false
	}
	msg := b.queue[0]
	b.queue = b.queue[1:]
	return msg, true
}

// Len returns a snapshot of the queue length.
func (b *MessageBus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// IsEmpty reports whether the bus held no messages at snapshot time.
func (b *MessageBus[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Wait blocks until a message may be available or ctx is done. A wake-up is
// a hint, not a guarantee: callers must still check Pop's second return.
func (b *MessageBus[T]) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.notify:
		return nil
	}
}

// Same reports whether both handles refer to the same underlying queue.
func (b *MessageBus[T]) Same(other *MessageBus[T]) bool {
	return other != nil && b.id == other.id
}
