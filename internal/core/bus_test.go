package core

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMessageBusFIFO(t *testing.T) {
	bus := NewMessageBus[int]()
	for i := range 5 {
		bus.Push(i)
	}
	if bus.Len() != 5 {
		t.Fatalf("expected len 5, got %d", bus.Len())
	}
	for i := range 5 {
		got, ok := bus.Pop()
		if !ok || got != i {
			t.Fatalf("pop %d: got %d ok=%v", i, got, ok)
		}
	}
	if _, ok := bus.Pop(); ok {
		t.Fatal("pop on empty bus should report not ok")
	}
	if !bus.IsEmpty() {
		t.Fatal("drained bus should be empty")
	}
}

func TestMessageBusConcurrentProducers(t *testing.T) {
	const producers, perProducer = 10, 100

	bus := NewMessageBus[int]()
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := range perProducer {
				bus.Push(p*perProducer + i)
			}
		}(p)
	}
	wg.Wait()

	if bus.Len() != producers*perProducer {
		t.Fatalf("expected %d queued, got %d", producers*perProducer, bus.Len())
	}

	seen := make(map[int]bool)
	for {
		v, ok := bus.Pop()
		if !ok {
			break
		}
		if seen[v] {
			t.Fatalf("message %d delivered twice", v)
		}
		seen[v] = true
	}
	if len(seen) != producers*perProducer {
		t.Fatalf("expected %d distinct messages, got %d", producers*perProducer, len(seen))
	}
}

func TestMessageBusIdentity(t *testing.T) {
	a := NewMessageBus[ChatMessage]()
	b := NewMessageBus[ChatMessage]()

	if !a.Same(a) {
		t.Fatal("a handle must equal itself")
	}
	if a.Same(b) {
		t.Fatal("distinct buses must not compare equal, even when both are empty")
	}
	if a.Same(nil) {
		t.Fatal("nil is not the same bus")
	}
}

func TestMessageBusWaitWakesOnPush(t *testing.T) {
	bus := NewMessageBus[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		time.Sleep(20 * time.Millisecond)
		bus.Push(1)
	}()

	if err := bus.Wait(ctx); err != nil {
		t.Fatalf("wait should wake on push, got %v", err)
	}
	if _, ok := bus.Pop(); !ok {
		t.Fatal("expected the pushed message")
	}
}

func TestMessageBusWaitHonoursCancellation(t *testing.T) {
	bus := NewMessageBus[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := bus.Wait(ctx); err == nil {
		t.Fatal("wait on a cancelled context should error")
	}
}
