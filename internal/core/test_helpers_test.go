package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func mustReply(t *testing.T, bus *MessageBus[ChatMessage]) ChatMessage {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msg, ok := bus.Pop(); ok {
			return msg
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected a message on the bus")
	return ChatMessage{}
}

func mustReplies(t *testing.T, bus *MessageBus[ChatMessage], n int) []ChatMessage {
	t.Helper()

	msgs := make([]ChatMessage, 0, n)
	for range n {
		msgs = append(msgs, mustReply(t, bus))
	}
	return msgs
}
