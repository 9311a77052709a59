package core

import "testing"

func TestBroadcastSkipsSender(t *testing.T) {
	engine := NewEngine()
	alice := engine.Connect(20, 60)
	bob := engine.Connect(20, 60)

	msg := ChatMessage{Nick: alice.Nick(), Payload: "hello"}
	alice.Channel().Broadcast(msg, alice.Inbound)

	got, ok := bob.Inbound.Pop()
	if !ok || got != msg {
		t.Fatalf("expected bob to receive %+v, got %+v ok=%v", msg, got, ok)
	}
	if !alice.Inbound.IsEmpty() {
		t.Fatal("sender must not receive its own chat")
	}
}

func TestBroadcastStaysWithinChannel(t *testing.T) {
	engine := NewEngine()
	alice := engine.Connect(20, 60)
	bob := engine.Connect(20, 60)

	general := NewChannel(engine.Channels.Len(), "general")
	engine.Channels.Add(general)
	if err := alice.SwitchChannel(general); err != nil {
		t.Fatalf("switch channel: %v", err)
	}

	general.Broadcast(ChatMessage{Nick: alice.Nick(), Payload: "general only"}, alice.Inbound)

	if !bob.Inbound.IsEmpty() {
		t.Fatal("subscriber of another channel must not receive the message")
	}
}

func TestUnsubscribeByIdentity(t *testing.T) {
	ch := NewChannel(0, "x")
	a := NewMessageBus[ChatMessage]()
	b := NewMessageBus[ChatMessage]()
	ch.Subscribe(a)
	ch.Subscribe(b)

	if err := ch.Unsubscribe(a); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if err := ch.Unsubscribe(a); err == nil {
		t.Fatal("second unsubscribe of the same bus should fail")
	}
	if ch.NumSubscribers() != 1 {
		t.Fatalf("expected 1 subscriber left, got %d", ch.NumSubscribers())
	}

	ch.Broadcast(ChatMessage{Nick: "n", Payload: "p"}, nil)
	if !a.IsEmpty() {
		t.Fatal("unsubscribed bus must not receive broadcasts")
	}
	if b.IsEmpty() {
		t.Fatal("remaining subscriber should receive the broadcast")
	}
}

func TestSwitchChannelMovesSubscription(t *testing.T) {
	engine := NewEngine()
	alice := engine.Connect(20, 60)
	def := engine.Channels.Default()

	general := NewChannel(engine.Channels.Len(), "general")
	engine.Channels.Add(general)

	if err := alice.SwitchChannel(general); err != nil {
		t.Fatalf("switch channel: %v", err)
	}
	if def.NumSubscribers() != 0 {
		t.Fatalf("expected old channel empty, got %d subscribers", def.NumSubscribers())
	}
	if general.NumSubscribers() != 1 {
		t.Fatalf("expected new channel to have 1 subscriber, got %d", general.NumSubscribers())
	}
	if alice.Channel() != general {
		t.Fatal("client should point at the new channel")
	}
	if got := alice.Screen().Prompt(); got != "GENERAL: " {
		t.Fatalf("prompt should follow the channel, got %q", got)
	}
}
