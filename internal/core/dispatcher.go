package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/icsboyx/chathole/internal/term"
)

// commandUsage is the fixed /help output, in fixed order.
var commandUsage = []string{
	"/nick <nick>",
	"/join <channel>",
	"/list",
	"/help",
}

// Dispatcher is the single consumer of the engine's service bus and the only
// goroutine that mutates registry membership. Commands are processed
// strictly in arrival order; replies go to the issuing client's inbound bus,
// never to a socket.
type Dispatcher struct {
	engine *Engine
	log    *zerolog.Logger
}

// NewDispatcher builds a dispatcher over the shared engine.
func NewDispatcher(engine *Engine, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{engine: engine, log: logger}
}

// Run drains the service bus until ctx is cancelled, blocking on the bus's
// notify channel when it is empty. A failing command is logged and skipped;
// it never stops the loop.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		msg, ok := d.engine.ServiceBus.Pop()
		if !ok {
			if err := d.engine.ServiceBus.Wait(ctx); err != nil {
				return err
			}
			continue
		}
		if err := d.handle(msg); err != nil {
			d.log.Warn().
				Err(err).
				Int("client_id", msg.ClientID).
				Str("command", msg.Payload).
				Msg("command skipped")
		}
	}
}

func (d *Dispatcher) handle(msg CmdMessage) error {
	client, err := d.engine.Clients.Get(msg.ClientID)
	if err != nil {
		return err
	}

	// "first token, second token, rest": a third field keeps its whitespace.
	fields := strings.SplitN(strings.TrimPrefix(msg.Payload, "/"), " ", 3)

	switch strings.ToLower(fields[0]) {
	case "nick":
		if len(fields) < 2 {
			reply(client, "Command Error: /nick <nick> is required")
			return nil
		}
		client.SetNick(fields[1])
		reply(client, "Command Success: Nickname changed to "+fields[1])

	case "join":
		if len(fields) < 2 {
			reply(client, "Command Error: /join <channel> is required")
			return nil
		}
		name := fields[1]
		target, found := d.engine.Channels.FindByName(name)
		if !found {
			target = NewChannel(d.engine.Channels.Len(), name)
			d.engine.Channels.Add(target)
			d.log.Info().Str("channel", name).Int("channel_id", target.ID).Msg("channel created")
		}
		if err := client.SwitchChannel(target); err != nil {
			return err
		}
		reply(client, "Command Success: Joined "+name)

	case "list":
		for _, ch := range d.engine.Channels.Snapshot() {
			reply(client, fmt.Sprintf("channel: %s users: %d", ch.Name, ch.NumSubscribers()))
		}

	case "help":
		for _, usage := range commandUsage {
			reply(client, usage)
		}

	default:
		reply(client, fmt.Sprintf("Command Error: %s is not a valid command", fields[0]))
	}
	return nil
}

func reply(c *Client, text string) {
	c.Inbound.Push(ChatMessage{Nick: term.ServerNick, Payload: text})
}
