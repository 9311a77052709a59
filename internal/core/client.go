package core

import (
	"fmt"
	"sync"

	"github.com/icsboyx/chathole/internal/term"
)

// Client is a connected user's mutable state: identity, inbound chat queue,
// current channel, and display state. The nick and channel reference are
// guarded by the client's own lock; Inbound and the screen carry their own.
//
// Lock order: a client lock may be held while taking a channel lock, never
// the reverse.
type Client struct {
	ID      int
	Inbound *MessageBus[ChatMessage]

	mu      sync.Mutex
	nick    string
	channel *Channel
	screen  *term.Screen
}

// NewClient constructs an unregistered client pointed at channel. The id and
// default nick are assigned by ClientRegistry.Register.
func NewClient(rows, wrap int, channel *Channel) *Client {
	c := &Client{
		Inbound: NewMessageBus[ChatMessage](),
		channel: channel,
		screen:  term.NewScreen(rows, wrap),
	}
	c.screen.SetPrompt(channel.Name)
	return c
}

// Nick returns the current nickname.
func (c *Client) Nick() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nick
}

// SetNick replaces the nickname.
func (c *Client) SetNick(nick string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nick = nick
}

// Channel returns the channel the client is currently subscribed to.
func (c *Client) Channel() *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel
}

// Screen returns the client's display state.
func (c *Client) Screen() *term.Screen {
	return c.screen
}

// SwitchChannel moves the client to target: unsubscribe the inbound bus from
// the current channel, subscribe it to target, and update the prompt. The
// client is subscribed to exactly one channel at any time.
func (c *Client) SwitchChannel(target *Channel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.channel.Unsubscribe(c.Inbound); err != nil {
		return err
	}
	target.Subscribe(c.Inbound)
	c.channel = target
	c.screen.SetPrompt(target.Name)
	return nil
}

// LeaveChannel detaches the client from its current channel. Called on
// disconnect so dead clients stop counting as channel members.
func (c *Client) LeaveChannel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel.Unsubscribe(c.Inbound)
}

// assignIdentity is called once by the registry under its lock.
func (c *Client) assignIdentity(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ID = id
	if c.nick == "" {
		c.nick = fmt.Sprintf("Anonymous-%d", id)
	}
}
