package core

import "sync"

// ClientRegistry is the append-only collection of every client that ever
// connected. Ids are list positions, monotonically increasing, never reused;
// entries are never removed, so a disconnected client stays addressable.
type ClientRegistry struct {
	mu   sync.Mutex
	list []*Client
}

// Register assigns the next id to c (and the Anonymous-<id> default nick if
// none is set), appends it, and returns the id.
func (r *ClientRegistry) Register(c *Client) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := len(r.list)
	c.assignIdentity(id)
	r.list = append(r.list, c)
	return id
}

// Get returns the client with the given id, or ErrUnknownClient for an id
// this registry never issued.
func (r *ClientRegistry) Get(id int) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 0 || id >= len(r.list) {
		return nil, ErrUnknownClient
	}
	return r.list[id], nil
}

// Len returns the number of registered clients.
func (r *ClientRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.list)
}

// ChannelRegistry is the ordered collection of all channels. Channels are
// created on demand by /join and never removed; index 0 is the default
// channel and exists before any client connects.
type ChannelRegistry struct {
	mu   sync.Mutex
	list []*Channel
}

// Add appends a channel. Id assignment is the caller's responsibility
// (current registry length at creation time).
func (r *ChannelRegistry) Add(ch *Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, ch)
}

// FindByName returns the first channel with an exactly matching name.
func (r *ChannelRegistry) FindByName(name string) (*Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range r.list {
		if ch.Name == name {
			return ch, true
		}
	}
	return nil, false
}

// Default returns the channel new clients join. It must have been added
// before any client connects.
func (r *ChannelRegistry) Default() *Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list[0]
}

// Remove deletes the channel with the same identity as ch. Unused by the
// dispatcher (channels are never pruned) but kept for completeness.
func (r *ChannelRegistry) Remove(ch *Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.list {
		if existing == ch {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return
		}
	}
}

// Len returns the number of channels.
func (r *ChannelRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.list)
}

// Snapshot returns a copy of the channel list in registration order.
func (r *ChannelRegistry) Snapshot() []*Channel {
	r.mu.Lock()
	defer r.mu.Unlock()

	channels := make([]*Channel, len(r.list))
	copy(channels, r.list)
	return channels
}
