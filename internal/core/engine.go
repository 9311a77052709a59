package core

// DefaultChannelName is the channel every new client lands in.
const DefaultChannelName = "broadcast"

// Engine is the aggregate root shared by every session and the dispatcher:
// both registries plus the single service bus that carries slash commands.
// It is created once per process.
type Engine struct {
	Clients    *ClientRegistry
	Channels   *ChannelRegistry
	ServiceBus *MessageBus[CmdMessage]
}

// NewEngine constructs the engine with the default channel at index 0.
func NewEngine() *Engine {
	e := &Engine{
		Clients:    &ClientRegistry{},
		Channels:   &ChannelRegistry{},
		ServiceBus: NewMessageBus[CmdMessage](),
	}
	e.Channels.Add(NewChannel(0, DefaultChannelName))
	return e
}

// Connect registers a new client on the default channel and subscribes its
// inbound bus to it. Called by the accept loop, once per connection.
func (e *Engine) Connect(rows, wrap int) *Client {
	def := e.Channels.Default()
	c := NewClient(rows, wrap, def)
	e.Clients.Register(c)
	def.Subscribe(c.Inbound)
	return c
}
