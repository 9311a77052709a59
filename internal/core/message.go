package core

// ChatMessage is one line of chat as delivered to a recipient's inbound bus.
// It is a value: every recipient gets its own copy.
type ChatMessage struct {
	Nick    string
	Payload string
}

// CmdMessage is a slash command queued on the engine's service bus. Payload
// is the raw command line including the leading slash.
type CmdMessage struct {
	ClientID int
	Payload  string
}
