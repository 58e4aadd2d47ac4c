package core

// Sender is the outbound half of a chat transport
type Sender interface {
	// Say sends a plain message to a channel or nick
	Say(target, text string)
	// Act sends an action (/me) to a channel or nick
	Act(target, text string)
}

// Listener receives parsed inbound events from a transport, one at a time
type Listener interface {
	OnMessage(from, to, text string)
	OnPrivateMessage(from, text string)
	OnError(err error)
}

// Transport owns the network connection and protocol framing.
// Listen attaches a listener and performs any handler setup.
type Transport interface {
	Sender
	Listen(l Listener)
}
