package core

import "errors"

var (
	// ErrUnknownClient is returned for a client id the registry never issued.
	ErrUnknownClient = errors.New("unknown client id")
	// ErrNotSubscribed is returned when unsubscribing a bus that is not in
	// the channel's subscriber list.
	ErrNotSubscribed = errors.New("bus not subscribed to channel")
)
