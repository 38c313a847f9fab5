package dispatch

import "errors"

var (
	// ErrChannelRegistered indicates a duplicate channel type registration.
	ErrChannelRegistered = errors.New("channel type already registered")

	// ErrInvalidConfig indicates a stored channel payload could not be
	// decoded into the channel's typed configuration.
	ErrInvalidConfig = errors.New("invalid channel configuration")
)
