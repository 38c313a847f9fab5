package telegram

import "errors"

var (
	// ErrIncompleteConfig indicates a missing bot token or chat id.
	ErrIncompleteConfig = errors.New("telegram configuration incomplete")
)
