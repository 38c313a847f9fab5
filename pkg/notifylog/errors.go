package notifylog

import "errors"

var (
	// ErrEntryValidation indicates an entry is missing a required field.
	ErrEntryValidation = errors.New("log entry validation failed")
)
