package timewindow

import "errors"

var (
	// ErrInvalidWindow indicates a window edge outside 0..1439 minutes.
	ErrInvalidWindow = errors.New("invalid time window")
)
