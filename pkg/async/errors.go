package async

import "errors"

var (
	// ErrTimeout indicates AwaitTimeout expired before the future completed.
	ErrTimeout = errors.New("async: await timed out")
)
