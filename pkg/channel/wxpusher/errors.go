package wxpusher

import "errors"

var (
	// ErrIncompleteConfig indicates a missing app token or message target.
	ErrIncompleteConfig = errors.New("wxpusher configuration incomplete")
)
