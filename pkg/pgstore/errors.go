package pgstore

import "errors"

var (
	// ErrNotFound indicates the targeted row does not exist.
	ErrNotFound = errors.New("pgstore: not found")
)
