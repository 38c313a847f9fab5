package notifylog

import "context"

// Store persists the audit trail.
type Store interface {
	// Append writes one entry. Entries are write-once; there is no update.
	Append(ctx context.Context, entry Entry) error

	// List returns a user's entries, newest first.
	List(ctx context.Context, userID string, opts ListOptions) ([]Entry, error)
}
