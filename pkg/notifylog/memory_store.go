package notifylog

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of the Store interface.
// Suitable for development and testing.
type MemoryStore struct {
	entries map[string][]Entry // userID -> entries in append order
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory log store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]Entry),
	}
}

func (s *MemoryStore) Append(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.UserID] = append(s.entries[entry.UserID], entry)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, userID string, opts ListOptions) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.entries[userID]

	// Newest first.
	filtered := make([]Entry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		e := stored[i]
		if opts.EventType != "" && e.EventType != opts.EventType {
			continue
		}
		if opts.Channel != "" && e.Channel != opts.Channel {
			continue
		}
		if opts.Status != "" && e.Status != opts.Status {
			continue
		}
		filtered = append(filtered, e)
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(filtered) {
			return []Entry{}, nil
		}
		filtered = filtered[opts.Offset:]
	}
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	return filtered, nil
}

// Count returns the number of stored entries for a user. Test helper.
func (s *MemoryStore) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries[userID])
}
