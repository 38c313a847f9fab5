package notifygroup

import (
	"context"
	"sync"
)

// MemorySource is an in-memory implementation of the Source interface.
// Suitable for development and testing.
type MemorySource struct {
	groups map[string][]Group // userID -> groups in creation order
	mu     sync.RWMutex
}

// NewMemorySource creates an empty in-memory group source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		groups: make(map[string][]Group),
	}
}

// Add appends a group for the user, replacing any existing group with the
// same id.
func (s *MemorySource) Add(userID string, g Group) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.groups[userID] {
		if existing.ID == g.ID {
			s.groups[userID][i] = g
			return
		}
	}
	s.groups[userID] = append(s.groups[userID], g)
}

func (s *MemorySource) Groups(ctx context.Context, userID string) ([]Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]Group, len(s.groups[userID]))
	copy(groups, s.groups[userID])
	return groups, nil
}
