package timewindow

import (
	"context"
	"sync"
)

// MemorySource is an in-memory implementation of the Source interface.
// Suitable for development and testing.
type MemorySource struct {
	windows map[string]Window // userID/eventType -> window
	mu      sync.RWMutex
}

// NewMemorySource creates an empty in-memory window source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		windows: make(map[string]Window),
	}
}

// Set stores or replaces the window for a user and event type.
func (s *MemorySource) Set(userID string, w Window) error {
	if err := w.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[userID+"/"+w.EventType] = w
	return nil
}

// Delete removes the window for a user and event type, if present.
func (s *MemorySource) Delete(userID, eventType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, userID+"/"+eventType)
}

func (s *MemorySource) Window(ctx context.Context, userID, eventType string) (*Window, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.windows[userID+"/"+eventType]
	if !ok {
		return nil, nil
	}
	return &w, nil
}
