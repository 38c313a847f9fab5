package dispatch

import (
	"context"
	"sync"
)

// MemoryConfigSource is an in-memory implementation of ConfigSource.
// Suitable for development and testing.
type MemoryConfigSource struct {
	configs map[string][]StoredConfig // userID -> configs in insertion order
	mu      sync.RWMutex
}

// NewMemoryConfigSource creates an empty in-memory config source.
func NewMemoryConfigSource() *MemoryConfigSource {
	return &MemoryConfigSource{
		configs: make(map[string][]StoredConfig),
	}
}

// Set stores or replaces the configuration for a user and channel type.
func (s *MemoryConfigSource) Set(cfg StoredConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.configs[cfg.UserID] {
		if existing.Type == cfg.Type {
			s.configs[cfg.UserID][i] = cfg
			return
		}
	}
	s.configs[cfg.UserID] = append(s.configs[cfg.UserID], cfg)
}

func (s *MemoryConfigSource) Configs(ctx context.Context, userID string) ([]StoredConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	configs := make([]StoredConfig, len(s.configs[userID]))
	copy(configs, s.configs[userID])
	return configs, nil
}
