package dispatch

import (
	"fmt"
	"sync"
)

// Registry holds the available delivery channels keyed by channel type.
// Registration order is preserved and defines the order channels are
// considered during a dispatch.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]Channel
	order    []string
}

// NewRegistry creates a registry, panicking on duplicate channel types so
// wiring mistakes surface at startup rather than at dispatch time.
func NewRegistry(channels ...Channel) *Registry {
	r := &Registry{
		channels: make(map[string]Channel, len(channels)),
	}

	for _, ch := range channels {
		if err := r.Register(ch); err != nil {
			panic(err)
		}
	}

	return r
}

// Register adds a channel. Registering the same type twice is an error.
func (r *Registry) Register(ch Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := ch.Type()
	if _, exists := r.channels[name]; exists {
		return fmt.Errorf("%w: %s", ErrChannelRegistered, name)
	}

	r.channels[name] = ch
	r.order = append(r.order, name)
	return nil
}

// Channel returns the channel registered under the given type.
func (r *Registry) Channel(name string) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.channels[name]
	return ch, ok
}

// Types returns the registered channel types in registration order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, len(r.order))
	copy(types, r.order)
	return types
}
