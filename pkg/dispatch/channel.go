package dispatch

import (
	"context"
	"encoding/json"
)

// Config is one variant of the per-user channel configuration union.
// Each channel package owns exactly one implementation and validates its
// own completeness.
type Config interface {
	// ChannelType names the channel the configuration belongs to.
	ChannelType() string

	// Validate checks configuration completeness. An incomplete
	// configuration is a per-channel failure, never a fatal error.
	Validate() error
}

// Channel is a delivery mechanism polymorphic over a single capability:
// attempt to deliver a notification given per-user configuration.
//
// Send never returns an error. Delivery problems - incomplete
// configuration, provider rejections, timeouts - are all reported as a
// failed Result with a descriptive message, keeping channels isolated from
// one another.
type Channel interface {
	// Type is the channel's registry key, e.g. "email".
	Type() string

	// DecodeConfig turns a stored payload into this channel's typed
	// configuration. This is the union's decode boundary; payloads are
	// validated here rather than at send time.
	DecodeConfig(payload json.RawMessage) (Config, error)

	// Send attempts one delivery. Implementations own their bounded
	// timeouts.
	Send(ctx context.Context, n Notification, cfg Config) Result
}

// StoredConfig is the persisted envelope around one channel configuration:
// the union tag, the enable switch, and the raw variant payload.
type StoredConfig struct {
	UserID  string          `json:"user_id"`
	Type    string          `json:"type"`
	Enabled bool            `json:"enabled"`
	Payload json.RawMessage `json:"payload"`
}

// ConfigSource reads a user's stored channel configurations.
// Implementations return every stored row; the coordinator filters on the
// Enabled flag.
type ConfigSource interface {
	Configs(ctx context.Context, userID string) ([]StoredConfig, error)
}
