package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/remindkit/pkg/dispatch"
)

// ConfigStore reads and writes per-user channel configurations. It
// implements dispatch.ConfigSource.
type ConfigStore struct {
	pool *pgxpool.Pool
}

// NewConfigStore creates a store over an existing connection pool.
func NewConfigStore(pool *pgxpool.Pool) *ConfigStore {
	if pool == nil {
		panic("pgstore: pool cannot be nil")
	}
	return &ConfigStore{pool: pool}
}

// Configs returns every stored channel configuration for the user,
// enabled or not. The coordinator filters on the Enabled flag.
func (s *ConfigStore) Configs(ctx context.Context, userID string) ([]dispatch.StoredConfig, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, channel, enabled, payload
		 FROM channel_configs WHERE user_id = $1 ORDER BY channel`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("pgstore: configs: %w", err)
	}
	defer rows.Close()

	configs := []dispatch.StoredConfig{}
	for rows.Next() {
		var c dispatch.StoredConfig
		if err := rows.Scan(&c.UserID, &c.Type, &c.Enabled, &c.Payload); err != nil {
			return nil, fmt.Errorf("pgstore: scan config: %w", err)
		}
		configs = append(configs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: configs: %w", err)
	}

	return configs, nil
}

// Set stores or replaces the configuration for a user and channel.
func (s *ConfigStore) Set(ctx context.Context, cfg dispatch.StoredConfig) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO channel_configs (user_id, channel, enabled, payload)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, channel)
		 DO UPDATE SET enabled = EXCLUDED.enabled, payload = EXCLUDED.payload`,
		cfg.UserID, cfg.Type, cfg.Enabled, cfg.Payload,
	)
	if err != nil {
		return fmt.Errorf("pgstore: set config: %w", err)
	}
	return nil
}

// SetEnabled toggles a stored channel configuration on or off.
func (s *ConfigStore) SetEnabled(ctx context.Context, userID, channel string, enabled bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE channel_configs SET enabled = $3 WHERE user_id = $1 AND channel = $2`,
		userID, channel, enabled,
	)
	if err != nil {
		return fmt.Errorf("pgstore: toggle config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: channel %s", ErrNotFound, channel)
	}
	return nil
}
