package pgstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/remindkit/pkg/notifygroup"
)

// GroupStore reads and writes notification groups. It implements
// notifygroup.Source.
type GroupStore struct {
	pool *pgxpool.Pool
}

// NewGroupStore creates a store over an existing connection pool.
func NewGroupStore(pool *pgxpool.Pool) *GroupStore {
	if pool == nil {
		panic("pgstore: pool cannot be nil")
	}
	return &GroupStore{pool: pool}
}

// Groups returns the user's groups in creation order. Creation order is what
// makes first-match resolution deterministic when event-type sets overlap.
func (s *GroupStore) Groups(ctx context.Context, userID string) ([]notifygroup.Group, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, event_types, enabled
		 FROM notification_groups WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("pgstore: groups: %w", err)
	}
	defer rows.Close()

	groups := []notifygroup.Group{}
	for rows.Next() {
		var g notifygroup.Group
		var rawTypes []byte
		if err := rows.Scan(&g.ID, &g.Name, &rawTypes, &g.Enabled); err != nil {
			return nil, fmt.Errorf("pgstore: scan group: %w", err)
		}
		g.EventTypes = notifygroup.ParseEventTypes(rawTypes)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: groups: %w", err)
	}

	return groups, nil
}

// Create inserts a group and returns its assigned id.
func (s *GroupStore) Create(ctx context.Context, userID, name string, eventTypes notifygroup.EventTypeSet, enabled bool) (int64, error) {
	rawTypes, err := json.Marshal(eventTypes)
	if err != nil {
		return 0, fmt.Errorf("pgstore: encode event types: %w", err)
	}

	var id int64
	err = s.pool.QueryRow(ctx,
		`INSERT INTO notification_groups (user_id, name, event_types, enabled)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, name, rawTypes, enabled,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("pgstore: create group: %w", err)
	}
	return id, nil
}

// SetEnabled toggles a group on or off.
func (s *GroupStore) SetEnabled(ctx context.Context, userID string, id int64, enabled bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE notification_groups SET enabled = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, enabled,
	)
	if err != nil {
		return fmt.Errorf("pgstore: toggle group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: group %d", ErrNotFound, id)
	}
	return nil
}
