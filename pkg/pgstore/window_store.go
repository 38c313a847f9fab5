package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/remindkit/pkg/pg"
	"github.com/dmitrymomot/remindkit/pkg/timewindow"
)

// WindowStore reads and writes per-user time windows. It implements
// timewindow.Source.
type WindowStore struct {
	pool *pgxpool.Pool
}

// NewWindowStore creates a store over an existing connection pool.
func NewWindowStore(pool *pgxpool.Pool) *WindowStore {
	if pool == nil {
		panic("pgstore: pool cannot be nil")
	}
	return &WindowStore{pool: pool}
}

// Window returns the stored window for a user and event type, or nil when
// none is configured.
func (s *WindowStore) Window(ctx context.Context, userID, eventType string) (*timewindow.Window, error) {
	var w timewindow.Window
	err := s.pool.QueryRow(ctx,
		`SELECT event_type, start_minute, end_minute
		 FROM time_windows WHERE user_id = $1 AND event_type = $2`,
		userID, eventType,
	).Scan(&w.EventType, &w.Start, &w.End)
	if pg.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pgstore: window: %w", err)
	}
	return &w, nil
}

// Set stores or replaces the window for a user.
func (s *WindowStore) Set(ctx context.Context, userID string, w timewindow.Window) error {
	if err := w.Validate(); err != nil {
		return err
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO time_windows (user_id, event_type, start_minute, end_minute)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, event_type)
		 DO UPDATE SET start_minute = EXCLUDED.start_minute, end_minute = EXCLUDED.end_minute`,
		userID, w.EventType, w.Start, w.End,
	)
	if err != nil {
		return fmt.Errorf("pgstore: set window: %w", err)
	}
	return nil
}

// Delete removes the window for a user and event type, if present.
func (s *WindowStore) Delete(ctx context.Context, userID, eventType string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM time_windows WHERE user_id = $1 AND event_type = $2`,
		userID, eventType,
	)
	if err != nil {
		return fmt.Errorf("pgstore: delete window: %w", err)
	}
	return nil
}
