package notifylog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the audit trail in a notification_logs table.
//
// Expected schema:
//
//	CREATE TABLE notification_logs (
//	    id         TEXT PRIMARY KEY,
//	    user_id    TEXT NOT NULL,
//	    event_id   BIGINT NOT NULL,
//	    event_type TEXT NOT NULL,
//	    channel    TEXT NOT NULL,
//	    status     TEXT NOT NULL,
//	    response   TEXT NOT NULL DEFAULT '',
//	    sent_at    TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("notifylog: pool cannot be nil")
	}
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO notification_logs (id, user_id, event_id, event_type, channel, status, response, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.EventID, entry.EventType, entry.Channel, entry.Status, entry.Response, entry.SentAt,
	)
	if err != nil {
		return fmt.Errorf("notifylog: append: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, userID string, opts ListOptions) ([]Entry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, event_id, event_type, channel, status, response, sent_at
		FROM notification_logs WHERE user_id = $1`)

	args := []any{userID}
	appendFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		fmt.Fprintf(&sb, " AND %s = $%d", column, len(args))
	}
	appendFilter("event_type", opts.EventType)
	appendFilter("channel", opts.Channel)
	appendFilter("status", string(opts.Status))

	sb.WriteString(" ORDER BY sent_at DESC")
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("notifylog: list: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventID, &e.EventType, &e.Channel, &e.Status, &e.Response, &e.SentAt); err != nil {
			return nil, fmt.Errorf("notifylog: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("notifylog: list: %w", err)
	}

	return entries, nil
}
