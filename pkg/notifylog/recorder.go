package notifylog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/remindkit/pkg/logger"
)

// Recorder appends audit entries with best-effort semantics: a failed write
// is logged and dropped so it can never unwind the delivery outcome it
// describes.
type Recorder struct {
	store  Store
	logger *slog.Logger
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRecorderLogger sets the logger used when a write fails.
func WithRecorderLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRecorder creates a best-effort recorder over the given store.
func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	if store == nil {
		panic("notifylog: store cannot be nil")
	}

	r := &Recorder{
		store:  store,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Record stamps and appends one entry. Missing IDs and timestamps are
// filled in; validation and storage failures are logged, not returned.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}

	if err := entry.Validate(); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "Dropping invalid delivery log entry",
			logger.UserID(entry.UserID),
			logger.Channel(entry.Channel),
			logger.Error(err),
		)
		return
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to record delivery attempt",
			logger.UserID(entry.UserID),
			logger.Channel(entry.Channel),
			logger.EventType(entry.EventType),
			logger.Error(err),
		)
	}
}
