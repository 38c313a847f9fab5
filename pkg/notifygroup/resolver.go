package notifygroup

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/remindkit/pkg/logger"
)

// Source lists the notification groups configured for a user.
type Source interface {
	Groups(ctx context.Context, userID string) ([]Group, error)
}

// Resolver decides whether an event type's governing group permits sending.
type Resolver struct {
	source Source
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger used for lookup diagnostics.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a resolver backed by the given group source.
func NewResolver(source Source, opts ...ResolverOption) *Resolver {
	if source == nil {
		panic("notifygroup: source cannot be nil")
	}

	r := &Resolver{
		source: source,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Allowed reports whether dispatch may proceed for the event type.
// Ungoverned event types are allowed; an event type claimed by a disabled
// group is blocked regardless of channel-level enablement. Source failures
// fail open, mirroring the time-window gate.
func (r *Resolver) Allowed(ctx context.Context, userID, eventType string) bool {
	groups, err := r.source.Groups(ctx, userID)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "Notification group lookup failed, allowing send",
			logger.UserID(userID),
			logger.EventType(eventType),
			logger.Error(err),
		)
		return true
	}

	id, ok := GroupFor(groups, eventType)
	if !ok {
		return true
	}
	return IsEnabled(groups, id)
}
