package timewindow

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/remindkit/pkg/logger"
)

// Source looks up the stored time window for a user and event type.
// A nil window with a nil error means no window is configured.
type Source interface {
	Window(ctx context.Context, userID, eventType string) (*Window, error)
}

// Gate decides whether sending is currently permitted for an event type.
type Gate struct {
	source Source
	logger *slog.Logger
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithGateLogger sets the logger used for lookup diagnostics.
func WithGateLogger(l *slog.Logger) GateOption {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGate creates a gate backed by the given window source.
func NewGate(source Source, opts ...GateOption) *Gate {
	if source == nil {
		panic("timewindow: source cannot be nil")
	}

	g := &Gate{
		source: source,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Allowed reports whether a notification for the event type may be sent at
// the given instant. No configured window allows the send, and so does a
// lookup failure: blocking reminders on an infrastructure error would drop
// them silently, which is worse than sending outside a quiet-hours window.
func (g *Gate) Allowed(ctx context.Context, userID, eventType string, now time.Time) bool {
	w, err := g.source.Window(ctx, userID, eventType)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "Time window lookup failed, allowing send",
			logger.UserID(userID),
			logger.EventType(eventType),
			logger.Error(err),
		)
		return true
	}
	if w == nil {
		return true
	}

	return w.Contains(MinuteOfDay(now))
}
