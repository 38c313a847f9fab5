package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/remindkit/pkg/async"
	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/notifylog"
)

// Short-circuit and completion messages surfaced in the Outcome.
const (
	MessageBlockedByWindow = "blocked by time window"
	MessageBlockedByGroup  = "blocked by group"
	MessageConfigsFailed   = "failed to load channel configurations"
	MessageComplete        = "dispatch complete"
)

// TimeGate permits or blocks sending for an event type at an instant.
// Satisfied by *timewindow.Gate.
type TimeGate interface {
	Allowed(ctx context.Context, userID, eventType string, now time.Time) bool
}

// GroupGate permits or blocks sending based on the event type's
// notification group. Satisfied by *notifygroup.Resolver.
type GroupGate interface {
	Allowed(ctx context.Context, userID, eventType string) bool
}

// Recorder appends one audit entry per channel attempt, best effort.
// Satisfied by *notifylog.Recorder.
type Recorder interface {
	Record(ctx context.Context, entry notifylog.Entry)
}

// Coordinator orchestrates one reminder-attempt across the gates, the
// registry, and the audit trail.
type Coordinator struct {
	registry *Registry
	gate     TimeGate
	groups   GroupGate
	configs  ConfigSource
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
	parallel bool
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithCoordinatorLogger sets the logger for dispatch diagnostics.
func WithCoordinatorLogger(l *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides the time source used for the window check.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithParallel makes channel sends within one dispatch run concurrently.
// Results keep the order the channels were considered in, and a failing
// channel never cancels its siblings.
func WithParallel() CoordinatorOption {
	return func(c *Coordinator) {
		c.parallel = true
	}
}

// NewCoordinator wires a coordinator. Registry, gates, and config source
// are required; a nil recorder disables audit logging (tests only).
func NewCoordinator(registry *Registry, gate TimeGate, groups GroupGate, configs ConfigSource, recorder Recorder, opts ...CoordinatorOption) *Coordinator {
	switch {
	case registry == nil:
		panic("dispatch: registry cannot be nil")
	case gate == nil:
		panic("dispatch: time gate cannot be nil")
	case groups == nil:
		panic("dispatch: group gate cannot be nil")
	case configs == nil:
		panic("dispatch: config source cannot be nil")
	}

	if recorder == nil {
		recorder = noopRecorder{}
	}

	c := &Coordinator{
		registry: registry,
		gate:     gate,
		groups:   groups,
		configs:  configs,
		recorder: recorder,
		logger:   slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Dispatch runs one reminder-attempt: time-window gate, group gate, then
// one send and one audit entry per resolved channel. Channels without an
// enabled configuration, and names absent from the registry, are skipped
// silently.
func (c *Coordinator) Dispatch(ctx context.Context, req Request) Outcome {
	if !c.gate.Allowed(ctx, req.UserID, req.EventType, c.now()) {
		c.logBlocked(ctx, req, MessageBlockedByWindow)
		return Outcome{Message: MessageBlockedByWindow, Results: []Result{}}
	}

	if !c.groups.Allowed(ctx, req.UserID, req.EventType) {
		c.logBlocked(ctx, req, MessageBlockedByGroup)
		return Outcome{Message: MessageBlockedByGroup, Results: []Result{}}
	}

	stored, err := c.configs.Configs(ctx, req.UserID)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelError, "Failed to load channel configurations",
			logger.UserID(req.UserID),
			logger.EventType(req.EventType),
			logger.Error(err),
		)
		return Outcome{Message: MessageConfigsFailed, Results: []Result{}}
	}

	enabled := make(map[string]StoredConfig, len(stored))
	for _, sc := range stored {
		if sc.Enabled {
			enabled[sc.Type] = sc
		}
	}

	requested := req.Channels
	if len(requested) == 0 {
		requested = c.registry.Types()
	}

	attempts := make([]attempt, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, name := range requested {
		if seen[name] {
			continue
		}
		seen[name] = true

		ch, ok := c.registry.Channel(name)
		if !ok {
			continue
		}
		sc, ok := enabled[name]
		if !ok {
			continue
		}
		attempts = append(attempts, attempt{channel: ch, stored: sc})
	}

	results := c.run(ctx, req, attempts)

	outcome := Outcome{Message: MessageComplete, Results: results}
	for _, r := range results {
		if r.Success {
			outcome.Success = true
			break
		}
	}
	return outcome
}

type attempt struct {
	channel Channel
	stored  StoredConfig
}

func (c *Coordinator) run(ctx context.Context, req Request, attempts []attempt) []Result {
	if !c.parallel || len(attempts) < 2 {
		results := make([]Result, 0, len(attempts))
		for _, a := range attempts {
			results = append(results, c.attempt(ctx, req, a))
		}
		return results
	}

	futures := make([]*async.Future[Result], len(attempts))
	for i, a := range attempts {
		futures[i] = async.Go(ctx, a, func(ctx context.Context, a attempt) (Result, error) {
			return c.attempt(ctx, req, a), nil
		})
	}

	// Futures never carry errors here; failures are ordinary Results.
	results, _ := async.All(futures...)
	return results
}

// attempt decodes the stored configuration, invokes the channel, and
// records exactly one audit entry regardless of outcome.
func (c *Coordinator) attempt(ctx context.Context, req Request, a attempt) Result {
	var result Result

	cfg, err := a.channel.DecodeConfig(a.stored.Payload)
	if err != nil {
		result = Result{
			Channel: a.channel.Type(),
			Message: fmt.Sprintf("%s: %s", ErrInvalidConfig, err),
		}
	} else {
		result = a.channel.Send(ctx, req.notification(), cfg)
	}

	c.recorder.Record(ctx, notifylog.Entry{
		UserID:    req.UserID,
		EventID:   req.EventID,
		EventType: req.EventType,
		Channel:   a.channel.Type(),
		Status:    notifylog.StatusFor(result.Success),
		Response:  result.Message,
	})

	return result
}

func (c *Coordinator) logBlocked(ctx context.Context, req Request, reason string) {
	c.logger.LogAttrs(ctx, slog.LevelInfo, "Dispatch blocked",
		logger.UserID(req.UserID),
		logger.EventType(req.EventType),
		slog.String("reason", reason),
	)
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, notifylog.Entry) {}
