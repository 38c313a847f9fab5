package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remindkit/pkg/notifylog"
)

type stubTimeGate struct{ allowed bool }

func (s stubTimeGate) Allowed(context.Context, string, string, time.Time) bool {
	return s.allowed
}

type stubGroupGate struct{ allowed bool }

func (s stubGroupGate) Allowed(context.Context, string, string) bool {
	return s.allowed
}

type failingConfigSource struct{ err error }

func (f failingConfigSource) Configs(context.Context, string) ([]StoredConfig, error) {
	return nil, f.err
}

type fakeConfig struct{ channel string }

func (c fakeConfig) ChannelType() string { return c.channel }
func (c fakeConfig) Validate() error     { return nil }

type fakeChannel struct {
	name      string
	result    Result
	delay     time.Duration
	decodeErr error
	sends     atomic.Int32
}

func (f *fakeChannel) Type() string { return f.name }

func (f *fakeChannel) DecodeConfig(json.RawMessage) (Config, error) {
	if f.decodeErr != nil {
		return nil, f.decodeErr
	}
	return fakeConfig{channel: f.name}, nil
}

func (f *fakeChannel) Send(ctx context.Context, n Notification, cfg Config) Result {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.sends.Add(1)
	return f.result
}

func enabledConfig(userID, channelType string) StoredConfig {
	return StoredConfig{UserID: userID, Type: channelType, Enabled: true, Payload: json.RawMessage(`{}`)}
}

func newTestCoordinator(t *testing.T, channels []Channel, configs []StoredConfig, opts ...CoordinatorOption) (*Coordinator, *notifylog.MemoryStore) {
	t.Helper()

	source := NewMemoryConfigSource()
	for _, cfg := range configs {
		source.Set(cfg)
	}

	store := notifylog.NewMemoryStore()
	coordinator := NewCoordinator(
		NewRegistry(channels...),
		stubTimeGate{allowed: true},
		stubGroupGate{allowed: true},
		source,
		notifylog.NewRecorder(store),
		opts...,
	)

	return coordinator, store
}

func TestCoordinator_Dispatch_PartialFailureIsOverallSuccess(t *testing.T) {
	t.Parallel()

	ok := &fakeChannel{name: "email", result: Result{Channel: "email", Success: true, Message: "delivered"}}
	bad := &fakeChannel{name: "telegram", result: Result{Channel: "telegram", Message: "bot token rejected"}}

	coordinator, store := newTestCoordinator(t,
		[]Channel{ok, bad},
		[]StoredConfig{enabledConfig("user-1", "email"), enabledConfig("user-1", "telegram")},
	)

	outcome := coordinator.Dispatch(context.Background(), Request{
		UserID:    "user-1",
		Title:     "Birthday",
		Content:   "Alice turns 30 today",
		EventType: "birthday",
		EventID:   7,
	})

	assert.True(t, outcome.Success, "one delivered channel makes the dispatch a success")
	assert.Equal(t, MessageComplete, outcome.Message)
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, "email", outcome.Results[0].Channel)
	assert.Equal(t, "telegram", outcome.Results[1].Channel)

	// One audit entry per attempt, success or not.
	entries, err := store.List(context.Background(), "user-1", notifylog.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, int64(7), e.EventID)
		assert.Equal(t, "birthday", e.EventType)
	}
}

func TestCoordinator_Dispatch_BlockedByTimeWindow(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{name: "email", result: Result{Channel: "email", Success: true}}
	source := NewMemoryConfigSource()
	source.Set(enabledConfig("user-1", "email"))
	store := notifylog.NewMemoryStore()

	coordinator := NewCoordinator(
		NewRegistry(ch),
		stubTimeGate{allowed: false},
		stubGroupGate{allowed: true},
		source,
		notifylog.NewRecorder(store),
	)

	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "birthday"})

	assert.False(t, outcome.Success)
	assert.Equal(t, MessageBlockedByWindow, outcome.Message)
	assert.Empty(t, outcome.Results)
	assert.Zero(t, ch.sends.Load(), "no channel may be invoked when blocked")
	assert.Zero(t, store.Count("user-1"), "no log entry may be written when blocked")
}

func TestCoordinator_Dispatch_BlockedByGroup(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{name: "email", result: Result{Channel: "email", Success: true}}
	source := NewMemoryConfigSource()
	source.Set(enabledConfig("user-1", "email"))
	store := notifylog.NewMemoryStore()

	coordinator := NewCoordinator(
		NewRegistry(ch),
		stubTimeGate{allowed: true},
		stubGroupGate{allowed: false},
		source,
		notifylog.NewRecorder(store),
	)

	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "birthday"})

	assert.False(t, outcome.Success)
	assert.Equal(t, MessageBlockedByGroup, outcome.Message)
	assert.Empty(t, outcome.Results)
	assert.Zero(t, ch.sends.Load())
	assert.Zero(t, store.Count("user-1"))
}

func TestCoordinator_Dispatch_SkipsUnconfiguredAndDisabledChannels(t *testing.T) {
	t.Parallel()

	configured := &fakeChannel{name: "email", result: Result{Channel: "email", Success: true}}
	disabled := &fakeChannel{name: "telegram", result: Result{Channel: "telegram", Success: true}}
	unconfigured := &fakeChannel{name: "wxpusher", result: Result{Channel: "wxpusher", Success: true}}

	disabledCfg := enabledConfig("user-1", "telegram")
	disabledCfg.Enabled = false

	coordinator, store := newTestCoordinator(t,
		[]Channel{configured, disabled, unconfigured},
		[]StoredConfig{enabledConfig("user-1", "email"), disabledCfg},
	)

	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "birthday"})

	// Skipped channels appear nowhere in the outcome.
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, "email", outcome.Results[0].Channel)
	assert.Zero(t, disabled.sends.Load())
	assert.Zero(t, unconfigured.sends.Load())
	assert.Equal(t, 1, store.Count("user-1"))
}

func TestCoordinator_Dispatch_ExplicitChannelSelection(t *testing.T) {
	t.Parallel()

	email := &fakeChannel{name: "email", result: Result{Channel: "email", Success: true}}
	telegram := &fakeChannel{name: "telegram", result: Result{Channel: "telegram", Success: true}}

	coordinator, _ := newTestCoordinator(t,
		[]Channel{email, telegram},
		[]StoredConfig{enabledConfig("user-1", "email"), enabledConfig("user-1", "telegram")},
	)

	outcome := coordinator.Dispatch(context.Background(), Request{
		UserID:    "user-1",
		EventType: "birthday",
		Channels:  []string{"telegram", "no-such-channel"},
	})

	require.Len(t, outcome.Results, 1)
	assert.Equal(t, "telegram", outcome.Results[0].Channel)
	assert.Zero(t, email.sends.Load())
}

func TestCoordinator_Dispatch_InvalidPayloadIsFailedResult(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{name: "email", decodeErr: errors.New("unexpected end of JSON input")}

	coordinator, store := newTestCoordinator(t,
		[]Channel{ch},
		[]StoredConfig{enabledConfig("user-1", "email")},
	)

	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "birthday"})

	assert.False(t, outcome.Success)
	require.Len(t, outcome.Results, 1)
	assert.False(t, outcome.Results[0].Success)
	assert.Contains(t, outcome.Results[0].Message, "invalid channel configuration")
	assert.Zero(t, ch.sends.Load(), "send must not run with an undecodable config")

	// The failed attempt is still audited.
	entries, err := store.List(context.Background(), "user-1", notifylog.ListOptions{Status: notifylog.StatusFailed})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCoordinator_Dispatch_ConfigSourceFailure(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{name: "email", result: Result{Channel: "email", Success: true}}
	coordinator := NewCoordinator(
		NewRegistry(ch),
		stubTimeGate{allowed: true},
		stubGroupGate{allowed: true},
		failingConfigSource{err: errors.New("db down")},
		nil,
	)

	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "birthday"})

	assert.False(t, outcome.Success)
	assert.Equal(t, MessageConfigsFailed, outcome.Message)
	assert.Empty(t, outcome.Results)
}

func TestCoordinator_Dispatch_ParallelKeepsConsiderationOrder(t *testing.T) {
	t.Parallel()

	// The slowest channel is considered first; its result must still come
	// first in the outcome.
	slow := &fakeChannel{name: "wxpusher", delay: 80 * time.Millisecond, result: Result{Channel: "wxpusher", Success: true}}
	mid := &fakeChannel{name: "email", delay: 30 * time.Millisecond, result: Result{Channel: "email", Message: "smtp timeout"}}
	fast := &fakeChannel{name: "telegram", result: Result{Channel: "telegram", Success: true}}

	coordinator, store := newTestCoordinator(t,
		[]Channel{slow, mid, fast},
		[]StoredConfig{
			enabledConfig("user-1", "wxpusher"),
			enabledConfig("user-1", "email"),
			enabledConfig("user-1", "telegram"),
		},
		WithParallel(),
	)

	start := time.Now()
	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "duty"})
	elapsed := time.Since(start)

	require.Len(t, outcome.Results, 3)
	assert.Equal(t, "wxpusher", outcome.Results[0].Channel)
	assert.Equal(t, "email", outcome.Results[1].Channel)
	assert.Equal(t, "telegram", outcome.Results[2].Channel)
	assert.True(t, outcome.Success)

	// Sends overlapped rather than running back to back.
	assert.Less(t, elapsed, 110*time.Millisecond)
	assert.Equal(t, 3, store.Count("user-1"))
}

func TestCoordinator_Dispatch_NoEnabledChannels(t *testing.T) {
	t.Parallel()

	coordinator, store := newTestCoordinator(t, []Channel{&fakeChannel{name: "email"}}, nil)

	outcome := coordinator.Dispatch(context.Background(), Request{UserID: "user-1", EventType: "birthday"})

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Results)
	assert.Zero(t, store.Count("user-1"))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	email := &fakeChannel{name: "email"}
	telegram := &fakeChannel{name: "telegram"}

	registry := NewRegistry(email, telegram)

	assert.Equal(t, []string{"email", "telegram"}, registry.Types())

	ch, ok := registry.Channel("email")
	assert.True(t, ok)
	assert.Same(t, email, ch.(*fakeChannel))

	_, ok = registry.Channel("missing")
	assert.False(t, ok)

	assert.ErrorIs(t, registry.Register(&fakeChannel{name: "email"}), ErrChannelRegistered)
}
