package timewindow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{ err error }

func (f *failingSource) Window(context.Context, string, string) (*Window, error) {
	return nil, f.err
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.April, 12, hour, minute, 0, 0, time.UTC)
}

func TestGate_Allowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		window *Window
		now    time.Time
		want   bool
	}{
		{
			name:   "inside same-day window",
			window: &Window{EventType: "birthday", Start: 8 * 60, End: 22 * 60},
			now:    at(10, 0),
			want:   true,
		},
		{
			name:   "before same-day window",
			window: &Window{EventType: "birthday", Start: 8 * 60, End: 22 * 60},
			now:    at(7, 59),
			want:   false,
		},
		{
			name:   "window edges are inclusive",
			window: &Window{EventType: "birthday", Start: 8 * 60, End: 22 * 60},
			now:    at(22, 0),
			want:   true,
		},
		{
			name:   "wrap window allows early morning",
			window: &Window{EventType: "duty", Start: 22 * 60, End: 6 * 60},
			now:    at(2, 0),
			want:   true,
		},
		{
			name:   "wrap window allows late evening",
			window: &Window{EventType: "duty", Start: 22 * 60, End: 6 * 60},
			now:    at(23, 30),
			want:   true,
		},
		{
			name:   "wrap window blocks midday",
			window: &Window{EventType: "duty", Start: 22 * 60, End: 6 * 60},
			now:    at(12, 0),
			want:   false,
		},
		{
			name:   "no stored window permits sending",
			window: nil,
			now:    at(3, 0),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := NewMemorySource()
			eventType := "event"
			if tt.window != nil {
				eventType = tt.window.EventType
				require.NoError(t, source.Set("user-1", *tt.window))
			}

			gate := NewGate(source)
			assert.Equal(t, tt.want, gate.Allowed(context.Background(), "user-1", eventType, tt.now))
		})
	}
}

func TestGate_Allowed_FailOpenOnLookupError(t *testing.T) {
	t.Parallel()

	gate := NewGate(&failingSource{err: errors.New("connection refused")})

	assert.True(t, gate.Allowed(context.Background(), "user-1", "birthday", at(3, 0)))
}

func TestWindow_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Window{EventType: "e", Start: 0, End: 1439}.Validate())
	assert.ErrorIs(t, Window{EventType: "e", Start: -1, End: 10}.Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, Window{EventType: "e", Start: 10, End: 1440}.Validate(), ErrInvalidWindow)
}

func TestMemorySource(t *testing.T) {
	t.Parallel()

	source := NewMemorySource()
	require.NoError(t, source.Set("user-1", Window{EventType: "birthday", Start: 60, End: 120}))

	w, err := source.Window(context.Background(), "user-1", "birthday")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, 60, w.Start)

	// Unknown event type has no window.
	w, err = source.Window(context.Background(), "user-1", "duty")
	require.NoError(t, err)
	assert.Nil(t, w)

	source.Delete("user-1", "birthday")
	w, err = source.Window(context.Background(), "user-1", "birthday")
	require.NoError(t, err)
	assert.Nil(t, w)
}
