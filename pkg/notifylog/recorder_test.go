package notifylog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f *failingStore) Append(context.Context, Entry) error { return f.err }

func (f *failingStore) List(context.Context, string, ListOptions) ([]Entry, error) {
	return nil, f.err
}

func TestRecorder_Record(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	recorder := NewRecorder(store)

	recorder.Record(context.Background(), Entry{
		UserID:    "user-1",
		EventID:   42,
		EventType: "birthday",
		Channel:   "email",
		Status:    StatusSuccess,
		Response:  `{"messageId":"abc"}`,
	})

	entries, err := store.List(context.Background(), "user-1", ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// ID and timestamp are stamped on the way in.
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].SentAt.IsZero())
	assert.Equal(t, StatusSuccess, entries[0].Status)
}

func TestRecorder_Record_SwallowsStoreFailure(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(&failingStore{err: errors.New("disk full")})

	// Must not panic or surface the error.
	recorder.Record(context.Background(), Entry{
		UserID:  "user-1",
		Channel: "email",
		Status:  StatusFailed,
	})
}

func TestRecorder_Record_DropsInvalidEntry(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	recorder := NewRecorder(store)

	recorder.Record(context.Background(), Entry{Channel: "email", Status: StatusSuccess})

	assert.Zero(t, store.Count(""))
}

func TestMemoryStore_List(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	base := time.Date(2025, time.April, 12, 10, 0, 0, 0, time.UTC)

	seed := []Entry{
		{ID: "1", UserID: "user-1", EventType: "birthday", Channel: "email", Status: StatusSuccess, SentAt: base},
		{ID: "2", UserID: "user-1", EventType: "birthday", Channel: "telegram", Status: StatusFailed, SentAt: base.Add(time.Minute)},
		{ID: "3", UserID: "user-1", EventType: "duty", Channel: "email", Status: StatusSuccess, SentAt: base.Add(2 * time.Minute)},
		{ID: "4", UserID: "user-2", EventType: "duty", Channel: "email", Status: StatusSuccess, SentAt: base},
	}
	for _, e := range seed {
		require.NoError(t, store.Append(context.Background(), e))
	}

	tests := []struct {
		name    string
		opts    ListOptions
		wantIDs []string
	}{
		{name: "all newest first", opts: ListOptions{}, wantIDs: []string{"3", "2", "1"}},
		{name: "by event type", opts: ListOptions{EventType: "birthday"}, wantIDs: []string{"2", "1"}},
		{name: "by channel", opts: ListOptions{Channel: "email"}, wantIDs: []string{"3", "1"}},
		{name: "by status", opts: ListOptions{Status: StatusFailed}, wantIDs: []string{"2"}},
		{name: "limit and offset", opts: ListOptions{Limit: 1, Offset: 1}, wantIDs: []string{"2"}},
		{name: "offset past end", opts: ListOptions{Offset: 10}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries, err := store.List(context.Background(), "user-1", tt.opts)
			require.NoError(t, err)

			ids := make([]string, len(entries))
			for i, e := range entries {
				ids[i] = e.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	valid := Entry{UserID: "u", Channel: "email", Status: StatusSuccess}
	assert.NoError(t, valid.Validate())

	missingUser := valid
	missingUser.UserID = ""
	assert.ErrorIs(t, missingUser.Validate(), ErrEntryValidation)

	missingChannel := valid
	missingChannel.Channel = ""
	assert.ErrorIs(t, missingChannel.Validate(), ErrEntryValidation)

	badStatus := valid
	badStatus.Status = "maybe"
	assert.ErrorIs(t, badStatus.Validate(), ErrEntryValidation)
}
