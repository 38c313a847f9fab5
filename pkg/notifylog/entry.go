package notifylog

import (
	"fmt"
	"time"
)

// Status is the recorded outcome of a delivery attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// StatusFor maps a delivery success flag to its recorded status.
func StatusFor(success bool) Status {
	if success {
		return StatusSuccess
	}
	return StatusFailed
}

// Entry is one delivery attempt in the audit trail.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   int64     `json:"event_id"`
	EventType string    `json:"event_type"`
	Channel   string    `json:"channel"`
	Status    Status    `json:"status"`
	Response  string    `json:"response,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Validate checks the fields an audit row cannot do without.
func (e *Entry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrEntryValidation)
	}
	if e.Channel == "" {
		return fmt.Errorf("%w: channel is required", ErrEntryValidation)
	}
	switch e.Status {
	case StatusSuccess, StatusFailed:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrEntryValidation, e.Status)
	}
	return nil
}

// ListOptions filters and paginates the audit read path.
type ListOptions struct {
	EventType string // If set, only entries for this event type
	Channel   string // If set, only entries for this channel
	Status    Status // If set, only entries with this status
	Limit     int    // Maximum entries to return (0 = no limit)
	Offset    int    // Entries to skip for pagination
}
