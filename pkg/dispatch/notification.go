package dispatch

// Notification is the message handed to each delivery channel.
type Notification struct {
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	EventType string `json:"event_type"`
	EventID   int64  `json:"event_id"`
}

// Request is one reminder-attempt entering the coordinator. Channels
// optionally narrows the fan-out; when empty, every channel type the user
// has an enabled configuration for is used.
type Request struct {
	UserID    string   `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	EventType string   `json:"event_type"`
	EventID   int64    `json:"event_id"`
	Channels  []string `json:"channels,omitempty"`
}

func (r Request) notification() Notification {
	return Notification{
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		EventType: r.EventType,
		EventID:   r.EventID,
	}
}

// Result is the outcome of one channel attempt. Message carries the
// provider response or error text and feeds the audit trail.
type Result struct {
	Channel string `json:"channel"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Outcome aggregates the per-channel results of one dispatch.
// Success is an OR over the results: at least one delivered channel makes
// the whole dispatch a success.
type Outcome struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results"`
}
