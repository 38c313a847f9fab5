package notifygroup

import (
	"encoding/json"
	"slices"
)

// EventTypeSet is the set of event types a group governs.
type EventTypeSet []string

// Contains reports whether the set includes the event type.
func (s EventTypeSet) Contains(eventType string) bool {
	return slices.Contains(s, eventType)
}

// ParseEventTypes decodes a stored JSON array of event types. A malformed
// payload yields an empty set, so a broken row stops matching instead of
// failing the whole group lookup.
func ParseEventTypes(raw []byte) EventTypeSet {
	var s EventTypeSet
	if err := json.Unmarshal(raw, &s); err != nil {
		return EventTypeSet{}
	}
	return s
}

// Group is a named, toggleable bundle of event types.
type Group struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	EventTypes EventTypeSet `json:"event_types"`
	Enabled    bool         `json:"enabled"`
}

// GroupFor returns the id of the first group whose event-type set contains
// the given event type. The second return is false when no group claims it.
func GroupFor(groups []Group, eventType string) (int64, bool) {
	for _, g := range groups {
		if g.EventTypes.Contains(eventType) {
			return g.ID, true
		}
	}
	return 0, false
}

// IsEnabled reports whether the group with the given id is enabled.
// An unknown id is not enabled.
func IsEnabled(groups []Group, id int64) bool {
	for _, g := range groups {
		if g.ID == id {
			return g.Enabled
		}
	}
	return false
}
