package timewindow

import (
	"fmt"
	"time"
)

// minutesPerDay bounds valid window edges (0..1439).
const minutesPerDay = 24 * 60

// Window is an allowed sending interval for one event type, expressed in
// minutes since midnight. Start > End means the window wraps past midnight.
type Window struct {
	EventType string `json:"event_type"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// Validate checks that both edges are valid minutes of a day.
func (w Window) Validate() error {
	if w.Start < 0 || w.Start >= minutesPerDay {
		return fmt.Errorf("%w: start %d out of range", ErrInvalidWindow, w.Start)
	}
	if w.End < 0 || w.End >= minutesPerDay {
		return fmt.Errorf("%w: end %d out of range", ErrInvalidWindow, w.End)
	}
	return nil
}

// Contains reports whether the given minute-of-day falls inside the window.
func (w Window) Contains(minute int) bool {
	if w.Start <= w.End {
		return minute >= w.Start && minute <= w.End
	}
	// Wrap past midnight: evening-or-morning.
	return minute >= w.Start || minute <= w.End
}

// MinuteOfDay converts a wall-clock instant to minutes since midnight in
// its own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
