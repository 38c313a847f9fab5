// Package timewindow gates notification sending by per-event-type clock
// windows.
//
// A window is an allowed interval in minutes-of-day. Windows whose start is
// after their end wrap past midnight (22:00-06:00 allows 02:00). An event
// type with no stored window is always allowed.
//
// The gate is deliberately fail-open: a lookup failure from the backing
// source allows the send. Reminders must not be silently dropped because of
// an unrelated infrastructure outage; the failure is logged instead.
package timewindow
