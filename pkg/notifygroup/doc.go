// Package notifygroup maps event types to toggleable notification groups.
//
// A group bundles a set of event types behind a single enable/disable
// switch. Resolution scans the user's groups in order and the first group
// whose set contains the event type governs it; an event type no group
// claims is ungoverned and dispatch proceeds without a group check.
//
// Like the time-window gate, the resolver fails open on lookup errors so a
// storage outage cannot silently swallow reminders.
package notifygroup
