// Package notifylog keeps the append-only audit trail of notification
// delivery attempts.
//
// Every channel attempt, successful or not, produces exactly one Entry
// carrying the raw provider response or error text. Entries are write-once;
// the read side only lists and filters them for audit views.
//
// The Recorder wraps a Store with the dispatch layer's best-effort policy:
// a storage failure is logged and swallowed, it never unwinds a delivery
// outcome that already happened.
package notifylog
