// Package async provides small future-based helpers for running independent
// units of work concurrently while collecting their results in a
// deterministic order.
//
// The dispatch layer uses it to fan a notification out to several delivery
// channels at once: each channel send becomes a future, and All gathers the
// results in the order the futures were created, so concurrent execution
// never reorders the reported outcome.
package async
