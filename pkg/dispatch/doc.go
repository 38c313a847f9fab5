// Package dispatch fans a single reminder out to a user's delivery
// channels and aggregates the per-channel outcomes.
//
// The coordinator runs each dispatch through three checks before any
// channel is touched: the per-event-type time window, the event type's
// notification group, and the user's per-channel configuration. Channels
// are polymorphic over one capability - attempt a delivery given a typed
// configuration - and are looked up in a registry keyed by channel type.
//
// # Outcome Semantics
//
// Every attempted channel contributes exactly one Result and exactly one
// audit log entry, whether it succeeded or failed. Channels with no stored
// configuration, or a disabled one, are skipped entirely and appear
// nowhere in the outcome. The aggregated Success flag is an OR over the
// per-channel results: partial failure is not overall failure.
//
// A dispatch blocked by the time window or by a disabled group returns an
// unsuccessful outcome with no results and writes no log entries.
//
// # Concurrency
//
// Sends within one dispatch may run in parallel (WithParallel); results
// are still reported in the order the channels were considered, and a
// failing channel never cancels its siblings. Bounded timeouts are owned
// by the channel implementations; the coordinator treats a timeout as an
// ordinary failed result. There is no retry at this layer.
package dispatch
