// Package stream implements the metrics stream subscriber.
//
// A Subscription owns a single websocket connection to the system health
// service and republishes the most recent CPU reading to its consumer. The
// connection lifecycle is an explicit state machine:
//
//	Disconnected -> Connecting -> Connected -> Disconnected -> ...
//	                        (any state) -> Cancelled
//
// Every disconnect, graceful or not, is retried after a fixed delay with no
// backoff and no attempt limit. Cancellation via Close is the only way out
// of the loop. Messages that are not parseable JSON, or that lack a numeric
// cpu.total field, are dropped without surfacing an error; the published
// value only ever moves forward to the next valid reading.
package stream
