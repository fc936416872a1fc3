// Package metrics records chat server activity. Collector is the
// recording interface; the Prometheus implementation backs the /metrics
// endpoint and the noop implementation serves tests and the metrics-off
// configuration.
package metrics

// Collector records server activity.
type Collector interface {
	// Client streams
	StreamOpened()
	StreamClosed()

	// Account activity
	AuthAttempt(success bool)
	UserCreated()
	UserDeleted()

	// Message flow
	MessageAccepted()
	MessageDelivered()
	MessageReplicated(duplicate bool)

	// Cluster membership
	PeerAttached()
	PeerDetached()
}
