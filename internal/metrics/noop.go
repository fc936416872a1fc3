package metrics

// NoopCollector discards every recording.
type NoopCollector struct{}

func (NoopCollector) StreamOpened()              {}
func (NoopCollector) StreamClosed()              {}
func (NoopCollector) AuthAttempt(success bool)   {}
func (NoopCollector) UserCreated()               {}
func (NoopCollector) UserDeleted()               {}
func (NoopCollector) MessageAccepted()           {}
func (NoopCollector) MessageDelivered()          {}
func (NoopCollector) MessageReplicated(dup bool) {}
func (NoopCollector) PeerAttached()              {}
func (NoopCollector) PeerDetached()              {}
