package domain

// Metrics records error handler activity.
type Metrics interface {
	ObserveHandled(method HandlerMethod, shape Shape)
	ObserveScheduled(channel Channel)
	ObservePresented(channel Channel)
	ObserveFallback(from Channel, to Channel)
}
