package telemetry

import "errkit/internal/domain"

type NoopMetrics struct{}

func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) ObserveHandled(_ domain.HandlerMethod, _ domain.Shape) {}

func (n *NoopMetrics) ObserveScheduled(_ domain.Channel) {}

func (n *NoopMetrics) ObservePresented(_ domain.Channel) {}

func (n *NoopMetrics) ObserveFallback(_ domain.Channel, _ domain.Channel) {}

var _ domain.Metrics = (*NoopMetrics)(nil)
