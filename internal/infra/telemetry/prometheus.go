package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"errkit/internal/domain"
)

// MetricPrefix is shared by every errkit metric name.
const MetricPrefix = "errkit_"

type PrometheusMetrics struct {
	handled   *prometheus.CounterVec
	scheduled *prometheus.CounterVec
	presented *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		handled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "errkit_errors_handled_total",
				Help: "Total number of errors passed to the error handler",
			},
			[]string{"method", "shape"},
		),
		scheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "errkit_presentations_scheduled_total",
				Help: "Total number of presentations queued behind the debounce window",
			},
			[]string{"channel"},
		),
		presented: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "errkit_presentations_total",
				Help: "Total number of presentations delivered to a presenter",
			},
			[]string{"channel"},
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "errkit_presenter_fallbacks_total",
				Help: "Total number of presentations rerouted because a presenter was unavailable",
			},
			[]string{"from", "to"},
		),
	}
}

func (p *PrometheusMetrics) ObserveHandled(method domain.HandlerMethod, shape domain.Shape) {
	p.handled.WithLabelValues(string(method), string(shape)).Inc()
}

func (p *PrometheusMetrics) ObserveScheduled(channel domain.Channel) {
	p.scheduled.WithLabelValues(string(channel)).Inc()
}

func (p *PrometheusMetrics) ObservePresented(channel domain.Channel) {
	p.presented.WithLabelValues(string(channel)).Inc()
}

func (p *PrometheusMetrics) ObserveFallback(from domain.Channel, to domain.Channel) {
	p.fallbacks.WithLabelValues(string(from), string(to)).Inc()
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)
