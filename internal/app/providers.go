package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"errkit/internal/app/errorhandler"
	"errkit/internal/domain"
	"errkit/internal/infra/settings"
	"errkit/internal/infra/telemetry"
)

// Config selects the settings file and the presenters the handler drives.
type Config struct {
	ConfigPath string
	Watch      bool
	Presenters Presenters
	// Logger overrides the logger built from settings.
	Logger *zap.Logger
}

// Presenters are the UI collaborators. Any field may be nil.
type Presenters struct {
	Toaster domain.Toaster
	Modal   domain.ModalPresenter
	// Close releases presenters on shutdown, unblocking open modals.
	Close func()
}

func LoadSettings(cfg Config) (settings.Settings, error) {
	return settings.NewLoader(cfg.Logger).Load(cfg.ConfigPath)
}

func ProvideLogger(cfg Config, s settings.Settings) (*zap.Logger, error) {
	if cfg.Logger != nil {
		return cfg.Logger, nil
	}
	return NewLogger(s.Log)
}

func ProvidePresenters(cfg Config) Presenters {
	return cfg.Presenters
}

func NewMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	registry.MustRegister(prometheus.NewGoCollector())
	return registry
}

func NewMetrics(registry *prometheus.Registry) domain.Metrics {
	return telemetry.NewPrometheusMetrics(registry)
}

func NewDispatcher(presenters Presenters, s settings.Settings, metrics domain.Metrics, logger *zap.Logger) *errorhandler.Dispatcher {
	return errorhandler.NewDispatcher(errorhandler.DispatcherOptions{
		Toaster: presenters.Toaster,
		Modal:   presenters.Modal,
		Delay:   s.DebounceDelay,
		Metrics: metrics,
		Logger:  logger,
	})
}

func NewHandler(dispatcher *errorhandler.Dispatcher, s settings.Settings, metrics domain.Metrics, logger *zap.Logger) *errorhandler.Handler {
	return errorhandler.NewHandler(errorhandler.HandlerOptions{
		Dispatcher: dispatcher,
		Defaults:   s.Options(),
		Metrics:    metrics,
		Logger:     logger,
	})
}
