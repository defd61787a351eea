package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"errkit/internal/app/errorhandler"
	"errkit/internal/domain"
	"errkit/internal/infra/settings"
	"errkit/internal/infra/telemetry"
)

const shutdownDrainTimeout = 5 * time.Second

// Application owns the handler, its dispatcher and the settings watcher.
type Application struct {
	configPath string
	watch      bool

	logger     *zap.Logger
	registry   *prometheus.Registry
	metrics    domain.Metrics
	dispatcher *errorhandler.Dispatcher
	closeUI    func()
	handler    atomic.Pointer[errorhandler.Handler]
	settings   atomic.Pointer[settings.Settings]
}

// ApplicationOptions captures dependencies and settings for Application.
type ApplicationOptions struct {
	Config     Config
	Settings   settings.Settings
	Logger     *zap.Logger
	Registry   *prometheus.Registry
	Metrics    domain.Metrics
	Dispatcher *errorhandler.Dispatcher
	Handler    *errorhandler.Handler
}

// NewApplication constructs the application and installs its handler as the
// process-wide default.
func NewApplication(opts ApplicationOptions) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Application{
		configPath: opts.Config.ConfigPath,
		watch:      opts.Config.Watch,
		logger:     logger.Named("app"),
		registry:   opts.Registry,
		metrics:    opts.Metrics,
		dispatcher: opts.Dispatcher,
		closeUI:    opts.Config.Presenters.Close,
	}
	s := opts.Settings
	a.settings.Store(&s)
	a.handler.Store(opts.Handler)
	errorhandler.SetDefault(opts.Handler)
	return a
}

func (a *Application) Handler() *errorhandler.Handler {
	return a.handler.Load()
}

func (a *Application) Dispatcher() *errorhandler.Dispatcher {
	return a.dispatcher
}

func (a *Application) Registry() *prometheus.Registry {
	return a.registry
}

func (a *Application) Logger() *zap.Logger {
	return a.logger
}

func (a *Application) Settings() settings.Settings {
	return *a.settings.Load()
}

// ApplySettings swaps the handler defaults. The debounce delay is fixed when
// the dispatcher is built and is not changed here.
func (a *Application) ApplySettings(s settings.Settings) {
	next := errorhandler.NewHandler(errorhandler.HandlerOptions{
		Dispatcher: a.dispatcher,
		Defaults:   s.Options(),
		Metrics:    a.metrics,
		Logger:     a.logger,
	})
	a.settings.Store(&s)
	a.handler.Store(next)
	errorhandler.SetDefault(next)
	if s.DebounceDelay != a.dispatcher.Delay() {
		a.logger.Warn("debounce delay change requires restart",
			zap.Duration("current", a.dispatcher.Delay()),
			zap.Duration("configured", s.DebounceDelay),
		)
	}
}

// Run blocks until ctx is done. It hot-reloads settings when watching is
// enabled and serves metrics when a listen address is configured. On exit it
// drops pending presentations and waits a bounded time for running ones.
func (a *Application) Run(ctx context.Context) error {
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownDrainTimeout)
		defer cancel()
		a.Shutdown(drainCtx)
	}()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	if addr := a.Settings().Metrics.ListenAddress; addr != "" && a.registry != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- telemetry.ServeMetrics(ctx, telemetry.MetricsServerOptions{
				Addr:     addr,
				Registry: a.registry,
			}, a.logger)
		}()
	}
	if a.watch && a.configPath != "" {
		watcher := settings.NewWatcher(settings.WatcherOptions{
			Path:   a.configPath,
			Logger: a.logger,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- watcher.Run(ctx, a.ApplySettings)
		}()
	}

	var first error
	select {
	case <-ctx.Done():
	case first = <-errs:
	}
	cancel()
	wg.Wait()
	close(errs)
	for err := range errs {
		if first == nil {
			first = err
		}
	}
	return first
}

// Shutdown cancels pending presentations, closes the presenters and waits
// for running presentations until ctx is done.
func (a *Application) Shutdown(ctx context.Context) {
	a.dispatcher.Cancel()
	if a.closeUI != nil {
		a.closeUI()
	}
	if err := a.dispatcher.Wait(ctx); err != nil {
		a.logger.Warn("dispatcher did not drain", zap.Error(err))
	}
}
