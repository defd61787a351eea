package settings

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"errkit/internal/domain"
	"errkit/internal/infra/debounce"
	"errkit/internal/infra/telemetry"
)

const (
	defaultReloadDebounce = 200 * time.Millisecond
	reloadLane            = "reload"
)

// Watcher reloads a settings file whenever it changes on disk.
type Watcher struct {
	loader *Loader
	path   string
	delay  time.Duration
	logger *zap.Logger
}

type WatcherOptions struct {
	Loader *Loader
	Path   string
	Delay  time.Duration
	Logger *zap.Logger
}

func NewWatcher(opts WatcherOptions) *Watcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader(logger)
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = defaultReloadDebounce
	}
	return &Watcher{
		loader: loader,
		path:   opts.Path,
		delay:  delay,
		logger: logger.Named("settings_watcher"),
	}
}

// Run watches the settings file's directory and calls onChange with every
// successfully reloaded version. Bursts of writes collapse into one reload.
// Invalid files are logged and skipped. Run blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func(Settings)) error {
	if w.path == "" {
		return domain.E(domain.CodeInvalidArgument, "settings.Watch", "config path is required", nil)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.E(domain.CodeUnavailable, "settings.Watch", "create watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return domain.E(domain.CodeUnavailable, "settings.Watch", "watch config dir", err)
	}

	lanes := debounce.NewGroup(w.delay)
	defer lanes.CancelAll()
	reload := func() {
		s, err := w.loader.Load(w.path)
		if err != nil {
			w.logger.Warn("settings reload failed", zap.String("path", w.path), zap.Error(err))
			return
		}
		w.logger.Info("settings reloaded",
			telemetry.EventField(telemetry.EventSettingsReloaded),
			zap.String("path", w.path),
		)
		onChange(s)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil && !errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("settings watcher error", zap.Error(err))
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldReload(event, w.path) {
				continue
			}
			lanes.Trigger(reloadLane, reload)
		}
	}
}

func shouldReload(event fsnotify.Event, configPath string) bool {
	if event.Name == "" || configPath == "" {
		return false
	}
	if filepath.Clean(event.Name) != filepath.Clean(configPath) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
