package errorhandler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"errkit/internal/domain"
	"errkit/internal/infra/debounce"
	"errkit/internal/infra/telemetry"
)

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	Toaster domain.Toaster
	Modal   domain.ModalPresenter
	Delay   time.Duration
	Metrics domain.Metrics
	Logger  *zap.Logger
}

// Dispatcher routes UIErrors to the toast or modal presenter. It owns one
// debounce lane per channel; bursts on a lane collapse to the last call.
type Dispatcher struct {
	toaster domain.Toaster
	modal   domain.ModalPresenter
	lanes   *debounce.Group
	metrics domain.Metrics
	logger  *zap.Logger
}

func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	delay := opts.Delay
	if delay <= 0 {
		delay = domain.DefaultDebounceDelay
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		toaster: opts.Toaster,
		modal:   opts.Modal,
		lanes:   debounce.NewGroup(delay),
		metrics: metrics,
		logger:  logger.Named("dispatcher"),
	}
}

// SelectChannel decides where ui is shown. An explicit type wins; otherwise
// somethingWentWrong always uses the modal and handleError uses it only when
// there is detail beyond the summary.
func SelectChannel(ui domain.UIError, opts domain.Options) domain.Channel {
	switch opts.Type {
	case domain.ChannelModal, domain.ChannelToast:
		return opts.Type
	}
	if ui.HandlerMethod == domain.MethodSomethingWentWrong || ui.HasDetail() {
		return domain.ChannelModal
	}
	return domain.ChannelToast
}

// Dispatch presents ui. With debounce enabled it returns immediately and the
// presentation runs once the channel's window goes quiet. Without debounce a
// modal blocks until it is dismissed.
func (d *Dispatcher) Dispatch(ctx context.Context, ui domain.UIError, opts domain.Options) {
	if ctx == nil {
		ctx = context.Background()
	}
	channel := SelectChannel(ui, opts)
	actions := opts.Actions
	if len(actions) == 0 {
		actions = domain.StandardActions()
	}
	present := func(ctx context.Context) {
		switch channel {
		case domain.ChannelModal:
			d.presentModal(ctx, ui, actions, opts.Element)
		default:
			d.presentToast(ctx, ui, opts.Element)
		}
	}

	if opts.DebounceDisabled() {
		present(ctx)
		return
	}

	d.metrics.ObserveScheduled(channel)
	telemetry.LoggerWithCall(ctx, d.logger).Debug("presentation scheduled",
		telemetry.EventField(telemetry.EventPresentScheduled),
		telemetry.ChannelField(channel),
	)
	detached := context.WithoutCancel(ctx)
	d.lanes.Trigger(string(channel), func() {
		present(detached)
	})
}

// Delay returns the debounce window of each channel.
func (d *Dispatcher) Delay() time.Duration {
	return d.lanes.Delay()
}

// Wait blocks until no presentation is pending or running.
func (d *Dispatcher) Wait(ctx context.Context) error {
	return d.lanes.Wait(ctx)
}

// Cancel drops pending presentations on every channel.
func (d *Dispatcher) Cancel() {
	d.lanes.CancelAll()
}

// Pending reports whether a presentation is waiting on the channel's window.
func (d *Dispatcher) Pending(channel domain.Channel) bool {
	return d.lanes.Pending(string(channel))
}

func (d *Dispatcher) presentModal(ctx context.Context, ui domain.UIError, actions []domain.Action, host domain.Host) {
	logger := telemetry.LoggerWithCall(ctx, d.logger)
	if d.modal == nil {
		logger.Warn("modal presenter unavailable, falling back to toast",
			telemetry.EventField(telemetry.EventPresentFallback),
		)
		d.metrics.ObserveFallback(domain.ChannelModal, domain.ChannelToast)
		d.presentToast(ctx, ui, host)
		return
	}

	action, err := d.modal.OpenModal(ctx, domain.Modal{
		Title:       ui.Message,
		Message:     ui.PayloadText(),
		FieldErrors: ui.FieldErrors,
		Actions:     actions,
	})
	if err != nil {
		logger.Warn("modal presenter failed, falling back to toast",
			telemetry.EventField(telemetry.EventPresentFallback),
			zap.Error(err),
		)
		d.metrics.ObserveFallback(domain.ChannelModal, domain.ChannelToast)
		d.presentToast(ctx, ui, host)
		return
	}
	d.metrics.ObservePresented(domain.ChannelModal)
	logger.Debug("modal dismissed",
		telemetry.EventField(telemetry.EventPresented),
		telemetry.ChannelField(domain.ChannelModal),
		zap.String("action", action),
	)
}

func (d *Dispatcher) presentToast(ctx context.Context, ui domain.UIError, host domain.Host) {
	if d.toaster == nil {
		telemetry.LoggerWithCall(ctx, d.logger).Warn("toast presenter unavailable",
			telemetry.EventField(telemetry.EventPresentSkipped),
		)
		return
	}
	hostHint := ""
	if host != nil {
		hostHint = host.HostName()
	}
	d.metrics.ObservePresented(domain.ChannelToast)
	d.toaster.ShowToast(ctx, domain.Toast{
		HostHint: hostHint,
		Title:    ui.Message,
		Message:  ui.PayloadText(),
	})
}
