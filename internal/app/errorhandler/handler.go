package errorhandler

import (
	"context"

	"go.uber.org/zap"

	"errkit/internal/domain"
	"errkit/internal/infra/errorformat"
	"errkit/internal/infra/telemetry"
)

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Dispatcher *Dispatcher
	Defaults   domain.Options
	Metrics    domain.Metrics
	Logger     *zap.Logger
}

// Handler is the pair of error entry points bound to a set of defaults.
type Handler struct {
	dispatcher *Dispatcher
	defaults   domain.Options
	metrics    domain.Metrics
	logger     *zap.Logger
}

func NewHandler(opts HandlerOptions) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = NewDispatcher(DispatcherOptions{Metrics: metrics, Logger: logger})
	}
	defaults := Merge(DefaultOptions(), opts.Defaults)
	if defaults.Logger == nil {
		defaults.Logger = NewZapLogger(logger)
	}
	return &Handler{
		dispatcher: dispatcher,
		defaults:   defaults,
		metrics:    metrics,
		logger:     logger,
	}
}

// Custom returns a handler whose defaults are these defaults with overrides
// applied. It shares the dispatcher, and with it the debounce windows.
func (h *Handler) Custom(overrides domain.Options) *Handler {
	return &Handler{
		dispatcher: h.dispatcher,
		defaults:   Merge(h.defaults, overrides),
		metrics:    h.metrics,
		logger:     h.logger,
	}
}

// Defaults returns a copy of the handler's pre-bound options.
func (h *Handler) Defaults() domain.Options {
	return Merge(h.defaults, domain.Options{})
}

// Dispatcher returns the dispatcher presentations are routed through.
func (h *Handler) Dispatcher() *Dispatcher {
	return h.dispatcher
}

// HandleError reports raw with its real detail.
func (h *Handler) HandleError(ctx context.Context, raw any, opts domain.Options) domain.UIError {
	return h.handle(ctx, raw, opts, domain.MethodHandleError)
}

// SomethingWentWrong reports raw behind the generic message, still surfacing
// structured field errors.
func (h *Handler) SomethingWentWrong(ctx context.Context, raw any, opts domain.Options) domain.UIError {
	return h.handle(ctx, raw, opts, domain.MethodSomethingWentWrong)
}

func (h *Handler) handle(ctx context.Context, raw any, opts domain.Options, method domain.HandlerMethod) domain.UIError {
	ctx, _ = telemetry.EnsureCallMeta(ctx)
	effective := Merge(h.defaults, opts)

	parsed := errorformat.Parse(raw)
	ui := errorformat.Format(parsed, errorformat.Request{
		Method:         method,
		GenericMessage: effective.SomethingWentWrongMessage,
		HostName:       effective.ResolveHostName(),
	})

	effective.Logger.Log(ctx, domain.LogEntry{
		Error: raw,
		Shape: parsed.Shape(),
		UI:    ui,
	})
	h.metrics.ObserveHandled(method, parsed.Shape())
	h.dispatcher.Dispatch(ctx, ui, effective)
	return ui
}
