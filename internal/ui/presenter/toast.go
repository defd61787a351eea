package presenter

import (
	"context"

	"go.uber.org/zap"

	"errkit/internal/domain"
)

const (
	toastModeSticky   = "sticky"
	toastVariantError = "error"
)

// ToastPresenter shows toasts through the frontend event bus.
type ToastPresenter struct {
	bus    Bus
	logger *zap.Logger
}

func NewToastPresenter(bus Bus, logger *zap.Logger) *ToastPresenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToastPresenter{bus: bus, logger: logger.Named("toast")}
}

func (p *ToastPresenter) ShowToast(_ context.Context, toast domain.Toast) {
	if p.bus == nil {
		p.logger.Warn("toast dropped", zap.Error(domain.ErrPresenterUnavailable))
		return
	}
	p.bus.Emit(EventToast, ToastEvent{
		Host:    toast.HostHint,
		Title:   toast.Title,
		Message: toast.Message,
		Mode:    toastModeSticky,
		Variant: toastVariantError,
	})
}

var _ domain.Toaster = (*ToastPresenter)(nil)
