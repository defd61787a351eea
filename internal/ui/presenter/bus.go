package presenter

import (
	"github.com/wailsapp/wails/v3/pkg/application"
	"go.uber.org/zap"
)

// Bus is the slice of the Wails event manager the presenters use.
type Bus interface {
	Emit(name string, data any)
	On(name string, handler func(data any)) (off func())
}

// WailsBus adapts a Wails application to Bus.
type WailsBus struct {
	app *application.App
}

// NewWailsBus returns nil when app is nil so presenters report themselves
// unavailable.
func NewWailsBus(app *application.App) Bus {
	if app == nil {
		return nil
	}
	return &WailsBus{app: app}
}

func (b *WailsBus) Emit(name string, data any) {
	b.app.Event.Emit(name, data)
}

func (b *WailsBus) On(name string, handler func(data any)) func() {
	return b.app.Event.On(name, func(event *application.CustomEvent) {
		handler(event.Data)
	})
}

// Attach builds both presenters on the application's event bus. Close the
// modal presenter on shutdown to release waiting callers.
func Attach(app *application.App, logger *zap.Logger) (*ToastPresenter, *ModalPresenter) {
	bus := NewWailsBus(app)
	return NewToastPresenter(bus, logger), NewModalPresenter(bus, logger)
}
