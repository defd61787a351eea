package errorhandler

import (
	"context"
	"sync"

	"errkit/internal/domain"
)

var (
	defaultMu      sync.RWMutex
	defaultHandler *Handler
)

// Default returns the process-wide handler, creating one without presenters
// on first use. All package-level calls share its debounce windows.
func Default() *Handler {
	defaultMu.RLock()
	h := defaultHandler
	defaultMu.RUnlock()
	if h != nil {
		return h
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultHandler == nil {
		defaultHandler = NewHandler(HandlerOptions{})
	}
	return defaultHandler
}

// SetDefault replaces the process-wide handler. Passing nil resets it.
func SetDefault(h *Handler) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultHandler = h
}

// HandleError reports raw through the process-wide handler.
func HandleError(ctx context.Context, raw any, opts domain.Options) domain.UIError {
	return Default().HandleError(ctx, raw, opts)
}

// SomethingWentWrong reports raw through the process-wide handler.
func SomethingWentWrong(ctx context.Context, raw any, opts domain.Options) domain.UIError {
	return Default().SomethingWentWrong(ctx, raw, opts)
}
