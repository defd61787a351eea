package domain

import "context"

// Toast is a fire-and-forget notification request.
type Toast struct {
	HostHint string
	Title    string
	Message  string
}

// Modal is a blocking dialog request.
type Modal struct {
	Title       string
	Message     string
	FieldErrors []FieldError
	Actions     []Action
}

// Toaster renders toast notifications. The UI owns their lifetime.
type Toaster interface {
	ShowToast(ctx context.Context, toast Toast)
}

// ModalPresenter opens a modal and blocks until it is dismissed, returning the
// name of the action that closed it.
type ModalPresenter interface {
	OpenModal(ctx context.Context, modal Modal) (string, error)
}

// LogEntry pairs a raw error with its formatted UI form.
type LogEntry struct {
	Error any
	Shape Shape
	UI    UIError
}

// Logger receives every handled error, debounced or not.
type Logger interface {
	Log(ctx context.Context, entry LogEntry)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(ctx context.Context, entry LogEntry)

func (f LoggerFunc) Log(ctx context.Context, entry LogEntry) {
	f(ctx, entry)
}
