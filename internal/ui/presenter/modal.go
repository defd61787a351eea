package presenter

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"errkit/internal/domain"
)

const modalSize = "small"

type modalResult struct {
	action string
	err    error
}

type pendingModal struct {
	actions []domain.Action
	done    chan modalResult
}

// ModalPresenter opens modals through the frontend event bus and waits for
// the matching close event.
type ModalPresenter struct {
	bus    Bus
	logger *zap.Logger

	mu      sync.Mutex
	waiters map[string]*pendingModal
	off     func()
	closed  bool
}

func NewModalPresenter(bus Bus, logger *zap.Logger) *ModalPresenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &ModalPresenter{
		bus:     bus,
		logger:  logger.Named("modal"),
		waiters: make(map[string]*pendingModal),
	}
	if bus != nil {
		p.off = bus.On(EventModalClosed, p.handleClosed)
	}
	return p
}

// OpenModal blocks until the frontend closes the modal or the presenter is
// closed. The caller's context does not end the wait; a modal stays open
// until the user dismisses it.
func (p *ModalPresenter) OpenModal(_ context.Context, modal domain.Modal) (string, error) {
	if p.bus == nil {
		return "", domain.ErrPresenterUnavailable
	}

	id := uuid.NewString()
	pending := &pendingModal{actions: modal.Actions, done: make(chan modalResult, 1)}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return "", domain.ErrPresenterClosed
	}
	p.waiters[id] = pending
	p.mu.Unlock()

	p.bus.Emit(EventModalOpen, ModalOpenEvent{
		ID:          id,
		Title:       modal.Title,
		Message:     modal.Message,
		Size:        modalSize,
		FieldErrors: keyedFieldErrors(modal.FieldErrors),
		Actions:     modal.Actions,
	})

	result := <-pending.done
	return result.action, result.err
}

// Close releases every waiting OpenModal call with ErrPresenterClosed and
// stops listening for close events.
func (p *ModalPresenter) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	waiters := p.waiters
	p.waiters = make(map[string]*pendingModal)
	off := p.off
	p.off = nil
	p.mu.Unlock()

	if off != nil {
		off()
	}
	for _, pending := range waiters {
		pending.done <- modalResult{err: domain.ErrPresenterClosed}
	}
}

// Open reports how many modals are waiting for dismissal.
func (p *ModalPresenter) Open() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.waiters)
}

func (p *ModalPresenter) handleClosed(data any) {
	event, err := decodeModalClosed(data)
	if err != nil {
		p.logger.Warn("ignoring modal close event", zap.Error(err))
		return
	}

	p.mu.Lock()
	pending, ok := p.waiters[event.ID]
	if ok {
		delete(p.waiters, event.ID)
	}
	p.mu.Unlock()
	if !ok {
		p.logger.Debug("modal close event for unknown id", zap.String("id", event.ID))
		return
	}

	action := event.Action
	if action == "" {
		action = domain.DefaultActionName
	}
	for _, candidate := range pending.actions {
		if candidate.Name == action && candidate.OnClick != nil {
			candidate.OnClick()
			break
		}
	}
	pending.done <- modalResult{action: action}
}

func keyedFieldErrors(fieldErrors []domain.FieldError) []ModalFieldError {
	out := make([]ModalFieldError, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		out = append(out, ModalFieldError{Key: fieldErr.Key(), FieldError: fieldErr})
	}
	return out
}

var _ domain.ModalPresenter = (*ModalPresenter)(nil)
