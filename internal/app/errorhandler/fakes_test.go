package errorhandler

import (
	"context"
	"errors"
	"sync"

	"errkit/internal/domain"
)

type fakeToaster struct {
	mu     sync.Mutex
	toasts []domain.Toast
}

func (f *fakeToaster) ShowToast(_ context.Context, toast domain.Toast) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toasts = append(f.toasts, toast)
}

func (f *fakeToaster) Toasts() []domain.Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Toast, len(f.toasts))
	copy(out, f.toasts)
	return out
}

type fakeModal struct {
	mu     sync.Mutex
	modals []domain.Modal
	action string
	err    error
}

func (f *fakeModal) OpenModal(_ context.Context, modal domain.Modal) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modals = append(f.modals, modal)
	if f.err != nil {
		return "", f.err
	}
	for _, action := range modal.Actions {
		if action.Name == f.action && action.OnClick != nil {
			action.OnClick()
		}
	}
	return f.action, nil
}

func (f *fakeModal) Modals() []domain.Modal {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Modal, len(f.modals))
	copy(out, f.modals)
	return out
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []domain.LogEntry
}

func (r *recordingLogger) Log(_ context.Context, entry domain.LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingLogger) Entries() []domain.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

type fallbackRecord struct {
	from domain.Channel
	to   domain.Channel
}

type recordingMetrics struct {
	mu        sync.Mutex
	handled   []domain.HandlerMethod
	scheduled []domain.Channel
	presented []domain.Channel
	fallbacks []fallbackRecord
}

func (m *recordingMetrics) ObserveHandled(method domain.HandlerMethod, _ domain.Shape) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handled = append(m.handled, method)
}

func (m *recordingMetrics) ObserveScheduled(channel domain.Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled = append(m.scheduled, channel)
}

func (m *recordingMetrics) ObservePresented(channel domain.Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presented = append(m.presented, channel)
}

func (m *recordingMetrics) ObserveFallback(from domain.Channel, to domain.Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks = append(m.fallbacks, fallbackRecord{from: from, to: to})
}

var errModalBroken = errors.New("modal broken")

func strPtr(value string) *string {
	return &value
}
