// Package console renders toasts and modals as plain text for terminals.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"errkit/internal/domain"
)

// Toaster writes each toast as a single block.
type Toaster struct {
	mu  sync.Mutex
	out io.Writer
}

func NewToaster(out io.Writer) *Toaster {
	return &Toaster{out: out}
}

func (t *Toaster) ShowToast(_ context.Context, toast domain.Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.out == nil {
		return
	}

	var b strings.Builder
	b.WriteString("[toast]")
	if toast.HostHint != "" {
		fmt.Fprintf(&b, " (%s)", toast.HostHint)
	}
	fmt.Fprintf(&b, " %s\n", toast.Title)
	writeIndented(&b, toast.Message)
	_, _ = io.WriteString(t.out, b.String())
}

// Modal writes the modal and, when an input is attached, reads the chosen
// action name from it. Without input, or on an unknown or empty answer, the
// first action is chosen.
type Modal struct {
	mu  sync.Mutex
	out io.Writer
	in  *bufio.Scanner
}

func NewModal(out io.Writer, in io.Reader) *Modal {
	m := &Modal{out: out}
	if in != nil {
		m.in = bufio.NewScanner(in)
	}
	return m
}

func (m *Modal) OpenModal(_ context.Context, modal domain.Modal) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.out == nil {
		return "", domain.ErrPresenterUnavailable
	}
	actions := modal.Actions
	if len(actions) == 0 {
		actions = domain.StandardActions()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[modal] %s\n", modal.Title)
	writeIndented(&b, modal.Message)
	for _, fieldErr := range modal.FieldErrors {
		label := fieldErr.FieldLabel
		if label == "" {
			label = fieldErr.Key()
		}
		fmt.Fprintf(&b, "  - %s: %s\n", label, fieldErr.Message)
	}
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, fmt.Sprintf("%s (%s)", action.Label, action.Name))
	}
	fmt.Fprintf(&b, "  actions: %s\n", strings.Join(names, ", "))
	if _, err := io.WriteString(m.out, b.String()); err != nil {
		return "", fmt.Errorf("write modal: %w", err)
	}

	chosen := actions[0]
	if m.in != nil && m.in.Scan() {
		answer := strings.TrimSpace(m.in.Text())
		for _, action := range actions {
			if action.Name == answer {
				chosen = action
				break
			}
		}
	}
	if chosen.OnClick != nil {
		chosen.OnClick()
	}
	return chosen.Name, nil
}

func writeIndented(b *strings.Builder, text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(b, "  %s\n", line)
	}
}

var (
	_ domain.Toaster        = (*Toaster)(nil)
	_ domain.ModalPresenter = (*Modal)(nil)
)
