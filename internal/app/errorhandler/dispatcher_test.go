package errorhandler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errkit/internal/domain"
)

const testDelay = 30 * time.Millisecond

func waitDispatcher(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
}

func TestSelectChannel(t *testing.T) {
	fieldErrors := []domain.FieldError{{Field: "Email", Message: "bad"}}
	cases := []struct {
		name string
		ui   domain.UIError
		opts domain.Options
		want domain.Channel
	}{
		{
			name: "handle error summary only",
			ui:   domain.UIError{Message: "boom", HandlerMethod: domain.MethodHandleError},
			want: domain.ChannelToast,
		},
		{
			name: "handle error with payload",
			ui:   domain.UIError{Message: "boom", Payload: strPtr("detail"), HandlerMethod: domain.MethodHandleError},
			want: domain.ChannelModal,
		},
		{
			name: "handle error with empty payload",
			ui:   domain.UIError{Message: "boom", Payload: strPtr(""), HandlerMethod: domain.MethodHandleError},
			want: domain.ChannelToast,
		},
		{
			name: "handle error with field errors",
			ui:   domain.UIError{Message: "boom", FieldErrors: fieldErrors, HandlerMethod: domain.MethodHandleError},
			want: domain.ChannelModal,
		},
		{
			name: "something went wrong",
			ui:   domain.UIError{Message: "Something went wrong.", HandlerMethod: domain.MethodSomethingWentWrong},
			want: domain.ChannelModal,
		},
		{
			name: "explicit toast wins",
			ui:   domain.UIError{Message: "boom", Payload: strPtr("detail"), HandlerMethod: domain.MethodSomethingWentWrong},
			opts: domain.Options{Type: domain.ChannelToast},
			want: domain.ChannelToast,
		},
		{
			name: "explicit modal wins",
			ui:   domain.UIError{Message: "boom", HandlerMethod: domain.MethodHandleError},
			opts: domain.Options{Type: domain.ChannelModal},
			want: domain.ChannelModal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectChannel(tc.ui, tc.opts))
		})
	}
}

func TestDispatcher_DebounceCollapsesBurstToLastCall(t *testing.T) {
	toaster := &fakeToaster{}
	metrics := &recordingMetrics{}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster, Delay: testDelay, Metrics: metrics})

	for _, msg := range []string{"first", "second", "third"} {
		d.Dispatch(context.Background(), domain.UIError{Message: msg, HandlerMethod: domain.MethodHandleError}, DefaultOptions())
	}
	assert.True(t, d.Pending(domain.ChannelToast))
	assert.Empty(t, toaster.Toasts())

	waitDispatcher(t, d)

	toasts := toaster.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "third", toasts[0].Title)
	assert.Len(t, metrics.scheduled, 3)
	assert.Equal(t, []domain.Channel{domain.ChannelToast}, metrics.presented)
}

func TestDispatcher_SeparateBurstsPresentSeparately(t *testing.T) {
	toaster := &fakeToaster{}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster, Delay: testDelay})

	d.Dispatch(context.Background(), domain.UIError{Message: "one"}, DefaultOptions())
	waitDispatcher(t, d)
	d.Dispatch(context.Background(), domain.UIError{Message: "two"}, DefaultOptions())
	waitDispatcher(t, d)

	toasts := toaster.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "one", toasts[0].Title)
	assert.Equal(t, "two", toasts[1].Title)
}

func TestDispatcher_ChannelsDebounceIndependently(t *testing.T) {
	toaster := &fakeToaster{}
	modal := &fakeModal{action: "close"}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster, Modal: modal, Delay: testDelay})

	d.Dispatch(context.Background(), domain.UIError{Message: "toast"}, DefaultOptions())
	d.Dispatch(context.Background(), domain.UIError{Message: "modal", HandlerMethod: domain.MethodSomethingWentWrong}, DefaultOptions())
	waitDispatcher(t, d)

	require.Len(t, toaster.Toasts(), 1)
	require.Len(t, modal.Modals(), 1)
	assert.Equal(t, "toast", toaster.Toasts()[0].Title)
	assert.Equal(t, "modal", modal.Modals()[0].Title)
}

func TestDispatcher_DisableDebouncePresentsImmediately(t *testing.T) {
	toaster := &fakeToaster{}
	metrics := &recordingMetrics{}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster, Delay: time.Hour, Metrics: metrics})
	opts := Merge(DefaultOptions(), domain.Options{DisableDebounce: domain.Bool(true)})

	d.Dispatch(context.Background(), domain.UIError{Message: "a"}, opts)
	d.Dispatch(context.Background(), domain.UIError{Message: "b"}, opts)

	toasts := toaster.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "a", toasts[0].Title)
	assert.Equal(t, "b", toasts[1].Title)
	assert.Empty(t, metrics.scheduled)
	assert.False(t, d.Pending(domain.ChannelToast))
}

func TestDispatcher_ModalCarriesFieldErrorsAndActions(t *testing.T) {
	clicked := false
	modal := &fakeModal{action: "retry"}
	d := NewDispatcher(DispatcherOptions{Modal: modal, Delay: testDelay})
	opts := Merge(DefaultOptions(), domain.Options{
		DisableDebounce: domain.Bool(true),
		Actions: []domain.Action{
			{Name: "retry", Label: "Retry", Variant: "brand", OnClick: func() { clicked = true }},
			domain.StandardActions()[0],
		},
	})
	ui := domain.UIError{
		Message:       "Validation failed",
		Payload:       strPtr(""),
		FieldErrors:   []domain.FieldError{{Field: "Email", Message: "Invalid email"}},
		HandlerMethod: domain.MethodHandleError,
	}

	d.Dispatch(context.Background(), ui, opts)

	modals := modal.Modals()
	require.Len(t, modals, 1)
	assert.Equal(t, "Validation failed", modals[0].Title)
	assert.Equal(t, "", modals[0].Message)
	assert.Equal(t, ui.FieldErrors, modals[0].FieldErrors)
	require.Len(t, modals[0].Actions, 2)
	assert.Equal(t, "retry", modals[0].Actions[0].Name)
	assert.True(t, clicked)
}

func TestDispatcher_EmptyActionsUseStandardActions(t *testing.T) {
	modal := &fakeModal{action: "close"}
	d := NewDispatcher(DispatcherOptions{Modal: modal})
	opts := domain.Options{DisableDebounce: domain.Bool(true), Type: domain.ChannelModal}

	d.Dispatch(context.Background(), domain.UIError{Message: "boom"}, opts)

	modals := modal.Modals()
	require.Len(t, modals, 1)
	require.Len(t, modals[0].Actions, 1)
	assert.Equal(t, domain.DefaultActionName, modals[0].Actions[0].Name)
}

func TestDispatcher_ModalFallsBackToToast(t *testing.T) {
	opts := domain.Options{DisableDebounce: domain.Bool(true), Type: domain.ChannelModal}

	t.Run("missing modal presenter", func(t *testing.T) {
		toaster := &fakeToaster{}
		metrics := &recordingMetrics{}
		d := NewDispatcher(DispatcherOptions{Toaster: toaster, Metrics: metrics})

		d.Dispatch(context.Background(), domain.UIError{Message: "boom", Payload: strPtr("detail")}, opts)

		toasts := toaster.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, "boom", toasts[0].Title)
		assert.Equal(t, "detail", toasts[0].Message)
		assert.Equal(t, []fallbackRecord{{from: domain.ChannelModal, to: domain.ChannelToast}}, metrics.fallbacks)
	})

	t.Run("failing modal presenter", func(t *testing.T) {
		toaster := &fakeToaster{}
		metrics := &recordingMetrics{}
		modal := &fakeModal{err: errModalBroken}
		d := NewDispatcher(DispatcherOptions{Toaster: toaster, Modal: modal, Metrics: metrics})

		d.Dispatch(context.Background(), domain.UIError{Message: "boom"}, opts)

		assert.Len(t, modal.Modals(), 1)
		assert.Len(t, toaster.Toasts(), 1)
		assert.Equal(t, []domain.Channel{domain.ChannelToast}, metrics.presented)
	})
}

func TestDispatcher_MissingToasterIsNoop(t *testing.T) {
	d := NewDispatcher(DispatcherOptions{})
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), domain.UIError{Message: "boom"}, domain.Options{DisableDebounce: domain.Bool(true)})
	})
}

func TestDispatcher_ToastCarriesHostHint(t *testing.T) {
	toaster := &fakeToaster{}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster})
	opts := domain.Options{DisableDebounce: domain.Bool(true), Element: domain.HostName("c-account-card")}

	d.Dispatch(context.Background(), domain.UIError{Message: "boom"}, opts)

	toasts := toaster.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "c-account-card", toasts[0].HostHint)
}

func TestDispatcher_CancelDropsPending(t *testing.T) {
	toaster := &fakeToaster{}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster, Delay: testDelay})

	d.Dispatch(context.Background(), domain.UIError{Message: "dropped"}, DefaultOptions())
	d.Cancel()
	waitDispatcher(t, d)
	time.Sleep(2 * testDelay)

	assert.Empty(t, toaster.Toasts())
}

func TestDispatcher_DebouncedPresentationOutlivesCallerContext(t *testing.T) {
	toaster := &fakeToaster{}
	d := NewDispatcher(DispatcherOptions{Toaster: toaster, Delay: testDelay})
	ctx, cancel := context.WithCancel(context.Background())

	d.Dispatch(ctx, domain.UIError{Message: "boom"}, DefaultOptions())
	cancel()
	waitDispatcher(t, d)

	assert.Len(t, toaster.Toasts(), 1)
}
