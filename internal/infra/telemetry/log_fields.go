package telemetry

import (
	"go.uber.org/zap"

	"errkit/internal/domain"
)

const (
	FieldEvent       = "event"
	FieldHost        = "host"
	FieldMethod      = "method"
	FieldShape       = "shape"
	FieldChannel     = "channel"
	FieldFieldErrors = "field_errors"
	FieldLogSource   = "log_source"
	FieldCallID      = "call_id"
	FieldTraceID     = "trace_id"
	FieldSpanID      = "span_id"
)

const (
	EventErrorHandled     = "error_handled"
	EventPresentScheduled = "present_scheduled"
	EventPresented        = "presented"
	EventPresentFallback  = "present_fallback"
	EventPresentSkipped   = "present_skipped"
	EventSettingsReloaded = "settings_reloaded"
)

const (
	LogSourceCore = "core"
	LogSourceUI   = "ui"
	LogSourceCLI  = "cli"
)

func EventField(event string) zap.Field {
	return zap.String(FieldEvent, event)
}

func HostField(host string) zap.Field {
	return zap.String(FieldHost, host)
}

func MethodField(method domain.HandlerMethod) zap.Field {
	return zap.String(FieldMethod, string(method))
}

func ShapeField(shape domain.Shape) zap.Field {
	return zap.String(FieldShape, string(shape))
}

func ChannelField(channel domain.Channel) zap.Field {
	return zap.String(FieldChannel, string(channel))
}

func FieldErrorsField(count int) zap.Field {
	return zap.Int(FieldFieldErrors, count)
}

func CallIDField(value string) zap.Field {
	return zap.String(FieldCallID, value)
}

func TraceIDField(value string) zap.Field {
	return zap.String(FieldTraceID, value)
}

func SpanIDField(value string) zap.Field {
	return zap.String(FieldSpanID, value)
}
