package errorhandler

import (
	"context"

	"go.uber.org/zap"

	"errkit/internal/domain"
	"errkit/internal/infra/telemetry"
)

// ZapLogger is the default Logger. It writes one error entry per handled
// error, named after the host element when one is known.
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) Log(ctx context.Context, entry domain.LogEntry) {
	ui := entry.UI
	logger := telemetry.LoggerWithCall(ctx, l.logger)
	if ui.HostName != "" {
		logger = logger.Named(ui.HostName)
	}
	fields := []zap.Field{
		telemetry.EventField(telemetry.EventErrorHandled),
		telemetry.MethodField(ui.HandlerMethod),
		telemetry.ShapeField(entry.Shape),
		telemetry.FieldErrorsField(len(ui.FieldErrors)),
		zap.String("message", ui.Message),
	}
	if ui.HostName != "" {
		fields = append(fields, telemetry.HostField(ui.HostName))
	}
	if ui.Payload != nil {
		fields = append(fields, zap.String("payload", *ui.Payload))
	}
	if ui.Stack != "" {
		fields = append(fields, zap.String("stack", ui.Stack))
	}
	fields = append(fields, rawField(entry.Error), zap.Any("ui", ui))
	logger.Error("error handled", fields...)
}

func rawField(raw any) zap.Field {
	if err, ok := raw.(error); ok {
		return zap.NamedError("raw", err)
	}
	return zap.Any("raw", raw)
}
