package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"errkit/internal/infra/settings"
	"errkit/internal/infra/telemetry"
)

// NewLogger builds the process logger from the log settings. Development
// mode uses the console encoder; otherwise entries are JSON.
func NewLogger(cfg settings.LogSettings) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String(telemetry.FieldLogSource, telemetry.LogSourceCore)), nil
}
