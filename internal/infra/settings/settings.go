package settings

import (
	"time"

	"errkit/internal/domain"
)

// Settings is the file and environment form of the handler defaults.
type Settings struct {
	SomethingWentWrongMessage string
	DisableDebounce           bool
	DebounceDelay             time.Duration
	Type                      domain.Channel
	Actions                   []domain.Action
	Log                       LogSettings
	Metrics                   MetricsSettings
}

// MetricsSettings enables the Prometheus endpoint when ListenAddress is set.
type MetricsSettings struct {
	ListenAddress string
}

type LogSettings struct {
	Level       string
	Development bool
}

// Defaults returns the settings used when no file or environment overrides
// are present.
func Defaults() Settings {
	return Settings{
		SomethingWentWrongMessage: domain.DefaultSomethingWentWrongMessage,
		DebounceDelay:             domain.DefaultDebounceDelay,
		Actions:                   domain.StandardActions(),
		Log: LogSettings{
			Level: domain.DefaultLogLevel,
		},
	}
}

// Options converts the settings into handler defaults.
func (s Settings) Options() domain.Options {
	actions := make([]domain.Action, len(s.Actions))
	copy(actions, s.Actions)
	return domain.Options{
		Type:                      s.Type,
		DisableDebounce:           domain.Bool(s.DisableDebounce),
		SomethingWentWrongMessage: s.SomethingWentWrongMessage,
		Actions:                   actions,
	}
}
