package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"errkit/internal/domain"
)

// EnvPrefix namespaces environment overrides, e.g. ERRKIT_DEBOUNCEMILLIS.
const EnvPrefix = "ERRKIT"

const opLoad = "settings.Load"

type rawSettings struct {
	SomethingWentWrongMessage string      `mapstructure:"somethingWentWrongMessage"`
	DisableDebounce           bool        `mapstructure:"disableDebounce"`
	DebounceMillis            int         `mapstructure:"debounceMillis"`
	Type                      string      `mapstructure:"type"`
	Actions                   []rawAction `mapstructure:"actions"`
	Log                       rawLog      `mapstructure:"log"`
	Metrics                   rawMetrics  `mapstructure:"metrics"`
}

type rawAction struct {
	Name    string `mapstructure:"name"`
	Label   string `mapstructure:"label"`
	Variant string `mapstructure:"variant"`
}

type rawMetrics struct {
	ListenAddress string `mapstructure:"listenAddress"`
}

type rawLog struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("settings")}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("somethingWentWrongMessage", domain.DefaultSomethingWentWrongMessage)
	v.SetDefault("disableDebounce", false)
	v.SetDefault("debounceMillis", int(domain.DefaultDebounceDelay/time.Millisecond))
	v.SetDefault("type", "")
	v.SetDefault("log.level", domain.DefaultLogLevel)
	v.SetDefault("log.development", false)
	v.SetDefault("metrics.listenAddress", "")
}

// Load reads settings from path, or from defaults and environment alone when
// path is empty. The file type follows the extension; unknown extensions are
// read as YAML.
func (l *Loader) Load(path string) (Settings, error) {
	v := newViper()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, domain.E(domain.CodeInvalidConfig, opLoad, "read config", err)
		}
		v.SetConfigType(configType(path))
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return Settings{}, domain.E(domain.CodeInvalidConfig, opLoad, "parse config", err)
		}
	}

	var raw rawSettings
	if err := v.Unmarshal(&raw); err != nil {
		return Settings{}, domain.E(domain.CodeInvalidConfig, opLoad, "decode config", err)
	}
	s, err := normalize(raw)
	if err != nil {
		return Settings{}, domain.E(domain.CodeInvalidConfig, opLoad, "", err)
	}
	l.logger.Debug("settings loaded",
		zap.String("path", path),
		zap.Duration("debounce", s.DebounceDelay),
		zap.String("type", string(s.Type)),
	)
	return s, nil
}

func configType(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		return "json"
	case "toml":
		return "toml"
	default:
		return "yaml"
	}
}

func normalize(raw rawSettings) (Settings, error) {
	var errs []error
	s := Defaults()

	if msg := strings.TrimSpace(raw.SomethingWentWrongMessage); msg != "" {
		s.SomethingWentWrongMessage = msg
	}
	s.DisableDebounce = raw.DisableDebounce

	switch {
	case raw.DebounceMillis < 0:
		errs = append(errs, fmt.Errorf("debounceMillis must be >= 0, got %d", raw.DebounceMillis))
	case raw.DebounceMillis > 0:
		s.DebounceDelay = time.Duration(raw.DebounceMillis) * time.Millisecond
	}

	channel, err := domain.ParseChannel(strings.ToLower(strings.TrimSpace(raw.Type)))
	if err != nil {
		errs = append(errs, fmt.Errorf("type: %w", err))
	}
	s.Type = channel

	if len(raw.Actions) > 0 {
		s.Actions = make([]domain.Action, 0, len(raw.Actions))
		for i, action := range raw.Actions {
			if action.Name == "" {
				errs = append(errs, fmt.Errorf("actions[%d]: name is required", i))
				continue
			}
			label := action.Label
			if label == "" {
				label = action.Name
			}
			variant := action.Variant
			if variant == "" {
				variant = domain.DefaultActionVariant
			}
			s.Actions = append(s.Actions, domain.Action{Name: action.Name, Label: label, Variant: variant})
		}
	}

	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		s.Log.Level = strings.ToLower(level)
	}
	s.Log.Development = raw.Log.Development
	s.Metrics.ListenAddress = strings.TrimSpace(raw.Metrics.ListenAddress)

	if len(errs) > 0 {
		return Settings{}, errors.Join(errs...)
	}
	return s, nil
}
