package errorhandler

import (
	"slices"

	"errkit/internal/domain"
)

// DefaultOptions returns the baseline every call is merged onto.
func DefaultOptions() domain.Options {
	return domain.Options{
		DisableDebounce:           domain.Bool(false),
		SomethingWentWrongMessage: domain.DefaultSomethingWentWrongMessage,
		Actions:                   domain.StandardActions(),
	}
}

// ForElement is the shorthand call form carrying only the host element.
func ForElement(host domain.Host) domain.Options {
	return domain.Options{Element: host}
}

// Merge applies override on top of defaults. Each field set in override
// replaces the default; unset fields keep it. Slices and pointers are copied so callers
// cannot mutate pre-bound defaults.
func Merge(defaults, override domain.Options) domain.Options {
	merged := defaults
	if override.Element != nil {
		merged.Element = override.Element
	}
	if override.Type != domain.ChannelUnset {
		merged.Type = override.Type
	}
	if override.DisableDebounce != nil {
		merged.DisableDebounce = override.DisableDebounce
	}
	if override.SomethingWentWrongMessage != "" {
		merged.SomethingWentWrongMessage = override.SomethingWentWrongMessage
	}
	if override.Actions != nil {
		merged.Actions = override.Actions
	}
	if override.Logger != nil {
		merged.Logger = override.Logger
	}
	if merged.DisableDebounce != nil {
		merged.DisableDebounce = domain.Bool(*merged.DisableDebounce)
	}
	merged.Actions = slices.Clone(merged.Actions)
	return merged
}
