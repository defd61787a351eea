package domain

import "fmt"

// Channel selects how a UIError is presented.
type Channel string

const (
	ChannelUnset Channel = ""
	ChannelModal Channel = "modal"
	ChannelToast Channel = "toast"
)

// ParseChannel accepts "", "modal", "prompt" (alias for modal) and "toast".
func ParseChannel(value string) (Channel, error) {
	switch value {
	case "":
		return ChannelUnset, nil
	case "modal", "prompt":
		return ChannelModal, nil
	case "toast":
		return ChannelToast, nil
	default:
		return ChannelUnset, fmt.Errorf("%w: %q", ErrInvalidChannel, value)
	}
}

// Host is the UI element an error is reported from.
type Host interface {
	HostName() string
}

// HostName names a host by its identifier alone.
type HostName string

func (h HostName) HostName() string { return string(h) }

// Action is a modal footer button.
type Action struct {
	Name    string `json:"name" mapstructure:"name"`
	Label   string `json:"label" mapstructure:"label"`
	Variant string `json:"variant" mapstructure:"variant"`
	OnClick func() `json:"-" mapstructure:"-"`
}

// Options configures a single error handler call. Zero fields are unset and
// inherit the defaults they are merged onto.
type Options struct {
	Element                   Host
	Type                      Channel
	DisableDebounce           *bool
	SomethingWentWrongMessage string
	Actions                   []Action
	Logger                    Logger
}

// DebounceDisabled reports the effective debounce switch.
func (o Options) DebounceDisabled() bool {
	return o.DisableDebounce != nil && *o.DisableDebounce
}

// ResolveHostName returns the element's identifier, or "" without an element.
func (o Options) ResolveHostName() string {
	if o.Element == nil {
		return ""
	}
	return o.Element.HostName()
}

// Bool returns a pointer to value, for tri-state option fields.
func Bool(value bool) *bool {
	return &value
}
