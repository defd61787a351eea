package domain

import "time"

const (
	DefaultSomethingWentWrongMessage = "Something went wrong."
	DefaultDebounceDelay             = time.Second
	DefaultLogLevel                  = "info"
	DefaultOutputFormat              = "json"
)

// Backend error codes that trigger redaction.
const (
	ErrorCodeCannotInsertUpdateActivateEntity = "CANNOT_INSERT_UPDATE_ACTIVATE_ENTITY"
	ErrorCodeRequiredFieldMissing             = "REQUIRED_FIELD_MISSING"
)

// Action defaults mirror the single footer button of the error modal.
const (
	DefaultActionName    = "close"
	DefaultActionLabel   = "Close"
	DefaultActionVariant = "neutral"
)

// StandardActions returns a fresh copy of the default modal footer.
func StandardActions() []Action {
	return []Action{{
		Name:    DefaultActionName,
		Label:   DefaultActionLabel,
		Variant: DefaultActionVariant,
	}}
}
