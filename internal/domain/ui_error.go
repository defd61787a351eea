package domain

import (
	"encoding/json"
	"maps"
)

// HandlerMethod names the entry point that produced a UIError.
type HandlerMethod string

const (
	MethodHandleError        HandlerMethod = "handleError"
	MethodSomethingWentWrong HandlerMethod = "somethingWentWrong"
)

// UIError is the normalized, displayable form of a raw error.
type UIError struct {
	Message       string        `json:"message"`
	Payload       *string       `json:"payload,omitempty"`
	Stack         string        `json:"stack,omitempty"`
	HostName      string        `json:"hostName,omitempty"`
	FieldErrors   []FieldError  `json:"fieldErrors"`
	HandlerMethod HandlerMethod `json:"handlerMethod"`
}

// HasPayload reports whether the payload is present, even if empty.
func (e UIError) HasPayload() bool {
	return e.Payload != nil
}

// PayloadText returns the payload or "" when absent.
func (e UIError) PayloadText() string {
	if e.Payload == nil {
		return ""
	}
	return *e.Payload
}

// HasDetail reports whether there is anything beyond the summary to show.
func (e UIError) HasDetail() bool {
	return e.PayloadText() != "" || len(e.FieldErrors) > 0
}

// FieldError is one validation failure attributed to a named input field.
// Attributes holds every attribute of the source record. When encoding, the
// message always wins; the other named fields replace only string or missing
// attributes, so non-string values from the record survive.
type FieldError struct {
	Field      string
	FieldLabel string
	Message    string
	ErrorCode  string
	Attributes map[string]any
}

// Key identifies the field error for rendering.
func (f FieldError) Key() string {
	if name, ok := f.Attributes["fieldName"].(string); ok && name != "" {
		return name
	}
	if f.Field != "" {
		return f.Field
	}
	return f.FieldLabel
}

func (f FieldError) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.Attributes)+4)
	maps.Copy(out, f.Attributes)
	setStringAttr(out, "field", f.Field)
	setStringAttr(out, "fieldLabel", f.FieldLabel)
	setStringAttr(out, "errorCode", f.ErrorCode)
	out["message"] = f.Message
	return json.Marshal(out)
}

func (f *FieldError) UnmarshalJSON(data []byte) error {
	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	*f = FieldErrorFromRecord(attrs)
	return nil
}

// FieldErrorFromRecord builds a FieldError from a decoded error record.
func FieldErrorFromRecord(record map[string]any) FieldError {
	attrs := make(map[string]any, len(record))
	maps.Copy(attrs, record)
	return FieldError{
		Field:      stringAttr(record, "field"),
		FieldLabel: stringAttr(record, "fieldLabel"),
		Message:    stringAttr(record, "message"),
		ErrorCode:  stringAttr(record, "errorCode"),
		Attributes: attrs,
	}
}

func stringAttr(record map[string]any, key string) string {
	value, _ := record[key].(string)
	return value
}

func setStringAttr(out map[string]any, key, value string) {
	current := out[key]
	if _, ok := current.(string); ok || (current == nil && value != "") {
		out[key] = value
	}
}
