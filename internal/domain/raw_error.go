package domain

import (
	"fmt"
	"net/http"
)

// Shape names the input shape of a raw error value.
type Shape string

const (
	ShapeString         Shape = "string"
	ShapeException      Shape = "exception"
	ShapeStructuredBody Shape = "structured_body"
	ShapeOpaque         Shape = "opaque"
)

// RawError is the closed set of error shapes accepted by the formatter.
// Values are produced by errorformat.Parse; the variants below are the only
// implementations.
type RawError interface {
	Shape() Shape
	// Original returns the caller's value before classification.
	Original() any
	rawError()
}

// StringError is a plain text error.
type StringError struct {
	Text string
}

func (e StringError) Shape() Shape  { return ShapeString }
func (e StringError) Original() any { return e.Text }
func (StringError) rawError()       {}

// ExceptionError is an error exposing a message and an optional stack trace.
type ExceptionError struct {
	Message string
	Stack   string
	Value   any
}

func (e ExceptionError) Shape() Shape  { return ShapeException }
func (e ExceptionError) Original() any { return e.Value }
func (ExceptionError) rawError()       {}

// BodyError is a structured API error. Body is a JSON string, raw JSON bytes,
// a decoded JSON object, or any value that encodes to one.
type BodyError struct {
	Body  any
	Value any
}

func (e BodyError) Shape() Shape  { return ShapeStructuredBody }
func (e BodyError) Original() any { return e.Value }
func (BodyError) rawError()       {}

// OpaqueError wraps any value no other shape matched.
type OpaqueError struct {
	Value any
}

func (e OpaqueError) Shape() Shape  { return ShapeOpaque }
func (e OpaqueError) Original() any { return e.Value }
func (OpaqueError) rawError()       {}

// BodyCarrier is implemented by errors that carry a structured response body.
type BodyCarrier interface {
	ErrorBody() any
}

// StackTracer is implemented by errors that captured a stack trace.
type StackTracer interface {
	StackTrace() string
}

// APIError is a failed API response with a structured body.
type APIError struct {
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
	Body       any    `json:"body,omitempty"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	text := e.StatusText
	if text == "" && e.Status != 0 {
		text = http.StatusText(e.Status)
	}
	if e.Status == 0 {
		if text == "" {
			return "api error"
		}
		return text
	}
	return fmt.Sprintf("api error %d: %s", e.Status, text)
}

func (e *APIError) ErrorBody() any {
	if e == nil {
		return nil
	}
	return e.Body
}
