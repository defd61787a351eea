package errorformat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"errkit/internal/domain"
)

// Classify reports the shape of raw without formatting it.
func Classify(raw any) domain.Shape {
	return Parse(raw).Shape()
}

// Parse classifies raw into one of the closed RawError variants.
//
// Priority: text, exception (message with stack), structured body, plain Go
// error, opaque. Plain errors without a stack are matched after the body
// check so API error types implementing error keep their body.
func Parse(raw any) domain.RawError {
	switch v := raw.(type) {
	case nil:
		return domain.OpaqueError{}
	case domain.RawError:
		return v
	case string:
		return domain.StringError{Text: v}
	case json.RawMessage:
		return parseJSONValue(v, raw)
	case []byte:
		return parseJSONValue(v, raw)
	case error:
		return parseGoError(v)
	case map[string]any:
		return parseObject(v)
	case domain.BodyCarrier:
		if body := v.ErrorBody(); body != nil {
			return domain.BodyError{Body: body, Value: raw}
		}
	}
	return domain.OpaqueError{Value: raw}
}

// ParseJSON decodes a JSON document and classifies the decoded value.
func ParseJSON(data []byte) (domain.RawError, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, domain.ErrEmptyInput
	}
	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, fmt.Errorf("decode raw error: %w", err)
	}
	return Parse(value), nil
}

func parseJSONValue(data json.RawMessage, raw any) domain.RawError {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return domain.OpaqueError{Value: raw}
	}
	return Parse(value)
}

func parseGoError(err error) domain.RawError {
	if tracer, ok := err.(domain.StackTracer); ok {
		return domain.ExceptionError{Message: err.Error(), Stack: tracer.StackTrace(), Value: err}
	}
	var carrier domain.BodyCarrier
	if errors.As(err, &carrier) {
		if body := carrier.ErrorBody(); body != nil {
			return domain.BodyError{Body: body, Value: err}
		}
	}
	return domain.ExceptionError{Message: err.Error(), Value: err}
}

func parseObject(obj map[string]any) domain.RawError {
	message, hasMessage := obj["message"]
	stack, hasStack := obj["stack"]
	if hasMessage && hasStack {
		return domain.ExceptionError{
			Message: textOf(message),
			Stack:   textOf(stack),
			Value:   obj,
		}
	}
	if body, ok := obj["body"]; ok && body != nil {
		return domain.BodyError{Body: body, Value: obj}
	}
	return domain.OpaqueError{Value: obj}
}

func textOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
