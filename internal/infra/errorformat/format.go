package errorformat

import (
	"encoding/json"

	"errkit/internal/domain"
)

// Request carries the per-call inputs of Format.
type Request struct {
	Method         domain.HandlerMethod
	GenericMessage string
	HostName       string
}

// Format reduces raw to a UIError. It never fails: every path ends in a
// message, falling back to the generic message.
//
// In somethingWentWrong mode only structured bodies are inspected; text and
// exceptions are reported like opaque values.
func Format(raw domain.RawError, req Request) domain.UIError {
	generic := req.GenericMessage
	if generic == "" {
		generic = domain.DefaultSomethingWentWrongMessage
	}
	method := req.Method
	if method == "" {
		method = domain.MethodHandleError
	}
	ui := domain.UIError{
		Message:       generic,
		HostName:      req.HostName,
		FieldErrors:   []domain.FieldError{},
		HandlerMethod: method,
	}
	showDetail := method == domain.MethodHandleError

	switch v := raw.(type) {
	case domain.BodyError:
		formatBody(&ui, v.Body, generic)
	case domain.StringError:
		if !showDetail {
			formatOpaque(&ui, v.Original())
			break
		}
		if v.Text != "" {
			ui.Message = v.Text
		}
	case domain.ExceptionError:
		if !showDetail {
			formatOpaque(&ui, v.Original())
			break
		}
		if v.Message != "" {
			ui.Message = v.Message
		}
		ui.Stack = v.Stack
	case domain.OpaqueError:
		formatOpaque(&ui, v.Value)
	default:
		formatOpaque(&ui, nil)
	}
	return ui
}

// FormatValue parses and formats raw in one step.
func FormatValue(raw any, req Request) domain.UIError {
	return Format(Parse(raw), req)
}

func formatOpaque(ui *domain.UIError, value any) {
	data, err := json.Marshal(value)
	if err != nil || string(data) == "null" {
		return
	}
	payload := string(data)
	ui.Payload = &payload
}

func formatBody(ui *domain.UIError, body any, generic string) {
	decoded := decodeBody(body)
	if decoded == nil {
		return
	}
	if message, ok := decoded["message"].(string); ok && message != "" {
		ui.Message = message
	}
	output, ok := decoded["output"].(map[string]any)
	if !ok {
		return
	}

	var payload *string
	ensurePayload := func() {
		if payload == nil {
			empty := ""
			payload = &empty
		}
	}

	if records, ok := output["errors"].([]any); ok {
		for _, item := range records {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			ensurePayload()
			line := prettyMessage(record, generic)
			if label, _ := record["fieldLabel"].(string); label != "" {
				line += " [" + label + "]"
			}
			*payload += line + "\n"
		}
	}

	if fields, ok := output["fieldErrors"].(map[string]any); ok {
		for _, name := range sortedKeys(fields) {
			records, ok := fields[name].([]any)
			if !ok {
				continue
			}
			for _, item := range records {
				record, ok := item.(map[string]any)
				if !ok {
					continue
				}
				ensurePayload()
				fieldErr := domain.FieldErrorFromRecord(record)
				fieldErr.Message = fieldMessage(fieldErr, generic)
				ui.FieldErrors = append(ui.FieldErrors, fieldErr)
			}
		}
	}

	ui.Payload = payload
}
