package presenter

import (
	"encoding/json"
	"fmt"

	"errkit/internal/domain"
)

// Event names shared with the frontend.
const (
	EventToast       = "errkit:toast"
	EventModalOpen   = "errkit:modal:open"
	EventModalClosed = "errkit:modal:closed"
)

// ToastEvent asks the frontend to show a sticky error toast.
type ToastEvent struct {
	Host    string `json:"host,omitempty"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Mode    string `json:"mode"`
	Variant string `json:"variant"`
}

// ModalOpenEvent asks the frontend to open the error modal.
type ModalOpenEvent struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Size        string            `json:"size"`
	FieldErrors []ModalFieldError `json:"fieldErrors"`
	Actions     []domain.Action   `json:"actions"`
}

// ModalFieldError is a field error keyed for list rendering.
type ModalFieldError struct {
	Key string `json:"key"`
	domain.FieldError
}

func (f ModalFieldError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(f.FieldError)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	obj["key"] = f.Key
	return json.Marshal(obj)
}

// ModalClosedEvent reports which action dismissed a modal.
type ModalClosedEvent struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

func decodeModalClosed(data any) (ModalClosedEvent, error) {
	if list, ok := data.([]any); ok {
		if len(list) == 0 {
			return ModalClosedEvent{}, fmt.Errorf("empty %s payload", EventModalClosed)
		}
		data = list[0]
	}
	var raw []byte
	switch v := data.(type) {
	case ModalClosedEvent:
		return v, nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ModalClosedEvent{}, fmt.Errorf("encode %s payload: %w", EventModalClosed, err)
		}
		raw = encoded
	}
	var event ModalClosedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return ModalClosedEvent{}, fmt.Errorf("decode %s payload: %w", EventModalClosed, err)
	}
	if event.ID == "" {
		return ModalClosedEvent{}, fmt.Errorf("%s payload missing id", EventModalClosed)
	}
	return event, nil
}
