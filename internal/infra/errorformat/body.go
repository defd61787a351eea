package errorformat

import (
	"encoding/json"
	"sort"
)

// decodeBody returns the object describing a structured error. A body whose
// message is itself a JSON object decodes to that object; otherwise the body
// is used as is. Nil and undecodable bodies yield nil.
func decodeBody(body any) map[string]any {
	obj := asObject(body)
	if obj == nil {
		return nil
	}
	if text, ok := obj["message"].(string); ok {
		var inner map[string]any
		if err := json.Unmarshal([]byte(text), &inner); err == nil && inner != nil {
			return inner
		}
	}
	return obj
}

func asObject(value any) map[string]any {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	case string:
		return unmarshalObject([]byte(v))
	case []byte:
		return unmarshalObject(v)
	case json.RawMessage:
		return unmarshalObject(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return unmarshalObject(data)
	}
}

func unmarshalObject(data []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	return obj
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
