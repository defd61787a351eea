package errorformat

import (
	"strings"

	"errkit/internal/domain"
)

// prettyMessage hides trigger and DML internals behind the generic message.
func prettyMessage(record map[string]any, generic string) string {
	code, _ := record["errorCode"].(string)
	if code == domain.ErrorCodeCannotInsertUpdateActivateEntity {
		return generic
	}
	message, _ := record["message"].(string)
	return message
}

// fieldMessage applies prettyMessage, then drops the enumerated field list
// backends append to REQUIRED_FIELD_MISSING messages.
func fieldMessage(fieldErr domain.FieldError, generic string) string {
	message := prettyMessage(fieldErr.Attributes, generic)
	if fieldErr.ErrorCode != domain.ErrorCodeRequiredFieldMissing {
		return message
	}
	if idx := strings.Index(message, ":"); idx >= 0 {
		return message[:idx]
	}
	return message
}
