package validation

import "strings"

// FieldError is a single field-scoped validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates every failing field of one input. All independent
// field failures are reported together, not just the first.
type FieldErrors []FieldError

// Error joins all field messages into one string
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Message)
	}
	return strings.Join(parts, "; ")
}

// ByField returns the message for the given field, or an empty string
func (e FieldErrors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}
