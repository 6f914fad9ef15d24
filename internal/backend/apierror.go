package backend

// APIError is the normalized form of every backend or transport failure.
// Message is always human-readable; Status carries the HTTP status code when
// one was received; Details carries the structured payload the backend
// attached to the failure (e.g. remaining lockout time).
type APIError struct {
	Message string
	Status  int
	Details interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

// RemainingMs extracts the PIN-lockout countdown from Details, if present
func (e *APIError) RemainingMs() (int64, bool) {
	details, ok := e.Details.(map[string]interface{})
	if !ok {
		return 0, false
	}
	raw, ok := details["remainingMs"]
	if !ok {
		return 0, false
	}
	// JSON numbers decode as float64
	ms, ok := raw.(float64)
	if !ok || ms <= 0 {
		return 0, false
	}
	return int64(ms), true
}
