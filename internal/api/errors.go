package api

// Error is the failure shape surfaced for any non-success API response.
//
// Message prefers the server-supplied "detail" field when the body was
// JSON, then the standard status text, then a generic fallback. Details
// always carries the decoded response body, whatever its shape.
type Error struct {
	Message string
	Status  int
	Details any
}

func (e *Error) Error() string {
	return e.Message
}
