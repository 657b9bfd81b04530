package service

import (
	"fmt"

	"encuestas/internal/model"
)

// APIError is any non-validation failure response from the backend. The
// message is opaque: the editor surfaces it as a generic retry prompt.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// NotFound reports whether the failure should render the blocking
// not-found/permission message instead of the form.
func (e *APIError) NotFound() bool {
	return e.Status == 403 || e.Status == 404
}

// ValidationFailure is a structured 422 from the backend: field-addressable,
// recoverable by user correction, and never a reason to discard the draft.
type ValidationFailure struct {
	Errors model.ValidationErrors
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failed on %d fields", len(e.Errors))
}
