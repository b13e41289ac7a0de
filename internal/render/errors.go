package render

import "fmt"

// MissingFieldError is returned when a required notice field is absent.
// The layouts have no fallback for any of them, so rendering stops before
// the template runs.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}
