package models

import "errors"

// ErrNotFound is returned when an operation targets a question id that does
// not exist in the collection.
var ErrNotFound = errors.New("question not found")

// ValidationError reports a missing or malformed field on a write request.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
