package api

import "errors"

// ErrMissingFields is returned when the payload lacks a date or a
// non-empty task list. Its text is part of the API contract.
var ErrMissingFields = errors.New("Missing required fields: date and tasks")

// MalformedInputError reports a request body that could not be parsed
// as JSON. It carries the parser diagnostic for the client.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return "Invalid JSON: " + e.Err.Error()
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
