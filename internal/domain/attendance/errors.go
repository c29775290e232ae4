package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrMissingField  = errors.New("missing required field")
	ErrEmployeeScope = errors.New("record belongs to another employee")
)

// MissingFieldError names the record and field that failed the shape check.
type MissingFieldError struct {
	Entity string
	ID     string
	Field  string
}

func (e *MissingFieldError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s is required", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s %s: %s is required", e.Entity, e.ID, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
