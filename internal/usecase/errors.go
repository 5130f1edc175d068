package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound maps to a 404 for missing path-referenced objects, including a
// parent that does not match its stated scope.
var ErrNotFound = errors.New("not found")

// ErrInvalidConfirmationCode deliberately does not say which field was wrong.
var ErrInvalidConfirmationCode = errors.New("invalid confirmation code")

// ValidationError carries field-keyed messages for a 400 response.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func newFieldError(field, message string) *ValidationError {
	err := &ValidationError{}
	err.Add(field, message)
	return err
}

// ForbiddenError maps to a 403 with a role-specific message.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}
