// Package common holds helpers shared by the application services.
package common

import "fmt"

// Operation names a service action in error messages.
type Operation string

// Operations reported by the find services.
const (
	OpFind          Operation = "find pattern"
	OpFindAll       Operation = "find all matches"
	OpBetween       Operation = "extract text between delimiters"
	OpConvertOffset Operation = "convert offset"
)

// ServiceError attaches the failed operation to an error from the domain.
type ServiceError struct {
	Operation Operation
	Cause     error
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e ServiceError) Unwrap() error {
	return e.Cause
}

// WrapServiceError returns nil for a nil err.
func WrapServiceError(op Operation, err error) error {
	if err == nil {
		return nil
	}
	return ServiceError{Operation: op, Cause: err}
}
