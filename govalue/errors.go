package govalue

import (
	"errors"
	"fmt"
)

// ErrUnsupported reports a Go type that has no jval representation.
var ErrUnsupported = errors.New("unsupported type")

// ErrCircular reports a value that reaches itself.
var ErrCircular = errors.New("circular reference")

// ConvertError describes a conversion failure, including the path of
// the field where it occurred.
type ConvertError struct {
	// FieldPath is the path to the value that failed, like
	// "user.addresses[0].zip". Empty for the root value.
	FieldPath string

	// Message describes what went wrong.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *ConvertError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("govalue: %s", e.Message)
	}
	return fmt.Sprintf("govalue: %s at %s", e.Message, e.FieldPath)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

func convertErrorf(path string, err error, format string, args ...any) *ConvertError {
	return &ConvertError{
		FieldPath: path,
		Message:   fmt.Sprintf(format, args...),
		Err:       err,
	}
}
