package geometry

import (
	"errors"
	"fmt"
)

// StatusCode classifies why a calculation was rejected.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// Error is returned when an input is outside a function's domain.
type Error struct {
	Code    StatusCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewInvalidArgumentf creates an INVALID_ARGUMENT error with a formatted message.
func NewInvalidArgumentf(format string, args ...interface{}) *Error {
	return &Error{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err, or anything it wraps, is an INVALID_ARGUMENT Error.
func IsInvalidArgument(err error) bool {
	var gErr *Error
	return errors.As(err, &gErr) && gErr.Code == StatusInvalidArgument
}
