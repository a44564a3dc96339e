package errors

import (
	"fmt"
)

// Error is the interface of the errors built by this package. The code is
// an HTTP status code, used by the transport layer to answer with the
// right status without knowing anything about the error itself.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode defines the code used when none is given. It is set to 500,
// Internal Server Error.
var DefaultCode = 500

type codedError struct {
	code  int
	msg   string
	cause error
}

func (err *codedError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *codedError) Code() int {
	return err.code
}

func (err *codedError) Message() string {
	return err.msg
}

func (err *codedError) Cause() error {
	return err.cause
}

func (err *codedError) Unwrap() error {
	return err.cause
}

// An ErrorEnricher adds information to an error, typically a code or a
// cause.
type ErrorEnricher func(error) error

// New creates an error with the given message and applies the enrichers in
// order.
func New(msg string, fs ...ErrorEnricher) error {
	var err error = &codedError{
		code: DefaultCode,
		msg:  msg,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// WithCode sets the code of the error it enriches.
func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if cErr, ok := err.(*codedError); ok {
			cErr.code = code
			return cErr
		}

		return &codedError{
			code: code,
			msg:  err.Error(),
		}
	}
}

// WithCause attaches the underlying error. The cause appears in Error()
// but not in Message(), so an internal detail can be logged without being
// shown to the visitor.
func WithCause(cause error) ErrorEnricher {
	return func(err error) error {
		if cErr, ok := err.(*codedError); ok {
			cErr.cause = cause
			return cErr
		}

		return &codedError{
			code:  DefaultCode,
			msg:   err.Error(),
			cause: cause,
		}
	}
}
