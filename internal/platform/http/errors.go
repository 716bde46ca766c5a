package http

import (
	"errors"
	"net/http"
)

// Error is a handler error with the status it should be answered with.
type Error struct {
	StatusCode int
	Message    string
	// Fields holds messages per input field. An error with fields is
	// rendered as a field map instead of a single message.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) HasFields() bool {
	return e.Fields != nil
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewFieldErrors reports input rejected field by field.
func NewFieldErrors(statusCode int, fields map[string][]string) *Error {
	return &Error{
		StatusCode: statusCode,
		Fields:     fields,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewPayloadTooLarge(message string, err error) *Error {
	return New(http.StatusRequestEntityTooLarge, message, err)
}

func NewUnsupportedMediaType(message string, err error) *Error {
	return New(http.StatusUnsupportedMediaType, message, err)
}

func NewUnprocessableEntity(fields map[string][]string) *Error {
	return NewFieldErrors(http.StatusUnprocessableEntity, fields)
}

// StatusCode returns the status carried by err, or 500 when err is not an
// *Error.
func StatusCode(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}
