package apperror

import (
	"fmt"
	"net/http"
)

// AppError is the only error type that reaches the HTTP envelope with its own
// code and message; anything else is reported as INTERNAL_ERROR.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap keeps err as the cause; a nil err yields nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// ExternalDependency wraps a failure of a collaborator (mail relay, broker).
// Callers log it; it never aborts the primary operation.
func ExternalDependency(dependency string, err error) *AppError {
	return Wrap(err, CodeExternalDependency, dependency+" unavailable", http.StatusBadGateway)
}
