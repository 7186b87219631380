// Package errors defines the error kinds handlers answer with.
//
// Handlers compare with errors.Is against the sentinels, or unwrap with
// errors.As to read the HTTP status and message:
//
//	var e *errors.Error
//	if errors.As(err, &e) {
//	    c.JSON(e.HTTPStatus(), gin.H{"error": e.Message})
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// Code is a machine-readable error kind.
type Code string

const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeBadRequest Code = "BAD_REQUEST"
	CodeInternal   Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a code and the message written to the response body.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status for this error.
func (e *Error) HTTPStatus() int { return e.Code.HTTPStatus() }

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, cause: err}
}

// Messages used by the hbnb API. Clients match on them.
const (
	MsgNotFound      = "Not found"
	MsgNotJSON       = "Not a JSON"
	MsgMissingUserID = "Missing user_id"
	MsgMissingText   = "Missing text"
)

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound   = &Error{Code: CodeNotFound, Message: MsgNotFound}
	ErrBadRequest = &Error{Code: CodeBadRequest, Message: "bad request"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "server_error"}

	ErrNotJSON       = BadRequest(MsgNotJSON)
	ErrMissingUserID = BadRequest(MsgMissingUserID)
	ErrMissingText   = BadRequest(MsgMissingText)
)

// NotFound creates a not found error. An empty msg uses MsgNotFound.
func NotFound(msg string) *Error {
	if msg == "" {
		msg = MsgNotFound
	}
	return &Error{Code: CodeNotFound, Message: msg}
}

// BadRequest creates a bad request error.
func BadRequest(msg string) *Error {
	return &Error{Code: CodeBadRequest, Message: msg}
}

// BadRequestf creates a bad request error with a formatted message.
func BadRequestf(format string, args ...any) *Error {
	return &Error{Code: CodeBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps a storage or programming fault.
func Internal(err error) *Error {
	return ErrInternal.WithCause(err)
}
