package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound   = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict   = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")

	ErrDuplicateRoom     = New("DUPLICATE_ROOM", http.StatusBadRequest, "room already exists")
	ErrRoomNotFound      = New("ROOM_NOT_FOUND", http.StatusNotFound, "room not found")
	ErrRoomTooSmall      = New("ROOM_TOO_SMALL", http.StatusBadRequest, "room capacity exceeded")
	ErrRoomOccupied      = New("ROOM_OCCUPIED", http.StatusConflict, "room already booked for this slot")
	ErrCohortBusy        = New("COHORT_BUSY", http.StatusConflict, "cohort already has an exam on this day")
	ErrExamNotFound      = New("EXAM_NOT_FOUND", http.StatusNotFound, "exam not found")
	ErrTermNotFound      = New("TERM_NOT_FOUND", http.StatusNotFound, "exam term not found")
	ErrInvalidTransition = New("INVALID_TRANSITION", http.StatusConflict, "term already decided")
)

// ErrCacheMiss signals an absent cache entry; callers fall through to the
// underlying store.
var ErrCacheMiss = errors.New("cache miss")

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
