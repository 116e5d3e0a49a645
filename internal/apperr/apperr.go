package apperr

import (
	"errors"
	"net/http"
)

// Domain error taxonomy. Services return these (or wrap them); the
// handler layer maps them to HTTP statuses via Status and never leaks
// anything it doesn't recognize.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post has not yet been liked")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpstream           = errors.New("upstream service error")
)

// FieldError is a single failed check on a request field.
type FieldError struct {
	Field   string `json:"param,omitempty"`
	Message string `json:"msg"`
}

// ValidationError carries one or more field-level messages and maps to
// a 400 with the full list in the body.
type ValidationError struct {
	Errors []FieldError
}

func (v *ValidationError) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Validation builds a ValidationError from (field, message) pairs.
func Validation(pairs ...string) *ValidationError {
	ve := &ValidationError{}
	for i := 0; i+1 < len(pairs); i += 2 {
		ve.Errors = append(ve.Errors, FieldError{Field: pairs[i], Message: pairs[i+1]})
	}
	return ve
}

// Status maps a domain error to its HTTP status code. Unknown errors
// are internal.
func Status(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotAuthorized), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyLiked),
		errors.Is(err, ErrNotLiked),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrUserExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
