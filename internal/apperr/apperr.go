// Package apperr defines the error taxonomy shared by logic and handlers.
// Every failure leaving the logic layer is one of these kinds; anything else
// is treated as internal and hidden behind a generic message.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unauthenticated() error {
	return &Error{Kind: KindUnauthenticated, Message: "login required"}
}

func Forbidden() error {
	return &Error{Kind: KindForbidden, Message: "permission denied"}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf classifies err; unknown errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
