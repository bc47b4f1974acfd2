package services

import "errors"

var (
	// ErrAlreadyEnrolled: register attempted for an id that already has a
	// principal row.
	ErrAlreadyEnrolled = errors.New("a user with this email is already enrolled")
	// ErrUserNotFound: login or user-check for an id with no principal row.
	ErrUserNotFound = errors.New("user does not exist, please register first")
)

// RejectionError means the provider answered and the verdict was negative.
// Message is already user-facing (derived from the indicators) and maps to
// a 401, never to a 5xx.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string { return e.Message }
