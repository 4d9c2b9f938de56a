package app

import (
	"errors"

	"craftlink/internal/store"
)

var (
	// ErrInvalidUserType is returned when user_type is neither customer nor craftsman.
	ErrInvalidUserType = errors.New("Invalid user type. Must be customer or craftsman")

	// ErrEmailExists aliases the store error so handlers can match either layer.
	ErrEmailExists = store.ErrEmailExists

	// ErrInvalidCredentials is returned when no account matches the login email.
	// The message deliberately does not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrTokenRequired is returned when a verify-token request carries no token.
	ErrTokenRequired = errors.New("Token is required")

	// ErrProfileNotFound is returned when a token's subject no longer resolves
	// to a stored record.
	ErrProfileNotFound = errors.New("User not found")
)

// MissingFieldError names the absent required field. CraftsmanField marks the
// fields only craftsman registrations require, which changes the message.
type MissingFieldError struct {
	Field          string
	CraftsmanField bool
}

func (e *MissingFieldError) Error() string {
	if e.CraftsmanField {
		return "Missing required field for craftsman: " + e.Field
	}
	return "Missing required field: " + e.Field
}
