package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martancouto/juriskanban/models"
)

var (
	// ErrInvalidDataProvided is returned when a request payload is missing
	// required values before any entity-level validation can run.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrValidation is the sentinel matched by [errors.Is] for any
	// [ValidationError] carrying per-field details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on login when either the username or
	// the password is wrong. A single error for both cases keeps the
	// response from leaking which field failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongPassword is returned by ChangePassword when the supplied old
	// password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrPasswordTooShort is returned by ChangePassword when the new
	// password has fewer than MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrRegistrationClosed is returned when registration is attempted for a
	// username outside the bootstrap allow-list or after the account
	// capacity has been reached.
	ErrRegistrationClosed = errors.New("registration is closed")

	// ErrTokenIsExpiredOrInvalid is returned for any token that fails
	// verification: absent, malformed, expired, signed with a different key,
	// or belonging to a user that no longer exists.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ValidationError aggregates the field-level violations of one entity.
// It unwraps to [ErrValidation] so callers can match it with errors.Is and
// recover the field list with errors.As.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidationError returns nil when fields is empty, so callers can write
// `if err := newValidationError(entity.Validate()); err != nil { ... }`.
func newValidationError(fields []models.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
