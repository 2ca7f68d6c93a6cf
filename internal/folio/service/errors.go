package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated          = errors.New("authentication required")
	ErrForbidden                = errors.New("forbidden")
	ErrInvalidCredentials       = errors.New("invalid email/username or password")
	ErrAccountSuspended         = errors.New("account has been suspended")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrUserNotFound             = errors.New("user not found")
	ErrUsernameTaken            = errors.New("username already taken")
	ErrEmailTaken               = errors.New("email already registered")
	ErrAlreadyFollowing         = errors.New("already following this user")
	ErrNotFollowing             = errors.New("not following this user")
	ErrSelfAction               = errors.New("cannot perform this action on your own account")
	ErrStorageUnavailable       = errors.New("storage unavailable")
)

// ValidationError reports a malformed request field. Message is safe to
// show to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// InvalidCredentialsError is returned by Login for an unknown identity or a
// wrong password. The message is identical in both cases.
type InvalidCredentialsError struct {
	// AttemptsRemaining before the client is locked out
	AttemptsRemaining int
}

func (e *InvalidCredentialsError) Error() string { return ErrInvalidCredentials.Error() }

// Is lets callers match with errors.Is(err, ErrInvalidCredentials).
func (e *InvalidCredentialsError) Is(target error) bool { return target == ErrInvalidCredentials }

// TooManyAttemptsError is returned while the client is locked out.
type TooManyAttemptsError struct {
	// RetryAfter is the number of seconds until another attempt is allowed
	RetryAfter int
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("too many login attempts, retry after %ds", e.RetryAfter)
}

// storageErr wraps a persistence failure so it is never confused with a
// credential failure.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
