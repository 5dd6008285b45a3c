package util

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUnknownTier        = errors.New("unknown test tier")
	ErrLevelNameTaken     = errors.New("level name already in use")
	ErrLevelScoreTaken    = errors.New("level score already in use")
)

// ValidationError reports a missing or malformed request field. It is raised
// before any store I/O so a malformed submission never touches the database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
