package services

import "errors"

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrResourceExists     = errors.New("resource already exists")
	ErrValidation         = errors.New("validation error")

	// ErrForbidden covers both "does not exist" and "belongs to someone
	// else" so callers cannot probe for other users' resources.
	ErrForbidden = errors.New("forbidden")

	// ErrTagConflict is returned internally when a concurrent writer created
	// the same tag first. It never leaves the tag resolver.
	ErrTagConflict = errors.New("tag created concurrently")
)

// ValidationError describes a rejected input field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
