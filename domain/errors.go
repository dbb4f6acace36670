package domain

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Authorization errors
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrUnknownPermission = errors.New("unknown permission type")

	// Article errors
	ErrArticleNotFound = errors.New("article not found")

	// Slug errors. Exhaustion means the random generator produced ten
	// colliding slugs in a row, which signals a systemic problem rather
	// than bad input.
	ErrSlugGenerationExhausted = errors.New("slug generation attempts exhausted")
)

// ValidationError carries a field-keyed validation failure, e.g. a duplicate
// slug. The REST layer renders it as a 422 with an errors map.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a field-keyed validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrDuplicateSlug builds the validation error for a slug that is already in
// use. Both the application-level existence check and the storage unique
// constraint surface through this same error.
func ErrDuplicateSlug() *ValidationError {
	return NewValidationError("slug", "the slug is already in use")
}
