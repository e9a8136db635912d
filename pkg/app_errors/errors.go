package apperrors

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrSlugConflict       = errors.New("an event with this slug already exists")
	ErrInvalidStepIndex   = errors.New("invalid step index")
	ErrEventLocked        = errors.New("event is locked")
	ErrInvalidInput       = errors.New("invalid input")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("admin access required")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCacheMiss          = errors.New("cache miss")
	ErrImageNotFound      = errors.New("image not found")
	ErrUnsupportedMedia   = errors.New("only images are allowed")
	ErrQueueFull          = errors.New("step update queue is full")
	ErrQueueClosed        = errors.New("step update queue is closed")
)

// FieldError describes one rejected field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the field-level breakdown of a rejected request.
// errors.Is(err, ErrValidation) reports true for it.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no field was rejected, so callers can write
// `return v.OrNil()` after collecting checks.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
