package domain

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidTitle         = errors.New("invalid title")
	ErrInvalidEmbedURL      = errors.New("invalid embed url")
	ErrMissingFile          = errors.New("no file provided")
	ErrUnsupportedMediaType = errors.New("only image files are allowed")
	ErrStorageWriteFailed   = errors.New("failed to save file")
	ErrPersistence          = errors.New("persistence error")
	ErrVideoNotFound        = errors.New("video not found")
)

// ValidationError is a user-correctable input error. It matches both
// ErrValidation and its specific Kind under errors.Is.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}
