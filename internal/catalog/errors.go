package catalog

import "errors"

// ErrNotFound is returned when a referenced game or comment does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError carries a user-facing message suitable for a flash.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
