package ctdf

import "errors"

var (
	ErrNotFound            = errors.New("line not found")
	ErrMalformedIdentifier = errors.New("invalid line id")
	ErrInvalidIndex        = errors.New("invalid stop index")
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("line was modified by another request")
)

// ErrorKind returns the machine checkable kind of a domain error, or "internal" for anything else
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMalformedIdentifier):
		return "malformed_identifier"
	case errors.Is(err, ErrInvalidIndex):
		return "invalid_index"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
