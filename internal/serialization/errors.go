package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOffsetOverlap      = errors.New("array offsets overlap")
	ErrOutOfBounds        = errors.New("array extends beyond data section")
	ErrTooManyArrays      = errors.New("too many arrays in file")
	ErrInvalidArrayName   = errors.New("invalid array name")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrArrayNotFound      = errors.New("array not found")
	ErrDTypeMismatch      = errors.New("dtype mismatch")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "offset_overlap", "out_of_bounds")
	Array   string // Primary array name involved
	Array2  string // Secondary array name (for overlap errors)
	Details string // Additional details
	Err     error  // Sentinel matched by errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Array2 != "" {
		return fmt.Sprintf("%s: arrays %q and %q: %s", e.Type, e.Array, e.Array2, e.Details)
	}
	if e.Array != "" {
		return fmt.Sprintf("%s: array %q: %s", e.Type, e.Array, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
