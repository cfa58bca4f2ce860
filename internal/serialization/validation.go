package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxArrayCount   = 100_000           // Maximum number of arrays in a file
	MaxArrayNameLen = 4096              // Maximum array name length
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks names and counts but not offsets.
	ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone
)

// ValidateArrayOffsets checks for overlapping array regions and
// out-of-bounds access.
func ValidateArrayOffsets(arrays []ArrayMeta, dataSize int64) error {
	if len(arrays) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(arrays), MaxArrayCount),
			Err:     ErrTooManyArrays,
		}
	}

	sorted := make([]ArrayMeta, len(arrays))
	copy(sorted, arrays)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, a := range sorted {
		if a.Offset < 0 || a.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Array:   a.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", a.Offset, a.Size),
				Err:     ErrOutOfBounds,
			}
		}

		if a.Offset+a.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Array:   a.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", a.Offset, a.Size, dataSize),
				Err:     ErrOutOfBounds,
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if a.Offset+a.Size > next.Offset {
				return &ValidationError{
					Type:   "offset_overlap",
					Array:  a.Name,
					Array2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						a.Offset, a.Offset+a.Size, next.Offset, next.Offset+next.Size),
					Err: ErrOffsetOverlap,
				}
			}
		}
	}

	return nil
}

// ValidateArrayName rejects empty, oversized and path-like names.
func ValidateArrayName(name string) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_name", Array: name, Details: details, Err: ErrInvalidArrayName}
	}

	switch {
	case name == "":
		return invalid("empty name")
	case len(name) > MaxArrayNameLen:
		return invalid(fmt.Sprintf("length %d > max %d", len(name), MaxArrayNameLen))
	case strings.Contains(name, ".."):
		return invalid("contains '..'")
	case strings.ContainsAny(name, "/\\"):
		return invalid("contains path separator (/ or \\)")
	case strings.Contains(name, "\x00"):
		return invalid("contains null byte")
	}
	return nil
}

// ValidateHeader performs header validation at the given level.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Arrays) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(h.Arrays), MaxArrayCount),
			Err:     ErrTooManyArrays,
		}
	}

	for _, a := range h.Arrays {
		if err := ValidateArrayName(a.Name); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if err := ValidateArrayOffsets(h.Arrays, dataSize); err != nil {
			return err
		}
	}

	return nil
}
