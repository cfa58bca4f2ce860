package ndarray

import "errors"

// Sentinel errors. Operations wrap these with context via fmt.Errorf, so
// callers should match them with errors.Is.
var (
	// ErrRankMismatch is returned when the number of slice descriptors or
	// indices differs from the array's rank, or an operation needs a
	// specific rank (MatMul needs 2).
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrShapeMismatch is returned when elementwise operands or equality
	// operands have different shapes, or matmul inner dimensions differ.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrSizeMismatch is returned when a reshape target or a wrapped slice
	// holds a different number of elements than required.
	ErrSizeMismatch = errors.New("ndarray: size mismatch")

	// ErrIndexOutOfBounds indicates an index or slice bound outside its axis.
	ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrInvalidStep is returned for a slice descriptor with step 0.
	ErrInvalidStep = errors.New("ndarray: slice step must be non-zero")

	// ErrUncheckedSizeViolation signals that an array built with
	// FromSliceUnchecked addressed an element outside its buffer.
	ErrUncheckedSizeViolation = errors.New("ndarray: element offset outside buffer")

	// ErrRankTooLarge is returned when a dimension exceeds MaxRank axes.
	ErrRankTooLarge = errors.New("ndarray: rank exceeds maximum")

	// ErrNegativeExtent is returned for a dimension with a negative extent.
	ErrNegativeExtent = errors.New("ndarray: negative extent")

	// ErrInvalidAxis is returned when an axis argument is not in [0, rank).
	ErrInvalidAxis = errors.New("ndarray: invalid axis")

	// ErrSliceSyntax is returned by ParseSlice for malformed input.
	ErrSliceSyntax = errors.New("ndarray: invalid slice syntax")

	// ErrSizeOverflow is returned when the product of the extents does not
	// fit in an int.
	ErrSizeOverflow = errors.New("ndarray: element count overflows int")
)
