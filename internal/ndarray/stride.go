package ndarray

import "fmt"

// strideOffset returns Σ index[k]*strides[k] without bounds checking.
func strideOffset(strides, index Dim) int {
	off := 0
	for k := 0; k < index.rank; k++ {
		off += index.ext[k] * strides.ext[k]
	}
	return off
}

// strideOffsetChecked is strideOffset but reports false when any
// index component is outside [0, dim[k]).
func strideOffsetChecked(dim, strides, index Dim) (int, bool) {
	off := 0
	for k := 0; k < dim.rank; k++ {
		i := index.ext[k]
		if i < 0 || i >= dim.ext[k] {
			return 0, false
		}
		off += i * strides.ext[k]
	}
	return off, true
}

// indexDim converts variadic indices into a Dim aligned with dim.
// Negative or too-large components are kept so the checked offset rejects them.
func indexDim(dim Dim, indices []int) (Dim, error) {
	if len(indices) != dim.rank {
		return Dim{}, fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, dim.rank, len(indices))
	}
	idx := zeroDim(dim.rank)
	copy(idx.ext[:], indices)
	return idx, nil
}

// outOfBounds builds the error reported for an index outside dim.
func outOfBounds(dim Dim, indices []int) error {
	return fmt.Errorf("%w: index %v for shape %v", ErrIndexOutOfBounds, indices, dim)
}
