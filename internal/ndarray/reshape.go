package ndarray

import "fmt"

// Reshape returns a view with the given dim holding the same elements in
// row-major order. Returns ErrSizeMismatch if the element counts differ.
//
// A contiguous view is reshaped without copying: the result shares the
// buffer and offset. Any other view is first materialized into a fresh
// contiguous buffer, so the result is independent of the source.
//
// Example:
//
//	flat := ndarray.Zeros[int](ndarray.Shape(12))
//	m, err := flat.Reshape(ndarray.Shape(3, 4))
func (a *Array[T]) Reshape(dim Dim) (*Array[T], error) {
	if dim.Size() != a.dim.Size() {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrSizeMismatch, a.dim, a.dim.Size(), dim, dim.Size())
	}

	if a.IsContiguous() {
		view := a.Clone()
		view.dim = dim
		view.strides = dim.DefaultStrides()
		return view, nil
	}

	data := make([]T, 0, a.dim.Size())
	it := a.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		data = append(data, v)
	}
	return FromSliceUnchecked(dim, data), nil
}
