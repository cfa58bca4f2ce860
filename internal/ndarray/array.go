package ndarray

import (
	"fmt"
	"log/slog"
)

// Array is an N-dimensional view onto a shared, reference-counted buffer.
//
// A view is the tuple (buffer, offset, dim, strides): the element at
// multi-index idx lives at offset + Σ idx[k]*strides[k]. Clone shares the
// buffer in O(1); every mutator first calls MakeUnique, so a view never
// observes mutations made through another view (Copy-on-Write).
//
// Array is not safe for concurrent use.
type Array[T any] struct {
	buf     *buffer[T]
	offset  int
	dim     Dim
	strides Dim
}

// Zeros creates an array of the given dim filled with the zero value of T.
//
// Example:
//
//	a := ndarray.Zeros[float64](ndarray.Shape(3, 4))
func Zeros[T any](dim Dim) *Array[T] {
	return FromSliceUnchecked(dim, make([]T, dim.Size()))
}

// New creates an array of the given dim with every element set to fill.
func New[T any](dim Dim, fill T) *Array[T] {
	data := make([]T, dim.Size())
	for i := range data {
		data[i] = fill
	}
	return FromSliceUnchecked(dim, data)
}

// FromSlice wraps data as a row-major array of the given dim.
// The slice is not copied; the array takes ownership of it.
// Returns ErrSizeMismatch if len(data) != dim.Size().
func FromSlice[T any](dim Dim, data []T) (*Array[T], error) {
	if len(data) != dim.Size() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d", ErrSizeMismatch, dim, dim.Size(), len(data))
	}
	return FromSliceUnchecked(dim, data), nil
}

// FromSliceUnchecked wraps data without verifying that len(data) equals
// dim.Size(). The caller guarantees the sizes match; if they do not, the
// first access outside data panics with ErrUncheckedSizeViolation.
func FromSliceUnchecked[T any](dim Dim, data []T) *Array[T] {
	return &Array[T]{
		buf:     newBuffer(data),
		offset:  0,
		dim:     dim,
		strides: dim.DefaultStrides(),
	}
}

// Clone returns a view sharing the buffer with a (no element copy).
func (a *Array[T]) Clone() *Array[T] {
	a.buf.addRef()
	return &Array[T]{
		buf:     a.buf,
		offset:  a.offset,
		dim:     a.dim,
		strides: a.strides,
	}
}

// Release drops this view's share of the buffer. The view must not be
// used afterwards. Views that are never released only cost an extra copy
// on the next mutation of a sibling.
func (a *Array[T]) Release() {
	if a.buf == nil {
		return
	}
	a.buf.release()
	a.buf = nil
}

// IsUnique reports whether this view is the buffer's only owner.
func (a *Array[T]) IsUnique() bool {
	return a.buf.isUnique()
}

// MakeUnique privatizes the buffer: if other views share it, the whole
// buffer is duplicated and this view switches to the copy. The logical
// offset is kept, so the view addresses the same elements as before.
func (a *Array[T]) MakeUnique() {
	if a.buf.isUnique() {
		return
	}
	slog.Debug("ndarray: copying shared buffer",
		"elements", len(a.buf.data),
		"owners", a.buf.refs,
		"shape", a.dim.String())
	private := a.buf.duplicate()
	a.buf.release()
	a.buf = private
}

// Shape returns the extents of each axis.
func (a *Array[T]) Shape() []int {
	return a.dim.Shape()
}

// Dim returns the array's dimension.
func (a *Array[T]) Dim() Dim {
	return a.dim
}

// Strides returns the per-axis strides, in elements. Entries may be negative.
func (a *Array[T]) Strides() []int {
	return a.strides.Shape()
}

// Offset returns the logical element offset of the first element.
func (a *Array[T]) Offset() int {
	return a.offset
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return a.dim.rank
}

// Size returns the number of elements in the view.
func (a *Array[T]) Size() int {
	return a.dim.Size()
}

// IsContiguous reports whether the view's strides are the row-major
// strides of its dim.
func (a *Array[T]) IsContiguous() bool {
	return a.strides == a.dim.DefaultStrides()
}

// sharesBuffer reports whether a and b are backed by the same buffer.
func (a *Array[T]) sharesBuffer(b *Array[T]) bool {
	return a.buf == b.buf
}

// At returns the element at the given index, or false if the index count
// differs from the rank or any component is out of range.
func (a *Array[T]) At(index ...int) (T, bool) {
	off, ok := a.offsetOf(index)
	if !ok {
		var zero T
		return zero, false
	}
	return *a.buf.at(a.offset + off), true
}

// AtMut privatizes the buffer and returns a pointer to the element at the
// given index, or false if the index is out of range.
// The pointer must not be used after this view is cloned or released:
// a Clone shares the buffer, so a write through an older pointer would
// show up in the clone. Call AtMut again after cloning.
func (a *Array[T]) AtMut(index ...int) (*T, bool) {
	a.MakeUnique()
	off, ok := a.offsetOf(index)
	if !ok {
		return nil, false
	}
	return a.buf.at(a.offset + off), true
}

// Index returns the element at the given index.
// Panics with ErrIndexOutOfBounds or ErrRankMismatch on bad input.
//
// Example:
//
//	a := ndarray.Zeros[int](ndarray.Shape(3, 4))
//	v := a.Index(1, 2) // Row 1, column 2
func (a *Array[T]) Index(index ...int) T {
	off := a.mustOffsetOf(index)
	return *a.buf.at(a.offset + off)
}

// IndexMut privatizes the buffer and returns a pointer to the element.
// Panics like Index. The pointer is subject to the same rule as AtMut:
// do not use it after this view is cloned.
func (a *Array[T]) IndexMut(index ...int) *T {
	a.MakeUnique()
	off := a.mustOffsetOf(index)
	return a.buf.at(a.offset + off)
}

// Set stores value at the given index. Panics like Index.
func (a *Array[T]) Set(value T, index ...int) {
	*a.IndexMut(index...) = value
}

func (a *Array[T]) offsetOf(index []int) (int, bool) {
	idx, err := indexDim(a.dim, index)
	if err != nil {
		return 0, false
	}
	return strideOffsetChecked(a.dim, a.strides, idx)
}

func (a *Array[T]) mustOffsetOf(index []int) int {
	idx, err := indexDim(a.dim, index)
	if err != nil {
		panic(err)
	}
	off, ok := strideOffsetChecked(a.dim, a.strides, idx)
	if !ok {
		panic(outOfBounds(a.dim, index))
	}
	return off
}
