package ndarray

import (
	"fmt"
	"iter"
)

// cursor walks a (dim, strides) pair in row-major order, producing logical
// buffer offsets. It is single-pass.
type cursor struct {
	offset  int
	dim     Dim
	strides Dim
	index   Dim
	done    bool
}

func newCursor(offset int, dim, strides Dim) cursor {
	c := cursor{offset: offset, dim: dim, strides: strides}
	c.reset()
	return c
}

// reset rewinds to the first index. Called after the dim changes.
func (c *cursor) reset() {
	c.index = zeroDim(c.dim.rank)
	c.done = c.dim.Size() == 0
}

// advance returns the offset for the current index and steps the odometer.
func (c *cursor) advance() (int, bool) {
	if c.done {
		return 0, false
	}
	off := c.offset + strideOffset(c.strides, c.index)
	next, ok := c.dim.NextFor(c.index)
	c.index = next
	c.done = !ok
	return off, true
}

// Elements iterates the elements of a view in row-major order.
//
// The traversal follows the view's current dim and strides, so it works the
// same for contiguous, reversed and skipping layouts. An Elements must not
// be used while the same elements are written through an ElementsMut.
type Elements[T any] struct {
	cursor
	buf *buffer[T]
}

// Next returns the next element, or false when the traversal is exhausted.
func (it *Elements[T]) Next() (T, bool) {
	off, ok := it.advance()
	if !ok {
		var zero T
		return zero, false
	}
	return *it.buf.at(off), true
}

// ElementsMut iterates pointers to the elements of a view in row-major order.
//
// Every step re-privatizes the view, so cloning it mid-iteration sends the
// remaining writes to a private copy. Pointers returned before the Clone
// still address the shared buffer and must not be written after it.
type ElementsMut[T any] struct {
	cursor
	arr *Array[T]
}

// Next returns a pointer to the next element, or false when exhausted.
func (it *ElementsMut[T]) Next() (*T, bool) {
	off, ok := it.advance()
	if !ok {
		return nil, false
	}
	it.arr.MakeUnique()
	return it.arr.buf.at(off), true
}

// Iter returns a row-major iterator over the view.
func (a *Array[T]) Iter() *Elements[T] {
	return &Elements[T]{
		cursor: newCursor(a.offset, a.dim, a.strides),
		buf:    a.buf,
	}
}

// IterMut privatizes the buffer and returns a mutable row-major iterator.
//
// Example:
//
//	a := ndarray.Zeros[int](ndarray.Shape(2, 3))
//	it := a.IterMut()
//	for i := 0; ; i++ {
//	    p, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    *p = i
//	}
func (a *Array[T]) IterMut() *ElementsMut[T] {
	a.MakeUnique()
	return &ElementsMut[T]{
		cursor: newCursor(a.offset, a.dim, a.strides),
		arr:    a,
	}
}

// Values returns the elements in row-major order as a range-over-func sequence.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All yields (flat position, element) pairs in row-major order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := a.Iter()
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Stride iterates a linear run of elements at a fixed step.
type Stride[T any] struct {
	buf  *buffer[T]
	off  int
	step int
	left int
}

// Next returns the next element of the run, or false when exhausted.
func (s *Stride[T]) Next() (T, bool) {
	if s.left == 0 {
		var zero T
		return zero, false
	}
	v := *s.buf.at(s.off)
	s.off += s.step
	s.left--
	return v, true
}

// Len returns the number of elements not yet returned.
func (s *Stride[T]) Len() int {
	return s.left
}

// Iter1D iterates dim[axis] elements along axis, starting at index from.
// Used to pull rows or columns without building a slice.
//
// Example:
//
//	row, _ := m.Iter1D(1, 2, 0) // row 2 of a matrix
//	col, _ := m.Iter1D(0, 0, 3) // column 3 of a matrix
func (a *Array[T]) Iter1D(axis int, from ...int) (*Stride[T], error) {
	if axis < 0 || axis >= a.dim.rank {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrInvalidAxis, axis, a.dim.rank)
	}
	idx, err := indexDim(a.dim, from)
	if err != nil {
		return nil, err
	}
	off, ok := strideOffsetChecked(a.dim, a.strides, idx)
	if !ok {
		return nil, outOfBounds(a.dim, from)
	}
	return &Stride[T]{
		buf:  a.buf,
		off:  a.offset + off,
		step: a.strides.ext[axis],
		left: a.dim.ext[axis] - idx.ext[axis],
	}, nil
}

// Diag iterates the diagonal: min(dim) elements, advancing by the sum of
// all strides. A rank-0 view has an empty diagonal.
func (a *Array[T]) Diag() *Stride[T] {
	n := 0
	step := 0
	for k := 0; k < a.dim.rank; k++ {
		if k == 0 || a.dim.ext[k] < n {
			n = a.dim.ext[k]
		}
		step += a.strides.ext[k]
	}
	return &Stride[T]{buf: a.buf, off: a.offset, step: step, left: n}
}
