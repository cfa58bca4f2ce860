package ndarray

import "fmt"

// buffer is a reference-counted element store shared by all views cloned
// from a common ancestor. It enables O(1) Clone and Copy-on-Write.
//
// The count is not atomic: a buffer and every view onto it must stay on
// one goroutine, or be guarded by the caller.
type buffer[T any] struct {
	data []T
	refs int
}

// newBuffer wraps data in a buffer with refs = 1.
func newBuffer[T any](data []T) *buffer[T] {
	return &buffer[T]{data: data, refs: 1}
}

// addRef increments the reference count (for Clone operations).
func (b *buffer[T]) addRef() {
	b.refs++
}

// release decrements the reference count and drops the data at 0.
func (b *buffer[T]) release() {
	b.refs--
	if b.refs == 0 {
		b.data = nil
	}
}

// isUnique reports whether exactly one view owns the buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refs == 1
}

// duplicate returns a private copy of the whole buffer with refs = 1.
func (b *buffer[T]) duplicate() *buffer[T] {
	data := make([]T, len(b.data))
	copy(data, b.data)
	return newBuffer(data)
}

// at returns a pointer to the element at the given logical offset.
// Offsets outside the buffer can only come from FromSliceUnchecked
// being given too short a slice.
func (b *buffer[T]) at(off int) *T {
	if off < 0 || off >= len(b.data) {
		panic(fmt.Errorf("%w: offset %d, buffer holds %d elements", ErrUncheckedSizeViolation, off, len(b.data)))
	}
	return &b.data[off]
}
