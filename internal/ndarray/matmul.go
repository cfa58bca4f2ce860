package ndarray

import "fmt"

// writeOnce is an output buffer whose cells must each be written exactly
// once before it can be turned into an array.
type writeOnce[T any] struct {
	data    []T
	written []bool
	count   int
}

func newWriteOnce[T any](n int) *writeOnce[T] {
	return &writeOnce[T]{
		data:    make([]T, n),
		written: make([]bool, n),
	}
}

// put stores v at cell i. Panics if i was already written.
func (w *writeOnce[T]) put(i int, v T) {
	if w.written[i] {
		panic(fmt.Sprintf("ndarray: cell %d written twice", i))
	}
	w.written[i] = true
	w.data[i] = v
	w.count++
}

// finish wraps the buffer as an array of the given dim.
// Panics if any cell was never written.
func (w *writeOnce[T]) finish(dim Dim) *Array[T] {
	if w.count != len(w.data) {
		panic(fmt.Sprintf("ndarray: %d of %d cells left unwritten", len(w.data)-w.count, len(w.data)))
	}
	return FromSliceUnchecked(dim, w.data)
}

// MatMul returns the matrix product of a (m×k) and b (k×n) as a new m×n
// array. Both operands must be rank 2 (ErrRankMismatch) and the inner
// dimensions must agree (ErrShapeMismatch). Any strides are accepted.
//
// Example:
//
//	a := ndarray.Zeros[float64](ndarray.Shape(2, 3))
//	b := ndarray.Zeros[float64](ndarray.Shape(3, 4))
//	c, err := ndarray.MatMul(a, b) // Shape: (2, 4)
func MatMul[T Numeric](a, b *Array[T]) (*Array[T], error) {
	if a.dim.rank != 2 || b.dim.rank != 2 {
		return nil, fmt.Errorf("matmul: %w: operands have rank %d and %d, need 2",
			ErrRankMismatch, a.dim.rank, b.dim.rank)
	}
	m, k := a.dim.ext[0], a.dim.ext[1]
	k2, n := b.dim.ext[0], b.dim.ext[1]
	if k != k2 {
		return nil, fmt.Errorf("matmul: %w: inner dimensions %d and %d", ErrShapeMismatch, k, k2)
	}

	out := newWriteOnce[T](m * n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out.put(i*n+j, dot(a, b, i, j, k))
		}
	}
	return out.finish(Shape(m, n)), nil
}

// dot multiplies row i of a with column j of b.
func dot[T Numeric](a, b *Array[T], i, j, k int) T {
	var sum T
	if k == 0 {
		return sum
	}
	row, err := a.Iter1D(1, i, 0)
	if err != nil {
		panic(err)
	}
	col, err := b.Iter1D(0, 0, j)
	if err != nil {
		panic(err)
	}
	for x, ok := row.Next(); ok; x, ok = row.Next() {
		y, _ := col.Next()
		sum += x * y
	}
	return sum
}
