package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatMul(t *testing.T) {
	a := arange(2, 3)
	b := arange(3, 4)

	c, err := MatMul(a, b)
	require.NoError(t, err)

	want, err := FromSlice(Shape(2, 4), []int{20, 23, 26, 29, 56, 68, 80, 92})
	require.NoError(t, err)
	assert.Equal(t, want.Shape(), c.Shape())
	eq, err := Equal(c, want)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMatMulStridedOperands(t *testing.T) {
	// Reversing both axes of a and b reverses the rows and columns of c.
	a := arange(2, 3)
	b := arange(3, 4)
	ra, err := a.Slice(From(0, -1), From(0, -1))
	require.NoError(t, err)
	rb, err := b.Slice(From(0, -1), From(0, -1))
	require.NoError(t, err)

	c, err := MatMul(ra, rb)
	require.NoError(t, err)
	assert.Equal(t, []int{92, 80, 68, 56, 29, 26, 23, 20}, collect(c))
}

func TestMatMulFloat(t *testing.T) {
	eye, err := FromSlice(Shape(2, 2), []float64{1, 0, 0, 1})
	require.NoError(t, err)
	m, err := FromSlice(Shape(2, 3), []float64{1.5, -2, 3, 0.25, 5, -6})
	require.NoError(t, err)

	c, err := MatMul(eye, m)
	require.NoError(t, err)
	assert.Equal(t, collect(m), collect(c))
}

func TestMatMulEmptyInner(t *testing.T) {
	a := Zeros[int](Shape(2, 0))
	b := Zeros[int](Shape(0, 3))
	c, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, c.Shape())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, collect(c))
}

func TestMatMulErrors(t *testing.T) {
	_, err := MatMul(arange(2, 3), arange(2, 3))
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = MatMul(arange(6), arange(6, 1))
	require.ErrorIs(t, err, ErrRankMismatch)
}

func TestWriteOnce(t *testing.T) {
	w := newWriteOnce[int](2)
	w.put(0, 1)
	assert.Panics(t, func() { w.put(0, 2) })
	assert.Panics(t, func() { w.finish(Shape(2)) })

	w.put(1, 3)
	a := w.finish(Shape(2))
	assert.Equal(t, []int{1, 3}, collect(a))
}
