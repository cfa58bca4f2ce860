package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshapeContiguousSharesBuffer(t *testing.T) {
	flat := arange(12)
	m, err := flat.Reshape(Shape(3, 4))
	require.NoError(t, err)

	assert.True(t, m.sharesBuffer(flat), "contiguous reshape is zero-copy")
	assert.Equal(t, []int{3, 4}, m.Shape())
	assert.Equal(t, []int{4, 1}, m.Strides())
	assert.Equal(t, 6, m.Index(1, 2))

	cube, err := Zeros[uint8](Shape(2*3*4*5*6)).Reshape(Shape(2, 3, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, cube.Shape())
}

func TestReshapeKeepsOffsetOfContiguousView(t *testing.T) {
	a := arange(3, 4)
	rows, err := a.Slice(From(1, 1), Full)
	require.NoError(t, err)

	flat, err := rows.Reshape(Shape(8))
	require.NoError(t, err)
	assert.True(t, flat.sharesBuffer(a))
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11}, collect(flat))
}

func TestReshapeNonContiguousCopies(t *testing.T) {
	flat := arange(4)
	rev, err := flat.Slice(From(0, -1))
	require.NoError(t, err)
	require.False(t, rev.IsContiguous())

	m, err := rev.Reshape(Shape(2, 2))
	require.NoError(t, err)
	assert.False(t, m.sharesBuffer(rev))
	assert.True(t, m.IsUnique())
	assert.Equal(t, []int{3, 2, 1, 0}, collect(m))

	rev.Set(100, 0)
	assert.Equal(t, 3, m.Index(0, 0), "materialized reshape is independent of its source")
}

func TestReshapeSizeMismatch(t *testing.T) {
	a := arange(3, 4)
	_, err := a.Reshape(Shape(5, 2))
	require.ErrorIs(t, err, ErrSizeMismatch)
	assert.True(t, a.IsUnique())
}
