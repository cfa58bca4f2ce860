package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](s *Stride[T]) []T {
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}

func TestElementsSinglePass(t *testing.T) {
	a := arange(2, 3)
	it := a.Iter()
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got)

	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")

	// A fresh iterator re-traverses.
	assert.Equal(t, got, collect(a))
}

func TestElementsIndexAgreement(t *testing.T) {
	a := arange(2, 3)
	vi, err := a.Slice(From(1, 1), From(0, 2))
	require.NoError(t, err)

	it := vi.Iter()
	for i := 0; i < 1; i++ {
		for j := 0; j < 2; j++ {
			x, ok := it.Next()
			require.True(t, ok)
			assert.Equal(t, vi.Index(i, j), x)
		}
	}
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestElementsZeroSizeAndScalar(t *testing.T) {
	empty := Zeros[int](Shape(0, 3))
	_, ok := empty.Iter().Next()
	assert.False(t, ok)

	scalar := New(Shape(), 9)
	assert.Equal(t, []int{9}, collect(scalar))
}

func TestIterMutPrivatizes(t *testing.T) {
	a := arange(2, 2)
	b := a.Clone()

	it := a.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 10
	}
	assert.Equal(t, []int{0, 10, 20, 30}, collect(a))
	assert.Equal(t, []int{0, 1, 2, 3}, collect(b))
}

func TestIterMutCloneMidIteration(t *testing.T) {
	c := arange(2, 2)
	it := c.IterMut()
	p, ok := it.Next()
	require.True(t, ok)
	*p = 5

	d := c.Clone()
	p, ok = it.Next()
	require.True(t, ok)
	*p = 9

	assert.Equal(t, []int{5, 9, 2, 3}, collect(c))
	assert.Equal(t, []int{5, 1, 2, 3}, collect(d), "clone keeps the values it saw")
	assert.True(t, c.IsUnique())
	assert.True(t, d.IsUnique())
}

func TestSliceIterMutCloneMidIteration(t *testing.T) {
	a := arange(3)
	it, err := a.SliceIterMut(From(0, -1))
	require.NoError(t, err)

	b := a.Clone()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = -*p
	}
	assert.Equal(t, []int{0, -1, -2}, collect(a))
	assert.Equal(t, []int{0, 1, 2}, collect(b))
}

func TestAllYieldsPositions(t *testing.T) {
	a := arange(2, 2)
	rev, err := a.Slice(From(0, -1), Full)
	require.NoError(t, err)

	var pos, vals []int
	for i, v := range rev.All() {
		pos = append(pos, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, pos)
	assert.Equal(t, []int{2, 3, 0, 1}, vals)

	// Early break stops the sequence.
	n := 0
	for range a.Values() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestIter1D(t *testing.T) {
	a := arange(3, 4)

	row, err := a.Iter1D(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, row.Len())
	assert.Equal(t, []int{8, 9, 10, 11}, drain(row))
	assert.Equal(t, 0, row.Len())

	// A run starting mid-axis stops at the end of the axis.
	tail, err := a.Iter1D(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tail.Len())
	assert.Equal(t, []int{6, 7}, drain(tail))

	col, err := a.Iter1D(0, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 11}, drain(col))

	rev, err := a.Slice(Full, From(0, -1))
	require.NoError(t, err)
	row, err = rev.Iter1D(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, drain(row))

	_, err = a.Iter1D(2, 0, 0)
	require.ErrorIs(t, err, ErrInvalidAxis)
	_, err = a.Iter1D(0, 3, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = a.Iter1D(0, 0)
	require.ErrorIs(t, err, ErrRankMismatch)
}

func TestDiag(t *testing.T) {
	sq := arange(3, 3)
	assert.Equal(t, []int{0, 4, 8}, drain(sq.Diag()))

	rect := arange(2, 3)
	assert.Equal(t, []int{0, 4}, drain(rect.Diag()))

	cube := arange(2, 2, 2)
	assert.Equal(t, []int{0, 7}, drain(cube.Diag()))

	assert.Empty(t, drain(New(Shape(), 1).Diag()))
}
