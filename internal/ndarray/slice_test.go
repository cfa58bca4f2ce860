package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceRowsAndStep(t *testing.T) {
	a := arange(3, 4)

	vi, err := a.Slice(From(1, 1), From(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, vi.Shape())
	assert.Equal(t, []int{4, 6, 8, 10}, collect(vi))
	assert.Equal(t, 4, vi.Index(0, 0))
	assert.Equal(t, 10, vi.Index(1, 1))
	assert.True(t, vi.sharesBuffer(a), "slicing is zero-copy")

	whole, err := a.Slice(Full, Full)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), whole.Shape())
	assert.Equal(t, collect(a), collect(whole))
}

func TestSliceNegativeStep(t *testing.T) {
	mat := arange(2, 4, 2)

	vi, err := mat.Slice(Full, From(0, -1), From(0, -1))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 2}, vi.Shape())
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1, 0, 15, 14, 13, 12, 11, 10, 9, 8}, collect(vi))

	vi, err = mat.Slice(Full, From(0, -5), Full)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, vi.Shape())
	assert.Equal(t, []int{6, 7, 14, 15}, collect(vi))

	vi, err = mat.Slice(Full, From(0, -2), Single(1))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3, 15, 11}, collect(vi))
}

func TestSliceNegativeIndices(t *testing.T) {
	a := arange(10)

	tests := []struct {
		name  string
		slice Slice
		want  []int
	}{
		{"last three", From(-3, 1), []int{7, 8, 9}},
		{"negative stop", Range(2, -5, 1), []int{2, 3, 4}},
		{"both negative", Range(-4, -1, 2), []int{6, 8}},
		{"step three", Range(1, 9, 3), []int{1, 4, 7}},
		{"reverse step two", From(0, -2), []int{9, 7, 5, 3, 1}},
		{"reverse sub-range", Range(2, 6, -1), []int{5, 4, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vi, err := a.Slice(tt.slice)
			require.NoError(t, err)
			assert.Equal(t, tt.want, collect(vi))
		})
	}
}

func TestSliceEmptySpan(t *testing.T) {
	a := arange(3, 4)

	vi, err := a.Slice(Range(2, 1, 1), Full)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, vi.Shape())
	assert.Empty(t, collect(vi))

	vi, err = a.Slice(Range(2, 2, -1), Full)
	require.NoError(t, err)
	assert.Equal(t, 0, vi.Size())
	assert.Empty(t, collect(vi))
}

func TestSliceErrors(t *testing.T) {
	a := arange(3, 4)
	dim, strides, offset := a.dim, a.strides, a.offset

	tests := []struct {
		name   string
		slices []Slice
		err    error
	}{
		{"too few", []Slice{Full}, ErrRankMismatch},
		{"too many", []Slice{Full, Full, Full}, ErrRankMismatch},
		{"zero step", []Slice{Full, From(0, 0)}, ErrInvalidStep},
		{"start past end", []Slice{From(4, 1), Full}, ErrIndexOutOfBounds},
		{"stop past end", []Slice{Range(0, 9, 1), Full}, ErrIndexOutOfBounds},
		{"negative beyond start", []Slice{From(-4, 1), Full}, ErrIndexOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Slice(tt.slices...)
			require.ErrorIs(t, err, tt.err)

			err = a.ApplySlice(tt.slices...)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, dim, a.dim, "failed slice leaves the view untouched")
			assert.Equal(t, strides, a.strides)
			assert.Equal(t, offset, a.offset)
		})
	}
	assert.True(t, a.IsUnique(), "failed Slice releases its clone")
}

func TestApplySliceInPlace(t *testing.T) {
	a := arange(3, 4)
	require.NoError(t, a.ApplySlice(Single(2), From(0, -1)))
	assert.Equal(t, []int{1, 4}, a.Shape())
	assert.Equal(t, []int{11, 10, 9, 8}, collect(a))

	require.NoError(t, a.ApplySlice(Full, From(0, 2)))
	assert.Equal(t, []int{11, 9}, collect(a))
}

func TestSliceIter(t *testing.T) {
	a := arange(3, 4)

	it, err := a.SliceIter(From(1, 1), From(0, 2))
	require.NoError(t, err)
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 6, 8, 10}, got)

	_, err = a.SliceIter(Full)
	require.ErrorIs(t, err, ErrRankMismatch)
}

func TestSliceIterMut(t *testing.T) {
	a := arange(3, 4)
	b := a.Clone()

	it, err := a.SliceIterMut(Full, Single(0))
	require.NoError(t, err)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = -1
	}
	assert.Equal(t, []int{-1, 1, 2, 3, -1, 5, 6, 7, -1, 9, 10, 11}, collect(a))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, collect(b))

	_, err = a.SliceIterMut(Full, From(0, 0))
	require.ErrorIs(t, err, ErrInvalidStep)
}

func TestParseSlice(t *testing.T) {
	tests := []struct {
		in   string
		want Slice
	}{
		{"1:2:3", Range(1, 2, 3)},
		{"::", Full},
		{":", Full},
		{"1:", From(1, 1)},
		{"::-1", From(0, -1)},
		{"::2", From(0, 2)},
		{"-3:-1", Range(-3, -1, 1)},
		{" 2 : 5 ", Range(2, 5, 1)},
		{"3", Single(3)},
		{"-1", From(-1, 1)},
		{"-2", Range(-2, -1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSlice(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "a:b", "1:2:3:4", "1:x", "::z"} {
		_, err := ParseSlice(bad)
		assert.ErrorIs(t, err, ErrSliceSyntax, "ParseSlice(%q)", bad)
	}
}

func TestSingleNegative(t *testing.T) {
	a := arange(4)
	tests := []struct {
		slc  Slice
		want []int
	}{
		{Single(-1), []int{3}},
		{Single(-2), []int{2}},
		{Single(-4), []int{0}},
		{Single(0), []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.slc.String(), func(t *testing.T) {
			v, err := a.Slice(tt.slc)
			require.NoError(t, err)
			assert.Equal(t, []int{1}, v.Shape())
			assert.Equal(t, tt.want, collect(v))
		})
	}

	last, err := ParseSlice("-1")
	require.NoError(t, err)
	v, err := a.Slice(last)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, collect(v))

	_, err = a.Slice(Single(-5))
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestParseSlices(t *testing.T) {
	got, err := ParseSlices("1:, ::2")
	require.NoError(t, err)
	assert.Equal(t, []Slice{From(1, 1), From(0, 2)}, got)

	got, err = ParseSlices("  ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseSlices("1:,q")
	require.ErrorIs(t, err, ErrSliceSyntax)
}

func TestSliceString(t *testing.T) {
	assert.Equal(t, "1:3:2", Range(1, 3, 2).String())
	assert.Equal(t, "0::-1", From(0, -1).String())
}
