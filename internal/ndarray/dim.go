package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// MaxRank is the largest number of axes a Dim can hold.
const MaxRank = 12

// Dim is an ordered sequence of per-axis extents with rank 0 through MaxRank.
//
// Dim is a value type: copying a Dim copies its extents. The same type is
// used for shapes, strides and multi-indices; stride entries may be
// negative, shape and index entries never are.
type Dim struct {
	rank int
	ext  [MaxRank]int
}

// NewDim creates a Dim from the given extents.
// Returns ErrRankTooLarge for more than MaxRank extents and
// ErrNegativeExtent for any extent below zero and ErrSizeOverflow when the
// element count exceeds math.MaxInt.
func NewDim(extents ...int) (Dim, error) {
	if len(extents) > MaxRank {
		return Dim{}, fmt.Errorf("%w: %d axes (max %d)", ErrRankTooLarge, len(extents), MaxRank)
	}
	var d Dim
	d.rank = len(extents)
	for i, e := range extents {
		if e < 0 {
			return Dim{}, fmt.Errorf("%w: axis %d has extent %d", ErrNegativeExtent, i, e)
		}
		d.ext[i] = e
	}
	if err := checkSize(d); err != nil {
		return Dim{}, err
	}
	return d, nil
}

// checkSize reports ErrSizeOverflow if the extent product of d exceeds
// math.MaxInt. A zero extent makes any product valid.
func checkSize(d Dim) error {
	n := 1
	for _, e := range d.ext[:d.rank] {
		if e == 0 {
			return nil
		}
	}
	for _, e := range d.ext[:d.rank] {
		if n > math.MaxInt/e {
			return fmt.Errorf("%w: shape %v", ErrSizeOverflow, d)
		}
		n *= e
	}
	return nil
}

// Shape is like NewDim but panics on invalid extents.
//
// Example:
//
//	ndarray.Shape()        // rank 0 (scalar)
//	ndarray.Shape(5)       // rank 1
//	ndarray.Shape(2, 3, 4) // rank 3
func Shape(extents ...int) Dim {
	d, err := NewDim(extents...)
	if err != nil {
		panic(err)
	}
	return d
}

// zeroDim returns a rank-n Dim with all entries zero.
func zeroDim(rank int) Dim {
	return Dim{rank: rank}
}

// Rank returns the number of axes.
func (d Dim) Rank() int {
	return d.rank
}

// Shape returns a copy of the extents.
func (d Dim) Shape() []int {
	out := make([]int, d.rank)
	copy(out, d.ext[:d.rank])
	return out
}

// Axis returns the extent of the given axis.
func (d Dim) Axis(axis int) int {
	return d.ext[:d.rank][axis]
}

// Set replaces the extent of the given axis. It panics with
// ErrNegativeExtent or ErrSizeOverflow when the result would be rejected
// by NewDim.
func (d *Dim) Set(axis, v int) {
	if v < 0 {
		panic(fmt.Errorf("%w: axis %d set to %d", ErrNegativeExtent, axis, v))
	}
	next := *d
	next.ext[:next.rank][axis] = v
	if err := checkSize(next); err != nil {
		panic(err)
	}
	*d = next
}

// values exposes the live entries for in-package arithmetic.
func (d *Dim) values() []int {
	return d.ext[:d.rank]
}

// Size returns the product of all extents. A rank-0 Dim has size 1.
func (d Dim) Size() int {
	n := 1
	for _, e := range d.ext[:d.rank] {
		n *= e
	}
	return n
}

// Equal reports whether both dims have the same rank and entries.
func (d Dim) Equal(other Dim) bool {
	return d == other
}

// DefaultStrides returns row-major strides for d:
// the last axis has stride 1, each preceding axis the product of the
// extents to its right.
//
// Shape (a, b, c) gives strides (b*c, c, 1).
func (d Dim) DefaultStrides() Dim {
	strides := zeroDim(d.rank)
	if d.rank == 0 {
		return strides
	}
	cum := 1
	for i := d.rank - 1; i >= 0; i-- {
		strides.ext[i] = cum
		cum *= d.ext[i]
	}
	return strides
}

// NextFor treats d as the extents and returns the multi-index following
// index in row-major order (rightmost axis fastest). The second result is
// false when index was the last valid index.
func (d Dim) NextFor(index Dim) (Dim, bool) {
	for i := d.rank - 1; i >= 0; i-- {
		index.ext[i]++
		if index.ext[i] < d.ext[i] {
			return index, true
		}
		index.ext[i] = 0
	}
	return index, false
}

// String renders the dim as a tuple, e.g. "(2, 3)".
func (d Dim) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range d.ext[:d.rank] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", e)
	}
	sb.WriteByte(')')
	return sb.String()
}
