// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Array is an N-dimensional view onto a shared, copy-on-write buffer.
type Array[T any] = ndarray.Array[T]

// Dim is an ordered sequence of per-axis extents (rank 0 to MaxRank).
type Dim = ndarray.Dim

// Slice is a per-axis start:stop:step selection.
type Slice = ndarray.Slice

// Elements is a single-pass row-major iterator over a view.
type Elements[T any] = ndarray.Elements[T]

// ElementsMut is a single-pass row-major iterator over element pointers.
type ElementsMut[T any] = ndarray.ElementsMut[T]

// Stride is an iterator over a linear run of elements (Iter1D, Diag).
type Stride[T any] = ndarray.Stride[T]

// Numeric is the constraint for arithmetic element types.
type Numeric = ndarray.Numeric

// Integer is the constraint for bitwise element types.
type Integer = ndarray.Integer

// Signed is the constraint for negatable element types.
type Signed = ndarray.Signed

// MaxRank is the largest supported number of axes.
const MaxRank = ndarray.MaxRank

// Errors.
var (
	ErrRankMismatch           = ndarray.ErrRankMismatch
	ErrShapeMismatch          = ndarray.ErrShapeMismatch
	ErrSizeMismatch           = ndarray.ErrSizeMismatch
	ErrIndexOutOfBounds       = ndarray.ErrIndexOutOfBounds
	ErrInvalidStep            = ndarray.ErrInvalidStep
	ErrUncheckedSizeViolation = ndarray.ErrUncheckedSizeViolation
	ErrRankTooLarge           = ndarray.ErrRankTooLarge
	ErrNegativeExtent         = ndarray.ErrNegativeExtent
	ErrInvalidAxis            = ndarray.ErrInvalidAxis
	ErrSliceSyntax            = ndarray.ErrSliceSyntax
	ErrSizeOverflow           = ndarray.ErrSizeOverflow
)

// Full selects a whole axis ("[:]").
var Full = ndarray.Full

// Dimension functions

// NewDim creates a Dim, validating rank and extents.
func NewDim(extents ...int) (Dim, error) {
	return ndarray.NewDim(extents...)
}

// Shape creates a Dim and panics on invalid extents.
//
// Example:
//
//	ndarray.Shape(2, 3) // 2×3
func Shape(extents ...int) Dim {
	return ndarray.Shape(extents...)
}

// Creation functions

// Zeros creates an array filled with the zero value of T.
//
// Example:
//
//	x := ndarray.Zeros[float32](ndarray.Shape(2, 3))
func Zeros[T any](dim Dim) *Array[T] {
	return ndarray.Zeros[T](dim)
}

// New creates an array with every element set to fill.
//
// Example:
//
//	x := ndarray.New(ndarray.Shape(2, 3), 1.5)
func New[T any](dim Dim, fill T) *Array[T] {
	return ndarray.New(dim, fill)
}

// FromSlice wraps data (row-major, not copied) as an array of the given dim.
//
// Example:
//
//	x, err := ndarray.FromSlice(ndarray.Shape(2, 2), []int{1, 2, 3, 4})
func FromSlice[T any](dim Dim, data []T) (*Array[T], error) {
	return ndarray.FromSlice(dim, data)
}

// FromSliceUnchecked wraps data without checking its length against dim.
//
// This is a low-level function. An undersized slice makes later accesses
// panic with ErrUncheckedSizeViolation.
func FromSliceUnchecked[T any](dim Dim, data []T) *Array[T] {
	return ndarray.FromSliceUnchecked(dim, data)
}

// Slice functions

// Range returns the slice start:stop:step.
func Range(start, stop, step int) Slice {
	return ndarray.Range(start, stop, step)
}

// From returns the slice start::step.
func From(start, step int) Slice {
	return ndarray.From(start, step)
}

// Single returns the slice i:i+1.
func Single(i int) Slice {
	return ndarray.Single(i)
}

// ParseSlice parses Python slice notation such as "1:", "::-1" or "0:4:2".
func ParseSlice(s string) (Slice, error) {
	return ndarray.ParseSlice(s)
}

// ParseSlices parses a comma-separated per-axis slice list such as "1:, ::2".
func ParseSlices(s string) ([]Slice, error) {
	return ndarray.ParseSlices(s)
}

// Elementwise operations

// Equal reports whether a and b are elementwise equal.
// Returns ErrShapeMismatch for differing shapes.
func Equal[T comparable](a, b *Array[T]) (bool, error) {
	return ndarray.Equal(a, b)
}

// Add returns a + b.
//
// Example:
//
//	c, err := ndarray.Add(a, b) // shapes must match
func Add[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Add(a, b)
}

// Sub returns a - b.
func Sub[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Sub(a, b)
}

// Mul returns a * b elementwise.
func Mul[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Mul(a, b)
}

// Div returns a / b elementwise.
func Div[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Div(a, b)
}

// And returns a & b.
func And[T Integer](a, b *Array[T]) (*Array[T], error) {
	return ndarray.And(a, b)
}

// Or returns a | b.
func Or[T Integer](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Or(a, b)
}

// Xor returns a ^ b.
func Xor[T Integer](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Xor(a, b)
}

// Neg returns -a.
func Neg[T Signed](a *Array[T]) *Array[T] {
	return ndarray.Neg(a)
}

// AddAssign performs a += b.
func AddAssign[T Numeric](a, b *Array[T]) error {
	return ndarray.AddAssign(a, b)
}

// SubAssign performs a -= b.
func SubAssign[T Numeric](a, b *Array[T]) error {
	return ndarray.SubAssign(a, b)
}

// MulAssign performs a *= b.
func MulAssign[T Numeric](a, b *Array[T]) error {
	return ndarray.MulAssign(a, b)
}

// DivAssign performs a /= b.
func DivAssign[T Numeric](a, b *Array[T]) error {
	return ndarray.DivAssign(a, b)
}

// AndAssign performs a &= b.
func AndAssign[T Integer](a, b *Array[T]) error {
	return ndarray.AndAssign(a, b)
}

// OrAssign performs a |= b.
func OrAssign[T Integer](a, b *Array[T]) error {
	return ndarray.OrAssign(a, b)
}

// XorAssign performs a ^= b.
func XorAssign[T Integer](a, b *Array[T]) error {
	return ndarray.XorAssign(a, b)
}

// NegAssign negates a in place.
func NegAssign[T Signed](a *Array[T]) {
	ndarray.NegAssign(a)
}

// Linear algebra

// MatMul returns the matrix product of two rank-2 arrays.
//
// Example:
//
//	a := ndarray.Zeros[float64](ndarray.Shape(3, 4))
//	b := ndarray.Zeros[float64](ndarray.Shape(4, 5))
//	c, err := ndarray.MatMul(a, b) // Shape: (3, 5)
func MatMul[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return ndarray.MatMul(a, b)
}
