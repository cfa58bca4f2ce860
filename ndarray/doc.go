// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides N-dimensional arrays with shared, copy-on-write
// storage and zero-copy strided views.
//
// # Overview
//
// An Array[T] is a view onto a reference-counted buffer: a logical offset
// plus a (dim, strides) pair. This package provides:
//   - Arrays of rank 0 through MaxRank (12)
//   - O(1) Clone with Copy-on-Write privatization on first mutation
//   - Python-style slicing (start:stop:step, negative indices and steps)
//     producing views that share the buffer
//   - Row-major iteration over any layout, single-axis runs and diagonals
//   - Contiguity-aware Reshape
//   - Elementwise arithmetic, bitwise ops, equality and matrix multiply
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    a := ndarray.Zeros[int](ndarray.Shape(3, 4))
//	    it := a.IterMut()
//	    for i := 0; ; i++ {
//	        p, ok := it.Next()
//	        if !ok {
//	            break
//	        }
//	        *p = i
//	    }
//
//	    // a[1:, ::2] shares a's buffer.
//	    v, _ := a.Slice(ndarray.From(1, 1), ndarray.From(0, 2))
//	    fmt.Println(v) // [[4, 6],
//	                   //  [8, 10]]
//	}
//
// # Copy-on-Write
//
// Clone copies only the view descriptor. Every mutator (Set, IndexMut,
// AtMut, IterMut, SliceIterMut, the ...Assign operations) first calls
// MakeUnique, which duplicates the buffer if another view still owns it:
//
//	a := ndarray.Zeros[int](ndarray.Shape(2, 2))
//	b := a.Clone()  // shares the buffer
//	a.Set(1, 0, 0)  // a gets a private copy
//	b.Index(0, 0)   // still 0
//
// Owner counts are not atomic. Keep an array and all views derived from it
// on one goroutine, or guard them externally.
//
// # Slicing
//
// Slices take one descriptor per axis:
//
//	ndarray.Full            // [:]
//	ndarray.From(1, 1)      // [1:]
//	ndarray.Range(0, 4, 2)  // [0:4:2]
//	ndarray.From(0, -1)     // [::-1]
//	ndarray.Single(2)       // [2:3]
//
// ParseSlices reads the same notation from text: "1:, ::-1".
//
// # Errors
//
// Precondition failures return errors wrapping the sentinels below; use
// errors.Is. The panicking accessors Index, IndexMut and Set panic with
// the same errors.
package ndarray
