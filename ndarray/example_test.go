// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"fmt"

	"github.com/born-ml/ndarray/ndarray"
)

func ExampleArray_Slice() {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	a, _ := ndarray.FromSlice(ndarray.Shape(3, 4), data)

	v, _ := a.Slice(ndarray.From(1, 1), ndarray.From(0, 2))
	fmt.Println(v.Shape())
	fmt.Println(v)
	// Output:
	// [2 2]
	// [[4, 6],
	//  [8, 10]]
}

func ExampleMatMul() {
	a, _ := ndarray.FromSlice(ndarray.Shape(2, 2), []float64{1, 2, 3, 4})
	b, _ := ndarray.FromSlice(ndarray.Shape(2, 2), []float64{0, 1, 1, 0})

	c, _ := ndarray.MatMul(a, b)
	fmt.Printf("%.1f\n", c)
	// Output:
	// [[2.0, 1.0],
	//  [4.0, 3.0]]
}
