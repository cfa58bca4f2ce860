// Package ndarray implements N-dimensional arrays with shared,
// copy-on-write storage and zero-copy strided views.
package ndarray

import "golang.org/x/exp/constraints"

// Numeric is a constraint for element types supporting + - * /.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Integer is a constraint for element types supporting & | ^.
type Integer interface {
	constraints.Integer
}

// Signed is a constraint for element types supporting unary negation
// with a meaningful result.
type Signed interface {
	constraints.Signed | constraints.Float | constraints.Complex
}
