package ndarray

import "fmt"

func checkSameShape(op string, dst, src Dim) error {
	if dst != src {
		return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, dst, src)
	}
	return nil
}

// zipAssign privatizes dst and stores f(dst[i], src[i]) into every element,
// walking both views in row-major order. No broadcasting.
func zipAssign[T any](op string, dst, src *Array[T], f func(x, y T) T) error {
	if err := checkSameShape(op, dst.dim, src.dim); err != nil {
		return err
	}
	out := dst.IterMut()
	in := src.Iter()
	for p, ok := out.Next(); ok; p, ok = out.Next() {
		y, _ := in.Next()
		*p = f(*p, y)
	}
	return nil
}

// zip clones dst and applies the in-place form to the clone.
func zip[T any](op string, dst, src *Array[T], f func(x, y T) T) (*Array[T], error) {
	if err := checkSameShape(op, dst.dim, src.dim); err != nil {
		return nil, err
	}
	res := dst.Clone()
	if err := zipAssign(op, res, src, f); err != nil {
		res.Release()
		return nil, err
	}
	return res, nil
}

// Equal reports whether a and b hold equal elements at every index.
// Returns ErrShapeMismatch if the shapes differ; shapes are never broadcast.
func Equal[T comparable](a, b *Array[T]) (bool, error) {
	if err := checkSameShape("equal", a.dim, b.dim); err != nil {
		return false, err
	}
	ia, ib := a.Iter(), b.Iter()
	for x, ok := ia.Next(); ok; x, ok = ia.Next() {
		y, _ := ib.Next()
		if x != y {
			return false, nil
		}
	}
	return true, nil
}

// AddAssign performs a += b elementwise.
func AddAssign[T Numeric](a, b *Array[T]) error {
	return zipAssign("add", a, b, func(x, y T) T { return x + y })
}

// SubAssign performs a -= b elementwise.
func SubAssign[T Numeric](a, b *Array[T]) error {
	return zipAssign("sub", a, b, func(x, y T) T { return x - y })
}

// MulAssign performs a *= b elementwise.
func MulAssign[T Numeric](a, b *Array[T]) error {
	return zipAssign("mul", a, b, func(x, y T) T { return x * y })
}

// DivAssign performs a /= b elementwise. Integer division by zero panics.
func DivAssign[T Numeric](a, b *Array[T]) error {
	return zipAssign("div", a, b, func(x, y T) T { return x / y })
}

// AndAssign performs a &= b elementwise.
func AndAssign[T Integer](a, b *Array[T]) error {
	return zipAssign("and", a, b, func(x, y T) T { return x & y })
}

// OrAssign performs a |= b elementwise.
func OrAssign[T Integer](a, b *Array[T]) error {
	return zipAssign("or", a, b, func(x, y T) T { return x | y })
}

// XorAssign performs a ^= b elementwise.
func XorAssign[T Integer](a, b *Array[T]) error {
	return zipAssign("xor", a, b, func(x, y T) T { return x ^ y })
}

// Add returns a + b elementwise. The operands must have equal shapes.
//
// Example:
//
//	c, err := ndarray.Add(a, b)
func Add[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return zip("add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return zip("sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise (not a matrix product, see MatMul).
func Mul[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return zip("mul", a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise.
func Div[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return zip("div", a, b, func(x, y T) T { return x / y })
}

// And returns a & b elementwise.
func And[T Integer](a, b *Array[T]) (*Array[T], error) {
	return zip("and", a, b, func(x, y T) T { return x & y })
}

// Or returns a | b elementwise.
func Or[T Integer](a, b *Array[T]) (*Array[T], error) {
	return zip("or", a, b, func(x, y T) T { return x | y })
}

// Xor returns a ^ b elementwise.
func Xor[T Integer](a, b *Array[T]) (*Array[T], error) {
	return zip("xor", a, b, func(x, y T) T { return x ^ y })
}

// NegAssign negates every element of a in place.
func NegAssign[T Signed](a *Array[T]) {
	it := a.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = -*p
	}
}

// Neg returns -a.
func Neg[T Signed](a *Array[T]) *Array[T] {
	res := a.Clone()
	NegAssign(res)
	return res
}
