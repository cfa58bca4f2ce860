package ndarray

import (
	"fmt"
	"io"
	"strings"
)

// String renders the array as nested brackets, one innermost row per line:
//
//	[[0, 1, 2],
//	 [3, 4, 5]]
func (a *Array[T]) String() string {
	var sb strings.Builder
	a.render(&sb, "%v")
	return sb.String()
}

// Format implements fmt.Formatter. Flags, width and precision apply to
// each element, so "%6.2f" aligns a float matrix.
func (a *Array[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q':
		_, _ = io.WriteString(f, a.String())
	default:
		a.render(f, fmt.FormatString(f, verb))
	}
}

func (a *Array[T]) render(w io.Writer, elemFmt string) {
	it := a.Iter()
	renderAxis(w, it, a.dim, 0, elemFmt)
}

// renderAxis prints the sub-array for axis and consumes its elements from it.
func renderAxis[T any](w io.Writer, it *Elements[T], dim Dim, axis int, elemFmt string) {
	if axis == dim.rank {
		v, _ := it.Next()
		fmt.Fprintf(w, elemFmt, v)
		return
	}
	_, _ = io.WriteString(w, "[")
	for i := 0; i < dim.ext[axis]; i++ {
		if i > 0 {
			if axis == dim.rank-1 {
				_, _ = io.WriteString(w, ", ")
			} else {
				_, _ = io.WriteString(w, ","+strings.Repeat("\n", dim.rank-1-axis)+strings.Repeat(" ", axis+1))
			}
		}
		renderAxis(w, it, dim, axis+1, elemFmt)
	}
	_, _ = io.WriteString(w, "]")
}
