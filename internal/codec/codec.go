// Package codec converts arrays to and from nested JSON lists such as
// [[1, 2], [3, 4]].
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Common errors.
var (
	ErrInvalidJSON = errors.New("codec: invalid JSON")
	ErrRagged      = errors.New("codec: nested lists have inconsistent lengths")
	ErrNotNumber   = errors.New("codec: element is not a number")
	ErrNotFinite   = errors.New("codec: NaN and Inf have no JSON representation")
)

// Decode parses a nested JSON list into a float64 array. The shape is taken
// from the nesting; every list at the same depth must have the same length.
// A bare number decodes to a rank-0 array.
func Decode(input string) (*ndarray.Array[float64], error) {
	if !gjson.Valid(input) {
		return nil, ErrInvalidJSON
	}
	root := gjson.Parse(input)

	var extents []int
	for cur := root; cur.IsArray(); {
		items := cur.Array()
		extents = append(extents, len(items))
		if len(items) == 0 {
			break
		}
		cur = items[0]
	}
	dim, err := ndarray.NewDim(extents...)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	data := make([]float64, 0, dim.Size())
	if err := collect(root, extents, 0, &data); err != nil {
		return nil, err
	}
	return ndarray.FromSlice(dim, data)
}

func collect(r gjson.Result, extents []int, depth int, out *[]float64) error {
	if depth == len(extents) {
		if r.Type != gjson.Number {
			return fmt.Errorf("%w: %s", ErrNotNumber, r.Raw)
		}
		*out = append(*out, r.Float())
		return nil
	}
	if !r.IsArray() {
		return fmt.Errorf("%w: expected list at depth %d, got %s", ErrRagged, depth, r.Raw)
	}
	items := r.Array()
	if len(items) != extents[depth] {
		return fmt.Errorf("%w: depth %d has length %d, want %d", ErrRagged, depth, len(items), extents[depth])
	}
	for _, item := range items {
		if err := collect(item, extents, depth+1, out); err != nil {
			return err
		}
	}
	return nil
}

// Encode renders a as a nested JSON list in row-major order. Elements are
// formatted with the given number of decimals, or the shortest exact
// representation when precision is negative. Returns ErrNotFinite for NaN
// or infinite elements.
func Encode(a *ndarray.Array[float64], precision int) (string, error) {
	it := a.Iter()
	return encodeAxis(it, a.Shape(), 0, precision)
}

func encodeAxis(it *ndarray.Elements[float64], shape []int, axis, precision int) (string, error) {
	if axis == len(shape) {
		v, _ := it.Next()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: %v", ErrNotFinite, v)
		}
		return strconv.FormatFloat(v, 'f', precision, 64), nil
	}
	out := "[]"
	for i := 0; i < shape[axis]; i++ {
		child, err := encodeAxis(it, shape, axis+1, precision)
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRaw(out, "-1", child)
		if err != nil {
			return "", fmt.Errorf("encode: %w", err)
		}
	}
	return out, nil
}
