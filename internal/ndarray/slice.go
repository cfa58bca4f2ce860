package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// Slice describes the selection along one axis: Python-style
// start:stop:step. Negative Start/Stop count from the end of the axis;
// when HasStop is false the selection runs to the end of the axis.
// Step must be non-zero; a negative step walks the span backwards.
type Slice struct {
	Start   int
	Stop    int
	HasStop bool
	Step    int
}

// Full selects a whole axis (the "[:]" slice).
var Full = Slice{Start: 0, Step: 1}

// Range returns the slice start:stop:step.
func Range(start, stop, step int) Slice {
	return Slice{Start: start, Stop: stop, HasStop: true, Step: step}
}

// From returns the slice start::step (open stop).
func From(start, step int) Slice {
	return Slice{Start: start, Step: step}
}

// Single selects the one element at i while keeping the axis. A negative i
// counts from the end, so Single(-1) is the last element.
func Single(i int) Slice {
	if i == -1 {
		return From(i, 1)
	}
	return Range(i, i+1, 1)
}

// String renders the slice in Python notation.
func (s Slice) String() string {
	stop := ""
	if s.HasStop {
		stop = strconv.Itoa(s.Stop)
	}
	return fmt.Sprintf("%d:%s:%d", s.Start, stop, s.Step)
}

// ParseSlice parses Python slice notation: "a:b", "a:b:c", "::s", "1:", "::-1".
// A bare integer "i" selects Single(i).
func ParseSlice(s string) (Slice, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Slice{}, fmt.Errorf("%w: %q", ErrSliceSyntax, s)
		}
		return Single(i), nil
	}
	if len(parts) > 3 {
		return Slice{}, fmt.Errorf("%w: %q has too many components", ErrSliceSyntax, s)
	}

	out := Slice{Step: 1}
	if p := strings.TrimSpace(parts[0]); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, fmt.Errorf("%w: start in %q", ErrSliceSyntax, s)
		}
		out.Start = v
	}
	if p := strings.TrimSpace(parts[1]); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, fmt.Errorf("%w: stop in %q", ErrSliceSyntax, s)
		}
		out.Stop = v
		out.HasStop = true
	}
	if len(parts) == 3 {
		if p := strings.TrimSpace(parts[2]); p != "" {
			v, err := strconv.Atoi(p)
			if err != nil {
				return Slice{}, fmt.Errorf("%w: step in %q", ErrSliceSyntax, s)
			}
			out.Step = v
		}
	}
	return out, nil
}

// ParseSlices parses a comma-separated list of slices, one per axis,
// e.g. "1:, ::2".
func ParseSlices(s string) ([]Slice, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]Slice, len(fields))
	for i, f := range fields {
		sl, err := ParseSlice(f)
		if err != nil {
			return nil, err
		}
		out[i] = sl
	}
	return out, nil
}

func absIndex(m, i int) int {
	if i < 0 {
		return m + i
	}
	return i
}

// doSlices rewrites dim and strides according to slices and returns the
// element offset of the new first element. On error dim and strides are
// left untouched.
func doSlices(dim, strides *Dim, slices []Slice) (int, error) {
	if len(slices) != dim.rank {
		return 0, fmt.Errorf("%w: %d slices for rank %d", ErrRankMismatch, len(slices), dim.rank)
	}

	newDim, newStrides := *dim, *strides
	offset := 0
	for k, slc := range slices {
		m := dim.ext[k]
		s := strides.ext[k]

		if slc.Step == 0 {
			return 0, fmt.Errorf("%w: axis %d", ErrInvalidStep, k)
		}
		stop := m
		if slc.HasStop {
			stop = slc.Stop
		}
		start := absIndex(m, slc.Start)
		stop = absIndex(m, stop)
		if stop < start {
			stop = start
		}
		if start < 0 || start > m || stop < 0 || stop > m {
			return 0, fmt.Errorf("%w: slice %v on axis %d of extent %d", ErrIndexOutOfBounds, slc, k, m)
		}

		span := stop - start
		offset += start * s
		// A negative step starts at the far end of the span.
		if slc.Step < 0 {
			offset += s * (span - 1)
		}

		step := slc.Step
		if step < 0 {
			step = -step
		}
		newDim.ext[k] = (span + step - 1) / step
		newStrides.ext[k] = s * slc.Step
	}

	*dim, *strides = newDim, newStrides
	return offset, nil
}

// ApplySlice narrows the view in place. No element data is copied.
//
// Example:
//
//	a := ndarray.Zeros[int](ndarray.Shape(3, 4))
//	err := a.ApplySlice(ndarray.From(1, 1), ndarray.From(0, 2)) // a[1:, ::2]
func (a *Array[T]) ApplySlice(slices ...Slice) error {
	off, err := doSlices(&a.dim, &a.strides, slices)
	if err != nil {
		return err
	}
	a.offset += off
	return nil
}

// Slice returns a new view of the selected region, sharing the buffer.
func (a *Array[T]) Slice(slices ...Slice) (*Array[T], error) {
	view := a.Clone()
	if err := view.ApplySlice(slices...); err != nil {
		view.Release()
		return nil, err
	}
	return view, nil
}

// SliceIter iterates the selected region without creating a view.
func (a *Array[T]) SliceIter(slices ...Slice) (*Elements[T], error) {
	it := a.Iter()
	off, err := doSlices(&it.dim, &it.strides, slices)
	if err != nil {
		return nil, err
	}
	it.offset += off
	it.reset()
	return it, nil
}

// SliceIterMut privatizes the buffer and iterates the selected region
// mutably without creating a view.
func (a *Array[T]) SliceIterMut(slices ...Slice) (*ElementsMut[T], error) {
	if len(slices) != a.dim.rank {
		return nil, fmt.Errorf("%w: %d slices for rank %d", ErrRankMismatch, len(slices), a.dim.rank)
	}
	it := a.IterMut()
	off, err := doSlices(&it.dim, &it.strides, slices)
	if err != nil {
		return nil, err
	}
	it.offset += off
	it.reset()
	return it, nil
}
