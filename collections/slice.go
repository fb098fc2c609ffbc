package collections

import (
	"github.com/Invicton-Labs/go-search/comparison"
	"github.com/Invicton-Labs/go-stackerr"
)

// CopySlice will create a copy of the given slice.
func CopySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// TransformSliceWithErr maps an input slice to an output slice using a transformation function and allows
// returning an error. The index of the failing element is passed to the function for context.
func TransformSliceWithErr[In any, Out any](in []In, transformationFunc func(index int, value In) (transformed Out, err stackerr.Error)) (out []Out, err stackerr.Error) {
	if in == nil {
		return nil, nil
	}
	out = make([]Out, len(in))
	for i, v := range in {
		out[i], err = transformationFunc(i, v)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SliceEqual checks whether two slices are equal by using a comparison function on each pair of elements. If the slices are of
// unequal length, it will return false.
func SliceEqual[T any](in1 []T, in2 []T, equal comparison.EqualFunc[T]) bool {
	if in1 == nil && in2 == nil {
		return true
	} else if in1 == nil || in2 == nil {
		return false
	}
	if len(in1) != len(in2) {
		return false
	}
	for i := range in1 {
		if !equal(in1[i], in2[i]) {
			return false
		}
	}
	return true
}
