package collections

import (
	"strings"

	"github.com/Invicton-Labs/go-search/comparison"
)

// scan walks the slice from the start and returns the index of the first
// element for which match returns true.
func scan[T any](slice []T, match func(value T) bool) (int, bool) {
	for i, v := range slice {
		if match(v) {
			return i, true
		}
	}
	return 0, false
}

// ExistsManual reports whether the string is present in the slice.
func ExistsManual(item string, slice []string) bool {
	for i := 0; i < len(slice); i++ {
		if slice[i] == item {
			return true
		}
	}
	return false
}

// Exists reports whether any element of the slice is equal to item.
func Exists[T comparable](item T, slice []T) bool {
	_, found := Find(item, slice)
	return found
}

// Find returns the index of the first element of the slice that is equal to
// item. If no element matches, found is false and index is 0 and must not be
// used.
func Find[T comparable](item T, slice []T) (index int, found bool) {
	return scan(slice, func(v T) bool { return v == item })
}

// ExistsEquatable is Exists for types that define their own equality.
func ExistsEquatable[T comparison.Equatable[T]](item T, slice []T) bool {
	_, found := FindEquatable(item, slice)
	return found
}

// FindEquatable is Find for types that define their own equality.
func FindEquatable[T comparison.Equatable[T]](item T, slice []T) (index int, found bool) {
	return scan(slice, func(v T) bool { return item.Equals(v) })
}

// ExistsFunc reports whether any element of the slice is equal to item
// according to the given comparison function.
func ExistsFunc[T any](item T, slice []T, equal comparison.EqualFunc[T]) bool {
	_, found := FindFunc(item, slice, equal)
	return found
}

// FindFunc returns the index of the first element of the slice that is equal
// to item according to the given comparison function.
func FindFunc[T any](item T, slice []T, equal comparison.EqualFunc[T]) (index int, found bool) {
	return scan(slice, func(v T) bool { return equal(item, v) })
}

func ExistsCaseInsensitive(item string, slice []string) bool {
	_, found := FindCaseInsensitive(item, slice)
	return found
}

func FindCaseInsensitive(item string, slice []string) (index int, found bool) {
	return FindFunc(item, slice, strings.EqualFold)
}
