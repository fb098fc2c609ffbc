package comparison

// Equatable is implemented by types that can test themselves for equality
// against another value of the same type. Implementations must behave as an
// equivalence relation (reflexive, symmetric and transitive) and must be
// deterministic.
type Equatable[T any] interface {
	Equals(other T) bool
}

// EqualFunc is an explicit equality test between two values of the same type.
type EqualFunc[T any] func(a T, b T) bool

// Equal reports whether a and b are equal according to a's Equals method.
func Equal[T Equatable[T]](a T, b T) bool {
	return a.Equals(b)
}

// Comparator returns an EqualFunc that uses the built-in == operator.
func Comparator[T comparable]() EqualFunc[T] {
	return func(a T, b T) bool {
		return a == b
	}
}

// EquatableComparator returns an EqualFunc that uses the type's Equals method.
func EquatableComparator[T Equatable[T]]() EqualFunc[T] {
	return Equal[T]
}

// PtrEquals will return true if both values are nil,
// or if neither are nil and the values they point
// to are equivalent.
func PtrEquals[T comparable](a *T, b *T) bool {
	if a != nil {
		return b != nil && *a == *b
	}
	return b == nil
}
