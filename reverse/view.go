package reverse

// Buffer is an owned, mutable sequence.
type Buffer[T any] []T

// Len returns the number of elements.
func (b Buffer[T]) Len() int {
	return len(b)
}

// Slice returns the underlying slice.
func (b Buffer[T]) Slice() []T {
	return b
}

// Reverse reverses the buffer in place.
func (b Buffer[T]) Reverse() {
	Reverse([]T(b))
}

// Reversed returns a reversed copy of the buffer.
func (b Buffer[T]) Reversed() Buffer[T] {
	return Reversed([]T(b))
}

// View is a read-only window over a slice owned by someone else.
// It can only produce reversed copies.
type View[T any] struct {
	s []T
}

// Borrow wraps s in a read-only view.
func Borrow[T any](s []T) View[T] {
	return View[T]{s: s}
}

// Len returns the number of elements.
func (v View[T]) Len() int {
	return len(v.s)
}

// At returns the i-th element. It panics if i is out of range.
func (v View[T]) At(i int) T {
	return v.s[i]
}

// Reversed returns a new owned buffer holding the view's elements in
// reverse order.
func (v View[T]) Reversed() Buffer[T] {
	return Reversed(v.s)
}
