// Package reverse reverses the element order of typed sequences.
//
// Elements are moved whole, never split, so the values themselves are left
// exactly as they were. Reverse mutates its argument; Reversed and the string
// helpers always return a new, caller-owned value.
package reverse

import "blockrev/util/byteutil"

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reversed returns a reversed copy of s, leaving s untouched.
func Reversed[T any](s []T) []T {
	if s == nil {
		return nil
	}

	copied := make([]T, len(s))
	copy(copied, s)
	Reverse(copied)

	return copied
}

// ReverseString reverses the bytes of s.
func ReverseString(s string) string {
	return string(byteutil.ReverseBytes([]byte(s)))
}

// ReverseRunes reverses the code points of s, keeping multi-byte
// characters intact.
func ReverseRunes(s string) string {
	runes := []rune(s)
	Reverse(runes)
	return string(runes)
}
