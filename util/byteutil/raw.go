package byteutil

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

// ErrPointerElem is returned for element types whose memory holds Go pointers.
var ErrPointerElem = errors.New("element type contains pointers")

// AsBytes reinterprets the backing array of s as raw bytes without copying.
// Writes through the returned slice are visible in s.
//
// Element types holding pointers are refused: rewriting pointer words
// byte by byte would hide them from the garbage collector.
func AsBytes[T any](s []T) ([]byte, error) {
	var zero T

	t := reflect.TypeOf(&zero).Elem()
	if hasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrPointerElem, t)
	}

	if len(s) == 0 {
		return nil, nil
	}

	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size), nil
}

// ReverseRaw reverses s in place by swapping the raw memory blocks of its
// elements, one byte at a time.
func ReverseRaw[T any](s []T) error {
	raw, err := AsBytes(s)
	if err != nil {
		return err
	}

	size := UnitSize[T]()
	if size == 0 || len(s) < 2 {
		return nil
	}

	return ReverseBlocks(raw, size)
}

// UnitSize returns the width in bytes of one T.
func UnitSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}
