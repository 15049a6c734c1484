package byteutil

import (
	"errors"
	"fmt"
)

var (
	// ErrUnitSize is returned when the element width is not positive.
	ErrUnitSize = errors.New("unit size must be greater than 0")
	// ErrRegionSize is returned when a buffer does not hold a whole number of elements.
	ErrRegionSize = errors.New("region length is not a multiple of unit size")
)

// ReverseBytes reverses the given bytes
func ReverseBytes(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}

	reversed := make([]byte, len(raw))

	for i := len(raw) - 1; i >= 0; i-- {
		reversed[len(raw)-i-1] = raw[i]
	}

	return reversed
}

// ReverseBlocks reverses, in place, the order of the unitSize-wide blocks
// stored in buf. The bytes inside each block keep their order, so a buffer
// of native integers stays a buffer of the same integers.
func ReverseBlocks(buf []byte, unitSize int) error {
	count, err := BlockCount(buf, unitSize)
	if err != nil {
		return err
	}

	for i := 0; i < count/2; i++ {
		j := count - 1 - i

		if unitSize == 1 {
			buf[i], buf[j] = buf[j], buf[i]
			continue
		}

		left, right := i*unitSize, j*unitSize
		for k := 0; k < unitSize; k++ {
			b := buf[left+k]
			buf[left+k] = buf[right+k]
			buf[right+k] = b
		}
	}

	return nil
}

// ReversedBlocks returns a block-reversed copy of src. src is never modified.
func ReversedBlocks(src []byte, unitSize int) ([]byte, error) {
	if _, err := BlockCount(src, unitSize); err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	copy(dst, src)

	if err := ReverseBlocks(dst, unitSize); err != nil {
		return nil, err
	}

	return dst, nil
}

// ReverseCString reverses NUL-terminated text. Bytes after the first NUL
// are dropped and the result is always terminated with a single NUL.
func ReverseCString(buf []byte) []byte {
	n := CStringLen(buf)

	out := make([]byte, n, n+1)
	copy(out, buf[:n])

	// Unit size 1 never fails.
	_ = ReverseBlocks(out, 1)

	return append(out, 0)
}

// ReverseCStringInPlace reverses the text before the first NUL of buf in
// place. The terminator and anything after it stay where they are.
func ReverseCStringInPlace(buf []byte) {
	// Unit size 1 never fails.
	_ = ReverseBlocks(buf[:CStringLen(buf)], 1)
}

// CStringLen returns the number of bytes before the first NUL, or len(buf)
// when there is none.
func CStringLen(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}

	return len(buf)
}

// BlockCount returns how many unitSize-wide blocks buf holds.
func BlockCount(buf []byte, unitSize int) (int, error) {
	if unitSize <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrUnitSize, unitSize)
	}

	if len(buf)%unitSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes, unit %d", ErrRegionSize, len(buf), unitSize)
	}

	return len(buf) / unitSize, nil
}
