package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// Integer lists the integer kinds accepted by IntsToList.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntsToList converts integer array to string, e.g., "0,1,2".
func IntsToList[T Integer](ids []T) string {
	return intsToList(fmt.Sprint(ids))
}

// Float32sToList converts float32 array to string with fixed precision.
func Float32sToList(vals []float32, prec int) string {
	return ToList(vals, func(v float32) string {
		return strconv.FormatFloat(float64(v), 'f', prec, 32)
	})
}

// ToList renders each element with format and joins them with commas.
func ToList[T any](vals []T, format func(T) string) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = format(v)
	}

	return strings.Join(strs, ",")
}

func intsToList(str string) string {
	return strings.Trim(strings.Replace(str, " ", ",", -1), "[]")
}
