package reverse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
}

var testCases = []struct {
	arr []int
	rev []int
}{
	{
		arr: []int{},
		rev: []int{},
	},
	{
		arr: []int{1},
		rev: []int{1},
	},
	{
		arr: []int{10, 20, 30},
		rev: []int{30, 20, 10},
	},
	{
		arr: []int{1, 2, 3, 4, 5, 6, 7},
		rev: []int{7, 6, 5, 4, 3, 2, 1},
	},
	{
		arr: []int{1, 2, 3, 4},
		rev: []int{4, 3, 2, 1},
	},
}

func TestReverse(t *testing.T) {
	for _, tc := range testCases {
		arg := make([]int, len(tc.arr))
		copy(arg, tc.arr)

		Reverse(arg)
		require.Equal(t, tc.rev, arg)

		Reverse(arg)
		require.Equal(t, tc.arr, arg)
	}
}

func TestReverseNil(t *testing.T) {
	var s []string
	Reverse(s)
	require.Nil(t, s)
	require.Nil(t, Reversed(s))
}

func TestReverseOddMiddle(t *testing.T) {
	arr := []int{10, 20, 30}
	Reverse(arr)
	require.Equal(t, 20, arr[1])
}

func TestReversed(t *testing.T) {
	for _, tc := range testCases {
		arg := make([]int, len(tc.arr))
		copy(arg, tc.arr)

		have := Reversed(arg)
		require.Equal(t, tc.rev, have)

		// test that argument was copied
		for i := range have {
			have[i] = ^have[i]
		}
		require.Equal(t, tc.arr, arg)

		// and that the copy does not follow later changes to the argument
		have = Reversed(arg)
		for i := range arg {
			arg[i] = -arg[i] - 1
		}
		require.Equal(t, tc.rev, have)
	}
}

func TestReverseString(t *testing.T) {
	src := "hello"
	require.Equal(t, "olleh", ReverseString(src))
	require.Equal(t, "hello", src)
	require.Equal(t, "", ReverseString(""))
	require.Equal(t, "ereht olleh", ReverseString("hello there"))
}

func TestReverseRunes(t *testing.T) {
	require.Equal(t, "界世 ,olleh", ReverseRunes("hello, 世界"))
	require.Equal(t, "", ReverseRunes(""))
}

func TestReversePointersAndValues(t *testing.T) {
	tom := person{Name: "Tommy", Age: 21}
	jerry := person{Name: "Jerry", Age: 25}

	ptrs := []*person{&tom, &jerry}
	Reverse(ptrs)
	require.Same(t, &jerry, ptrs[0])
	require.Same(t, &tom, ptrs[1])

	values := []person{tom, jerry}
	Reverse(values)
	require.Equal(t, []person{jerry, tom}, values)

	// values were relocated, the originals are untouched.
	require.Equal(t, "Tommy", tom.Name)
	values[0].Age = 99
	require.Equal(t, 25, jerry.Age)

	for i := range ptrs {
		require.Equal(t, *ptrs[i], []person{{"Jerry", 25}, {"Tommy", 21}}[i])
	}
}

func TestReverseMultiset(t *testing.T) {
	words := []string{"Hello", "Darkness", "My", "Old", "Friend", "My"}
	have := Reversed(words)
	require.Len(t, have, len(words))
	require.ElementsMatch(t, words, have)
	require.Equal(t, []string{"My", "Friend", "Old", "My", "Darkness", "Hello"}, have)
}
