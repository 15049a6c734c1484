package byteutil

import (
	"errors"
	"math"
	"testing"
)

type point struct {
	X, Y int32
}

func TestReverseRawInts(t *testing.T) {
	ints := []int32{1, 2, 3, 4, 5, 6, 7}
	if err := ReverseRaw(ints); err != nil {
		t.Fatal(err)
	}

	want := []int32{7, 6, 5, 4, 3, 2, 1}
	for i := range want {
		if ints[i] != want[i] {
			t.Fatalf("Get=%v, want=%v", ints, want)
		}
	}
}

func TestReverseRawKeepsBitPatterns(t *testing.T) {
	floats := []float64{math.Pi, -0.5, math.Inf(1), math.SmallestNonzeroFloat64}
	bits := make([]uint64, len(floats))
	for i, f := range floats {
		bits[i] = math.Float64bits(f)
	}

	if err := ReverseRaw(floats); err != nil {
		t.Fatal(err)
	}

	for i, f := range floats {
		if math.Float64bits(f) != bits[len(bits)-1-i] {
			t.Fatalf("Element %d changed its bits: %x", i, math.Float64bits(f))
		}
	}
}

func TestReverseRawArraysAndStructs(t *testing.T) {
	grid := [][2]int32{{0, 1}, {2, 3}, {4, 5}}
	if err := ReverseRaw(grid); err != nil {
		t.Fatal(err)
	}
	if grid[0] != [2]int32{4, 5} || grid[1] != [2]int32{2, 3} || grid[2] != [2]int32{0, 1} {
		t.Fatalf("Get=%v", grid)
	}

	points := []point{{1, 2}, {3, 4}}
	if err := ReverseRaw(points); err != nil {
		t.Fatal(err)
	}
	if points[0] != (point{3, 4}) || points[1] != (point{1, 2}) {
		t.Fatalf("Get=%v", points)
	}
}

func TestReverseRawNoop(t *testing.T) {
	if err := ReverseRaw([]int64(nil)); err != nil {
		t.Fatal(err)
	}

	one := []int64{42}
	if err := ReverseRaw(one); err != nil {
		t.Fatal(err)
	}
	if one[0] != 42 {
		t.Fatalf("Get=%v, want=[42]", one)
	}

	if err := ReverseRaw(make([]struct{}, 3)); err != nil {
		t.Fatal(err)
	}
}

func TestReverseRawRefusesPointers(t *testing.T) {
	x := 1

	if err := ReverseRaw([]string{"a", "b"}); !errors.Is(err, ErrPointerElem) {
		t.Fatalf("Get error=%v, want %v", err, ErrPointerElem)
	}
	if err := ReverseRaw([]*int{&x, &x}); !errors.Is(err, ErrPointerElem) {
		t.Fatalf("Get error=%v, want %v", err, ErrPointerElem)
	}
	if err := ReverseRaw([]struct {
		Name string
		Age  int
	}{}); !errors.Is(err, ErrPointerElem) {
		t.Fatalf("Get error=%v, want %v", err, ErrPointerElem)
	}
}

func TestAsBytesSharesMemory(t *testing.T) {
	vals := []uint16{0x0102, 0x0304}
	raw, err := AsBytes(vals)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 4 {
		t.Fatalf("Get len=%d, want 4", len(raw))
	}

	raw[0], raw[1] = 0xff, 0xff
	if vals[0] != 0xffff {
		t.Fatalf("Get=%x, want ffff", vals[0])
	}
}
