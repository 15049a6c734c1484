package demo

import (
	"errors"
	"fmt"

	"blockrev/reverse"
	"blockrev/util/byteutil"
	"blockrev/util/convert"
	"blockrev/util/hashutil"
	"blockrev/util/log"
)

// ErrIntegrity is returned when a raw reversal changed element contents.
var ErrIntegrity = errors.New("element contents changed during reversal")

// reverseBlocks does the raw swap for the numeric cases. Tests replace it.
var reverseBlocks = byteutil.ReverseBlocks

// Person is the structure used by the people cases.
type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("(%s,%d)", p.Name, p.Age)
}

// Case is one demonstration: Run reverses its own data and reports how it
// looked before and after.
type Case struct {
	Name string
	Run  func() (before, after string, err error)
}

// Cases returns the built-in cases in display order. text is the read-only
// source of the text case.
func Cases(text string) []Case {
	return []Case{
		{Name: "ints", Run: intsCase},
		{Name: "floats", Run: floatsCase},
		{Name: "text", Run: func() (string, string, error) { return textCase(text) }},
		{Name: "buffer", Run: bufferCase},
		{Name: "grid", Run: gridCase},
		{Name: "words", Run: wordsCase},
		{Name: "people-ptr", Run: peoplePtrCase},
		{Name: "people", Run: peopleCase},
	}
}

func intsCase() (string, string, error) {
	ints := []int32{0, 1, 2, 3, 4, 5, 6}
	before := convert.IntsToList(ints)

	if err := reverseRaw("ints", ints); err != nil {
		return before, "", err
	}

	return before, convert.IntsToList(ints), nil
}

func floatsCase() (string, string, error) {
	floats := []float32{0.23, 4.57, 9.18, 0.68}
	before := convert.Float32sToList(floats, 4)

	if err := reverseRaw("floats", floats); err != nil {
		return before, "", err
	}

	return before, convert.Float32sToList(floats, 4), nil
}

// textCase reverses a string, which cannot be mutated, into a new copy.
func textCase(text string) (string, string, error) {
	view := reverse.Borrow([]byte(text))
	return text, string(view.Reversed()), nil
}

// bufferCase owns its text, so it is reversed in place up to the NUL.
func bufferCase() (string, string, error) {
	buf := []byte("second string!\x00")
	before := cString(buf)

	byteutil.ReverseCStringInPlace(buf)

	return before, cString(buf), nil
}

func gridCase() (string, string, error) {
	grid := [][2]int32{{0, 1}, {2, 3}}
	format := func(row [2]int32) string {
		return fmt.Sprintf("(%d,%d)", row[0], row[1])
	}
	before := convert.ToList(grid, format)

	if err := reverseRaw("grid", grid); err != nil {
		return before, "", err
	}

	return before, convert.ToList(grid, format), nil
}

func wordsCase() (string, string, error) {
	words := reverse.Buffer[string]{"Hello", "Darkness", "My", "Old", "Friend"}
	before := convert.ToList(words.Slice(), identity)

	words.Reverse()

	return before, convert.ToList(words.Slice(), identity), nil
}

func peoplePtrCase() (string, string, error) {
	tom := Person{Name: "Tommy", Age: 21}
	jerry := Person{Name: "Jerry", Age: 25}

	people := []*Person{&tom, &jerry}
	format := func(p *Person) string { return p.String() }
	before := convert.ToList(people, format)

	reverse.Reverse(people)

	return before, convert.ToList(people, format), nil
}

func peopleCase() (string, string, error) {
	people := []Person{{Name: "Tommy", Age: 21}, {Name: "Jerry", Age: 25}}
	before := convert.ToList(people, Person.String)

	reverse.Reverse(people)

	return before, convert.ToList(people, Person.String), nil
}

// reverseRaw runs the byte-block reversal over the memory of s and checks,
// as a self-check, that the multiset of elements survived it.
func reverseRaw[T any](name string, s []T) error {
	raw, err := byteutil.AsBytes(s)
	if err != nil {
		return err
	}

	unit := byteutil.UnitSize[T]()
	before, err := hashutil.Fingerprint(raw, unit)
	if err != nil {
		return err
	}

	if err := reverseBlocks(raw, unit); err != nil {
		return err
	}

	after, err := hashutil.Fingerprint(raw, unit)
	if err != nil {
		return err
	}

	if !before.Equal(after) {
		return fmt.Errorf("%w: %s", ErrIntegrity, name)
	}

	log.Debugf("%s: %d elements of %d bytes, fingerprint %s", name, len(s), unit, after)
	return nil
}

func cString(b []byte) string {
	return string(b[:byteutil.CStringLen(b)])
}

func identity(s string) string {
	return s
}
