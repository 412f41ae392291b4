package dist

import (
	"fmt"

	"github.com/matanlurey/gambit/random"
)

// Next samples one value from d using src. It is sugar for d.Sample(src),
// reading draw-site code as "next value from this source". (A generic
// method on Source is not legal Go, so the sugar lives here.)
func Next[T any](src random.Source, d Distribution[T]) T {
	return d.Sample(src)
}

// NextString draws length runes from d in sequence and assembles them into
// a string in draw order.
//
// Precondition: length >= 0.
// Postcondition: a length of 0 returns "" without consulting the source;
// otherwise exactly length samples are consumed, one per rune.
func NextString(src random.Source, d Distribution[rune], length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("dist: string length must be >= 0, got %d", length)
	}
	if length == 0 {
		return "", nil
	}
	runes := make([]rune, length)
	for i := range runes {
		runes[i] = d.Sample(src)
	}
	return string(runes), nil
}
