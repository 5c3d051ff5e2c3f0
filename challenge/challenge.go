// Package challenge generates the strings users retype in capture prompts.
package challenge

import (
	"math/rand/v2"
	"strings"
)

// DefaultLength is the challenge length used when none is given.
const DefaultLength = 6

// Printable ASCII bounds used in complex mode, excluding space.
const (
	printableFirst = 33
	printableLast  = 126
)

var classes = []struct {
	offset rune
	size   int
}{
	{'0', 10},
	{'A', 26},
	{'a', 26},
}

// Generate returns a random challenge of length characters.
//
// Plain challenges pick a class (digit, upper, lower) with equal odds and then
// a member of it, so digits are as common as letters. Complex challenges draw
// uniformly from printable ASCII. A nil r uses the global source.
func Generate(r *rand.Rand, length int, complex bool) string {
	if length <= 0 {
		length = DefaultLength
	}
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if complex {
			b.WriteRune(rune(printableFirst + intN(printableLast-printableFirst+1)))
			continue
		}
		c := classes[intN(len(classes))]
		b.WriteRune(c.offset + rune(intN(c.size)))
	}
	return b.String()
}
