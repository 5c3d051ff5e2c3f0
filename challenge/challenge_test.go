package challenge

import (
	"math/rand/v2"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Alphanumeric(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		s := Generate(r, 8, false)
		assert.Len(t, s, 8)
		for _, c := range s {
			assert.True(t, c < unicode.MaxASCII && (unicode.IsDigit(c) || unicode.IsLetter(c)),
				"unexpected rune %q in %q", c, s)
		}
	}
}

func TestGenerate_Complex(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		s := Generate(r, 10, true)
		assert.Len(t, s, 10)
		for _, c := range s {
			assert.GreaterOrEqual(t, c, rune(33))
			assert.LessOrEqual(t, c, rune(126))
		}
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	assert.Len(t, Generate(nil, 0, false), DefaultLength)
	assert.Len(t, Generate(nil, -3, true), DefaultLength)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(7, 7)), 12, false)
	b := Generate(rand.New(rand.NewPCG(7, 7)), 12, false)
	assert.Equal(t, a, b)
}
