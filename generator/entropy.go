package generator

import (
	"math"

	"github.com/kbukum/passgen/errors"
)

// EntropyBits returns length * log2(alphabetSize), the approximate
// brute-force search space of a password in bits.
func EntropyBits(alphabetSize, length int) (float64, error) {
	if alphabetSize <= 0 {
		return 0, errors.InvalidArgument("alphabet_size", alphabetSize, "must be positive")
	}
	if length <= 0 {
		return 0, errors.InvalidArgument("length", length, "must be positive")
	}
	return float64(length) * math.Log2(float64(alphabetSize)), nil
}

// EntropyBits reports EntropyBits for the current alphabet.
func (g *Generator) EntropyBits(length int) (float64, error) {
	return EntropyBits(g.Alphabet().Size(), length)
}
