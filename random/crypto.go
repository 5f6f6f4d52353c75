package random

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Source backed by crypto/rand.
type Crypto struct{}

// NewCrypto returns the operating system backed Source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Choice returns a uniformly chosen element of seq.
func (c *Crypto) Choice(seq []rune) rune {
	return choice(c, seq)
}

// Shuffle permutes seq in place.
func (c *Crypto) Shuffle(seq []rune) {
	shuffle(c, seq)
}

func (c *Crypto) intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("random: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}
