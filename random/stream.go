package random

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
	"sync"

	"golang.org/x/crypto/chacha20"

	"github.com/kbukum/passgen/errors"
)

// Stream is a deterministic Source driven by the ChaCha20 keystream.
// Two Streams built from the same seed produce identical draws.
type Stream struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	buf    [8]byte
}

// NewStream creates a Stream from seed. A seed that is not exactly
// chacha20.KeySize bytes is hashed with SHA-256 first.
func NewStream(seed []byte) (*Stream, error) {
	if len(seed) == 0 {
		return nil, errors.InvalidArgument("seed", seed, "must not be empty")
	}
	key := seed
	if len(key) != chacha20.KeySize {
		sum := sha256.Sum256(seed)
		key = sum[:]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, errors.InvalidArgument("seed", len(seed), "cannot key chacha20 stream").WithCause(err)
	}
	return &Stream{cipher: c}, nil
}

// Choice returns a uniformly chosen element of seq.
func (s *Stream) Choice(seq []rune) rune {
	return choice(s, seq)
}

// Shuffle permutes seq in place.
func (s *Stream) Shuffle(seq []rune) {
	shuffle(s, seq)
}

func (s *Stream) uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// intn uses Lemire's multiply-and-reject method, so the result is unbiased.
func (s *Stream) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	bound := uint64(n)
	hi, lo := bits.Mul64(s.uint64(), bound)
	if lo < bound {
		threshold := -bound % bound
		for lo < threshold {
			hi, lo = bits.Mul64(s.uint64(), bound)
		}
	}
	return int(hi)
}
