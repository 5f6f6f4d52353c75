package random

import (
	"bytes"
	"slices"
	"sync"
	"testing"

	"github.com/kbukum/passgen/errors"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyz")

func TestCryptoChoice_InSequence(t *testing.T) {
	src := NewCrypto()
	for i := 0; i < 1000; i++ {
		c := src.Choice(letters)
		if !slices.Contains(letters, c) {
			t.Fatalf("Choice returned %q which is not in the sequence", c)
		}
	}
}

func TestCryptoChoice_CoversSequence(t *testing.T) {
	src := NewCrypto()
	seq := []rune("abcd")
	seen := make(map[rune]bool)
	for i := 0; i < 2000 && len(seen) < len(seq); i++ {
		seen[src.Choice(seq)] = true
	}
	if len(seen) != len(seq) {
		t.Errorf("expected every element to be drawn, saw %d of %d", len(seen), len(seq))
	}
}

func TestCryptoShuffle_IsPermutation(t *testing.T) {
	src := NewCrypto()
	seq := slices.Clone(letters)
	src.Shuffle(seq)

	sorted := slices.Clone(seq)
	slices.Sort(sorted)
	if !slices.Equal(sorted, letters) {
		t.Errorf("shuffle lost or duplicated elements: %q", string(seq))
	}
}

func TestChoice_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty sequence")
		}
	}()
	NewCrypto().Choice(nil)
}

func TestShuffle_ShortSequences(t *testing.T) {
	src := NewCrypto()
	src.Shuffle(nil)
	one := []rune("x")
	src.Shuffle(one)
	if string(one) != "x" {
		t.Errorf("expected single element untouched, got %q", string(one))
	}
}

func TestNewStream_EmptySeed(t *testing.T) {
	for _, seed := range [][]byte{nil, {}} {
		_, err := NewStream(seed)
		if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("NewStream(%v): expected INVALID_ARGUMENT, got %v", seed, err)
		}
	}
}

func TestStream_Reproducible(t *testing.T) {
	draw := func(seed []byte) string {
		s, err := NewStream(seed)
		if err != nil {
			t.Fatalf("NewStream failed: %v", err)
		}
		var out []rune
		for i := 0; i < 64; i++ {
			out = append(out, s.Choice(letters))
		}
		buf := slices.Clone(letters)
		s.Shuffle(buf)
		return string(out) + "|" + string(buf)
	}

	a := draw([]byte("seed-one"))
	b := draw([]byte("seed-one"))
	c := draw([]byte("seed-two"))
	if a != b {
		t.Errorf("same seed produced different output:\n%s\n%s", a, b)
	}
	if a == c {
		t.Error("different seeds produced identical output")
	}
}

func TestStream_FullKeySeedUsedDirectly(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)
	s1, err := NewStream(key)
	if err != nil {
		t.Fatalf("NewStream failed: %v", err)
	}
	s2, _ := NewStream(slices.Clone(key))
	for i := 0; i < 16; i++ {
		if s1.Choice(letters) != s2.Choice(letters) {
			t.Fatal("expected equal 32-byte seeds to agree")
		}
	}
}

func TestStream_IntnRange(t *testing.T) {
	s, _ := NewStream([]byte("range"))
	for _, n := range []int{1, 2, 3, 7, 62, 71, 1 << 20} {
		for i := 0; i < 200; i++ {
			v := s.intn(n)
			if v < 0 || v >= n {
				t.Fatalf("intn(%d) returned %d", n, v)
			}
		}
	}
}

func TestStream_ConcurrentUse(t *testing.T) {
	s, _ := NewStream([]byte("concurrent"))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = s.Choice(letters)
			}
		}()
	}
	wg.Wait()
}
