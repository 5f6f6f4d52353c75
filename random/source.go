package random

// Source draws uniformly distributed elements and permutations.
// Implementations must be safe for concurrent use.
type Source interface {
	// Choice returns a uniformly chosen element of seq. seq must not be empty.
	Choice(seq []rune) rune
	// Shuffle permutes seq in place with a uniformly random permutation.
	Shuffle(seq []rune)
}

// indexer yields a uniform index in [0, n).
type indexer interface {
	intn(n int) int
}

func choice(src indexer, seq []rune) rune {
	if len(seq) == 0 {
		panic("random: Choice called with empty sequence")
	}
	return seq[src.intn(len(seq))]
}

// shuffle is Fisher-Yates over src.
func shuffle(src indexer, seq []rune) {
	for i := len(seq) - 1; i > 0; i-- {
		j := src.intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
