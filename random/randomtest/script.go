// Package randomtest provides deterministic random.Source doubles.
package randomtest

import "sync"

// Script is a random.Source that replays a fixed list of indices.
// Each Choice consumes the next index (wrapping around) and returns
// seq[index % len(seq)]. Shuffle reverses the slice when Reverse is set and
// leaves it untouched otherwise.
type Script struct {
	mu       sync.Mutex
	indices  []int
	next     int
	choices  int
	shuffles int

	Reverse bool
}

// NewScript returns a Script replaying indices. With no indices every
// Choice returns the first element.
func NewScript(indices ...int) *Script {
	return &Script{indices: indices}
}

// Choice returns the scripted element of seq.
func (s *Script) Choice(seq []rune) rune {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(seq) == 0 {
		panic("randomtest: Choice called with empty sequence")
	}
	s.choices++
	if len(s.indices) == 0 {
		return seq[0]
	}
	idx := s.indices[s.next%len(s.indices)]
	s.next++
	return seq[idx%len(seq)]
}

// Shuffle reverses seq when Reverse is set.
func (s *Script) Shuffle(seq []rune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shuffles++
	if !s.Reverse {
		return
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// Choices returns how many times Choice was called.
func (s *Script) Choices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.choices
}

// Shuffles returns how many times Shuffle was called.
func (s *Script) Shuffles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuffles
}

// Text returns a Script whose Choice calls spell out text when drawing from
// alphabet. Characters missing from alphabet map to its first element.
func Text(alphabet, text string) *Script {
	pos := make(map[rune]int)
	for i, r := range []rune(alphabet) {
		if _, ok := pos[r]; !ok {
			pos[r] = i
		}
	}
	indices := make([]int, 0, len(text))
	for _, r := range text {
		indices = append(indices, pos[r])
	}
	return NewScript(indices...)
}
