package policy

import (
	"strings"

	"github.com/kbukum/passgen/errors"
)

const (
	// DefaultRunLength is the run length used by a zero NoSequential.
	DefaultRunLength = 3

	digitSequence  = "0123456789"
	letterSequence = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NoSequential rejects candidates containing an ascending run such as "123"
// or "abc". Runs are taken from the digit sequence and from the ASCII letter
// sequence, lowercase followed by uppercase.
type NoSequential struct {
	runLength  int
	descending bool
	forbidden  []string
}

// NoSequentialOption configures NewNoSequential.
type NoSequentialOption func(*NoSequential)

// WithDescending also forbids the reversed runs, e.g. "321" and "cba".
func WithDescending() NoSequentialOption {
	return func(p *NoSequential) { p.descending = true }
}

// NewNoSequential builds the policy and precomputes its forbidden runs.
func NewNoSequential(runLength int, opts ...NoSequentialOption) (NoSequential, error) {
	if runLength < 1 {
		return NoSequential{}, errors.InvalidArgument("run_length", runLength, "must be at least 1")
	}
	p := NoSequential{runLength: runLength}
	for _, opt := range opts {
		opt(&p)
	}
	p.forbidden = forbiddenRuns(p.runLength, p.descending)
	return p, nil
}

// MustNoSequential is NewNoSequential that panics on error.
func MustNoSequential(runLength int, opts ...NoSequentialOption) NoSequential {
	p, err := NewNoSequential(runLength, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// RunLength returns the forbidden run length.
func (p NoSequential) RunLength() int {
	if p.runLength == 0 {
		return DefaultRunLength
	}
	return p.runLength
}

// Validate implements Policy.
func (p NoSequential) Validate(candidate string) bool {
	forbidden := p.forbidden
	if forbidden == nil {
		forbidden = forbiddenRuns(p.RunLength(), p.descending)
	}
	for _, run := range forbidden {
		if strings.Contains(candidate, run) {
			return false
		}
	}
	return true
}

func forbiddenRuns(n int, descending bool) []string {
	var runs []string
	for _, seq := range []string{digitSequence, letterSequence} {
		for i := 0; i+n <= len(seq); i++ {
			run := seq[i : i+n]
			runs = append(runs, run)
			if descending && n > 1 {
				runs = append(runs, reverse(run))
			}
		}
	}
	return runs
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
