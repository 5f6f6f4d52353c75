// Package alphabet builds the character set passwords are drawn from.
package alphabet

import (
	"strings"
	"unicode"

	"github.com/kbukum/passgen/errors"
)

const (
	// Letters is the ASCII letter range, lowercase first.
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Digits is the ASCII digit range.
	Digits = "0123456789"
	// DefaultSpecials is the special-character set used when none is configured.
	DefaultSpecials = "!@#$%&*/?"
)

// Alphabet is an immutable ordered set of drawable characters:
// letters, then digits, then specials, each character appearing once.
type Alphabet struct {
	specials string
	runes    []rune
	set      map[rune]struct{}
}

// ValidateSpecials rejects an empty special set or one containing whitespace.
func ValidateSpecials(specials string) error {
	if specials == "" {
		return errors.InvalidConfiguration("specials", "specials must not be empty")
	}
	if strings.IndexFunc(specials, unicode.IsSpace) >= 0 {
		return errors.InvalidConfiguration("specials", "specials must not contain whitespace").
			WithDetail("specials", specials)
	}
	return nil
}

// Build validates specials and returns the alphabet Letters + Digits + specials.
func Build(specials string) (*Alphabet, error) {
	if err := ValidateSpecials(specials); err != nil {
		return nil, err
	}

	a := &Alphabet{
		specials: specials,
		set:      make(map[rune]struct{}, len(Letters)+len(Digits)+len(specials)),
	}
	for _, r := range Letters + Digits + specials {
		if _, dup := a.set[r]; dup {
			continue
		}
		a.set[r] = struct{}{}
		a.runes = append(a.runes, r)
	}
	return a, nil
}

// MustBuild is Build that panics on error. Intended for package-level defaults.
func MustBuild(specials string) *Alphabet {
	a, err := Build(specials)
	if err != nil {
		panic(err)
	}
	return a
}

// Runes returns a copy of the characters in draw order.
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

// Size returns the number of distinct characters.
func (a *Alphabet) Size() int { return len(a.runes) }

// Contains reports whether r is drawable.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.set[r]
	return ok
}

// ContainsAny reports whether any rune of s is drawable.
func (a *Alphabet) ContainsAny(s string) bool {
	for _, r := range s {
		if a.Contains(r) {
			return true
		}
	}
	return false
}

// Specials returns the special set the alphabet was built from.
func (a *Alphabet) Specials() string { return a.specials }

// String returns the characters in draw order.
func (a *Alphabet) String() string { return string(a.runes) }

// Without returns the characters of a that are not in used, in draw order.
func (a *Alphabet) Without(used map[rune]struct{}) []rune {
	out := make([]rune, 0, len(a.runes))
	for _, r := range a.runes {
		if _, ok := used[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}
