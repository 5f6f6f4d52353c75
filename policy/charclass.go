package policy

import (
	"strings"

	"github.com/kbukum/passgen/alphabet"
)

// CharacterClass requires at least one character from each enabled class.
// Lower, upper and digit are the ASCII ranges the alphabet draws letters and
// digits from; a non-ASCII letter such as 'é' only counts through Specials.
//
// Special membership is tested against Specials, which is independent of the
// generator's alphabet. Keep the two in sync: a policy requiring specials
// the alphabet cannot produce never passes.
type CharacterClass struct {
	RequireLower   bool
	RequireUpper   bool
	RequireDigit   bool
	RequireSpecial bool
	Specials       string
}

// DefaultCharacterClass requires all four classes with alphabet.DefaultSpecials.
func DefaultCharacterClass() CharacterClass {
	return CharacterClass{
		RequireLower:   true,
		RequireUpper:   true,
		RequireDigit:   true,
		RequireSpecial: true,
		Specials:       alphabet.DefaultSpecials,
	}
}

// Validate implements Policy.
func (p CharacterClass) Validate(candidate string) bool {
	var lower, upper, digit, special bool
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
		if !special && strings.ContainsRune(p.Specials, r) {
			special = true
		}
	}
	return (!p.RequireLower || lower) &&
		(!p.RequireUpper || upper) &&
		(!p.RequireDigit || digit) &&
		(!p.RequireSpecial || special)
}

// MinClasses returns the number of enabled classes, which is also the
// shortest candidate length that can pass.
func (p CharacterClass) MinClasses() int {
	n := 0
	for _, on := range []bool{p.RequireLower, p.RequireUpper, p.RequireDigit, p.RequireSpecial} {
		if on {
			n++
		}
	}
	return n
}
