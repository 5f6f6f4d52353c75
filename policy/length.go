package policy

import "unicode/utf8"

// MinLength requires at least Min characters.
type MinLength struct {
	Min int
}

// Validate implements Policy.
func (p MinLength) Validate(candidate string) bool {
	return utf8.RuneCountInString(candidate) >= p.Min
}
