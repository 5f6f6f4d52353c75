package policy

// Policy validates a candidate password.
type Policy interface {
	Validate(candidate string) bool
}

// Func adapts an ordinary function to the Policy interface.
type Func func(candidate string) bool

// Validate calls f(candidate).
func (f Func) Validate(candidate string) bool { return f(candidate) }

// Set is an ordered conjunction of policies. An empty Set accepts everything.
type Set []Policy

// Validate reports whether every policy accepts candidate, stopping at the
// first rejection.
func (s Set) Validate(candidate string) bool {
	for _, p := range s {
		if !p.Validate(candidate) {
			return false
		}
	}
	return true
}
