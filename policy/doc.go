// Package policy defines the pass/fail rules a generated password must
// satisfy.
//
// A Policy is an immutable value with a single Validate method. Policies are
// combined with Set, which accepts a candidate only when every member does.
//
//	rules := policy.Set{
//	    policy.DefaultCharacterClass(),
//	    policy.MinLength{Min: 14},
//	    policy.MustNoSequential(3),
//	}
//	ok := rules.Validate("k7#Qa9...")
package policy
