// Package generator produces passwords that satisfy a set of policies.
//
// Generation is rejection sampling. Each attempt draws length characters
// with replacement from the alphabet, checks the policies, optionally
// replaces repeated characters with unused ones and re-checks, then
// optionally shuffles and re-checks. The first candidate that survives is
// returned; after MaxTries rejected attempts Generate fails with
// GENERATION_EXHAUSTED.
//
//	gen, err := generator.New(
//	    generator.WithPolicies(
//	        policy.DefaultCharacterClass(),
//	        policy.MinLength{Min: 14},
//	        policy.MustNoSequential(3),
//	    ),
//	)
//	pw, err := gen.Generate(ctx, 16)
//
// A Generator is safe for concurrent use. SetSpecials swaps the alphabet
// atomically; a Generate call in flight keeps the alphabet it started with.
package generator
