package generator

import (
	"sync/atomic"

	"github.com/kbukum/passgen/alphabet"
	"github.com/kbukum/passgen/errors"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/observability"
	"github.com/kbukum/passgen/policy"
	"github.com/kbukum/passgen/random"
)

// Generator produces policy-compliant passwords.
type Generator struct {
	minLength int
	alphabet  atomic.Pointer[alphabet.Alphabet]
	policies  policy.Set
	rng       random.Source
	log       *logger.Logger
	metrics   *observability.Metrics
	defaults  []GenerateOption
}

// New creates a Generator. Without options it uses a minimum length of 10,
// the specials "!@#$%&*/?", the default character-class policy and the
// crypto/rand source.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.minLength < 1 {
		return nil, errors.InvalidConfiguration("minimum_length", "minimum length must be at least 1").
			WithDetail("minimum_length", o.minLength)
	}
	a, err := alphabet.Build(o.specials)
	if err != nil {
		return nil, err
	}
	if !o.policiesSet {
		o.policies = policy.Set{policy.DefaultCharacterClass()}
	}
	if o.rng == nil {
		o.rng = random.NewCrypto()
	}
	if o.log == nil {
		o.log = logger.WithComponent("generator")
	}
	if o.metrics == nil {
		m, err := observability.NewMetrics(observability.Meter())
		if err != nil {
			return nil, err
		}
		o.metrics = m
	}

	g := &Generator{
		minLength: o.minLength,
		policies:  o.policies,
		rng:       o.rng,
		log:       o.log,
		metrics:   o.metrics,
		defaults:  o.defaults,
	}
	g.alphabet.Store(a)
	g.checkSpecials(a)
	return g, nil
}

// MinimumLength returns the shortest length Generate accepts.
func (g *Generator) MinimumLength() int { return g.minLength }

// Alphabet returns the current alphabet.
func (g *Generator) Alphabet() *alphabet.Alphabet { return g.alphabet.Load() }

// Specials returns the current special-character set.
func (g *Generator) Specials() string { return g.alphabet.Load().Specials() }

// Policies returns a copy of the configured policies.
func (g *Generator) Policies() policy.Set { return append(policy.Set{}, g.policies...) }

// SetSpecials replaces the special-character set and rebuilds the alphabet.
// On error the current alphabet is kept.
func (g *Generator) SetSpecials(value string) error {
	a, err := alphabet.Build(value)
	if err != nil {
		return err
	}
	g.alphabet.Store(a)
	g.log.Debug("alphabet rebuilt", logger.Fields(
		logger.FieldSpecials, value,
		logger.FieldAlphabetSize, a.Size(),
	))
	g.checkSpecials(a)
	return nil
}

// checkSpecials warns about character-class policies whose required
// specials cannot be drawn from a. Such a generator can never succeed.
func (g *Generator) checkSpecials(a *alphabet.Alphabet) {
	for _, cc := range characterClasses(g.policies) {
		if cc.RequireSpecial && !a.ContainsAny(cc.Specials) {
			g.log.Warn("character-class policy requires specials the alphabet cannot produce", logger.Fields(
				logger.FieldSpecials, a.Specials(),
				"policy_specials", cc.Specials,
			))
		}
	}
}

func characterClasses(set policy.Set) []policy.CharacterClass {
	var out []policy.CharacterClass
	for _, p := range set {
		switch v := p.(type) {
		case policy.CharacterClass:
			out = append(out, v)
		case *policy.CharacterClass:
			if v != nil {
				out = append(out, *v)
			}
		case policy.Set:
			out = append(out, characterClasses(v)...)
		}
	}
	return out
}
