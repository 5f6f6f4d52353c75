package generator

import (
	"github.com/kbukum/passgen/config"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/policy"
)

// PoliciesFromConfig builds the policy set described by cfg.Policies.
func PoliciesFromConfig(cfg *config.Config) (policy.Set, error) {
	set := policy.Set{}
	if cfg.Policies.CharacterClass {
		cc := policy.DefaultCharacterClass()
		cc.Specials = cfg.PolicySpecials()
		set = append(set, cc)
	}
	if cfg.Policies.MinLength > 0 {
		set = append(set, policy.MinLength{Min: cfg.Policies.MinLength})
	}
	if cfg.Policies.NoSequentialRun > 0 {
		var opts []policy.NoSequentialOption
		if cfg.Policies.NoSequentialDescending {
			opts = append(opts, policy.WithDescending())
		}
		ns, err := policy.NewNoSequential(cfg.Policies.NoSequentialRun, opts...)
		if err != nil {
			return nil, err
		}
		set = append(set, ns)
	}
	return set, nil
}

// NewFromConfig creates a Generator from a loaded configuration. Options
// passed explicitly override the configured ones.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policies, err := PoliciesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithMinimumLength(cfg.MinimumLength),
		WithSpecials(cfg.Specials),
		WithPolicies(policies...),
		WithLogger(logger.New(&cfg.Logging, cfg.Telemetry.ServiceName).WithComponent("generator")),
		WithGenerateDefaults(
			WithUniqueChars(cfg.UniqueChars),
			WithShuffle(cfg.Shuffle),
			WithMaxTries(cfg.MaxTries),
		),
	}
	return New(append(base, opts...)...)
}

// NewFromEnv loads configuration from the environment (PGEN_SPECIALS,
// PGEN_MINLEN, ...), an optional .env file and an optional passgen.yml,
// then creates a Generator from it.
func NewFromEnv(opts ...Option) (*Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
