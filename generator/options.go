package generator

import (
	"github.com/kbukum/passgen/alphabet"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/observability"
	"github.com/kbukum/passgen/policy"
	"github.com/kbukum/passgen/random"
)

const (
	DefaultMinimumLength = 10
	DefaultMaxTries      = 10000
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	minLength   int
	specials    string
	policies    policy.Set
	policiesSet bool
	rng         random.Source
	log         *logger.Logger
	metrics     *observability.Metrics
	defaults    []GenerateOption
}

func defaultOptions() options {
	return options{
		minLength: DefaultMinimumLength,
		specials:  alphabet.DefaultSpecials,
	}
}

// WithMinimumLength sets the shortest length Generate accepts.
func WithMinimumLength(n int) Option {
	return func(o *options) { o.minLength = n }
}

// WithSpecials sets the special characters included in the alphabet.
func WithSpecials(specials string) Option {
	return func(o *options) { o.specials = specials }
}

// WithPolicies replaces the default character-class policy.
// Calling it with no policies accepts every candidate.
func WithPolicies(policies ...policy.Policy) Option {
	return func(o *options) {
		o.policies = append(policy.Set{}, policies...)
		o.policiesSet = true
	}
}

// WithRandomSource sets the randomness used for draws and shuffles.
func WithRandomSource(src random.Source) Option {
	return func(o *options) { o.rng = src }
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics sets the metric instruments. Defaults to the global meter.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithGenerateDefaults sets per-call defaults applied before each
// Generate call's own options.
func WithGenerateDefaults(opts ...GenerateOption) Option {
	return func(o *options) { o.defaults = append(o.defaults, opts...) }
}

// GenerateOption configures one Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	uniqueChars bool
	maxTries    int
	shuffle     bool
}

func defaultGenerateOptions() generateOptions {
	return generateOptions{
		uniqueChars: true,
		maxTries:    DefaultMaxTries,
		shuffle:     true,
	}
}

// WithUniqueChars toggles replacement of repeated characters. Default true.
func WithUniqueChars(unique bool) GenerateOption {
	return func(o *generateOptions) { o.uniqueChars = unique }
}

// WithMaxTries bounds the number of candidates drawn. Default 10000.
// A bound of zero or less fails without drawing.
func WithMaxTries(n int) GenerateOption {
	return func(o *generateOptions) { o.maxTries = n }
}

// WithShuffle toggles the final shuffle. Default true.
func WithShuffle(shuffle bool) GenerateOption {
	return func(o *generateOptions) { o.shuffle = shuffle }
}
