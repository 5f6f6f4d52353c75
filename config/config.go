package config

import (
	"fmt"

	"github.com/kbukum/passgen/alphabet"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/validation"
)

const (
	DefaultMinimumLength = 10
	DefaultMaxTries      = 10000
)

// Config holds generator, policy, logging and telemetry settings.
type Config struct {
	Specials      string          `yaml:"specials" mapstructure:"specials" validate:"specials"`
	MinimumLength int             `yaml:"minimum_length" mapstructure:"minimum_length" validate:"min=1"`
	MaxTries      int             `yaml:"max_tries" mapstructure:"max_tries" validate:"min=1"`
	UniqueChars   bool            `yaml:"unique_chars" mapstructure:"unique_chars"`
	Shuffle       bool            `yaml:"shuffle" mapstructure:"shuffle"`
	Policies      PolicyConfig    `yaml:"policies" mapstructure:"policies"`
	Logging       logger.Config   `yaml:"logging" mapstructure:"logging"`
	Telemetry     TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// PolicyConfig selects the policies a generator enforces.
type PolicyConfig struct {
	// CharacterClass requires lower, upper, digit and special characters.
	CharacterClass bool `yaml:"character_class" mapstructure:"character_class"`
	// Specials overrides the set the character-class policy accepts.
	// Empty means the generator's specials.
	Specials string `yaml:"specials" mapstructure:"specials" validate:"omitempty,specials"`
	// MinLength enables a minimum-length policy when positive.
	MinLength int `yaml:"min_length" mapstructure:"min_length" validate:"gte=0"`
	// NoSequentialRun forbids ascending runs of this length when positive.
	NoSequentialRun        int  `yaml:"no_sequential_run" mapstructure:"no_sequential_run" validate:"gte=0"`
	NoSequentialDescending bool `yaml:"no_sequential_descending" mapstructure:"no_sequential_descending"`
}

// TelemetryConfig configures OTLP export. Endpoint empty disables it.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure    bool   `yaml:"insecure" mapstructure:"insecure"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{
		Specials:      alphabet.DefaultSpecials,
		MinimumLength: DefaultMinimumLength,
		MaxTries:      DefaultMaxTries,
		UniqueChars:   true,
		Shuffle:       true,
		Policies:      PolicyConfig{CharacterClass: true},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued scalar fields. Booleans are left alone.
// Intended for configs built in code; Load leaves generator fields as read
// so that an explicit zero or empty value fails validation.
func (c *Config) ApplyDefaults() {
	if c.Specials == "" {
		c.Specials = alphabet.DefaultSpecials
	}
	if c.MinimumLength == 0 {
		c.MinimumLength = DefaultMinimumLength
	}
	if c.MaxTries == 0 {
		c.MaxTries = DefaultMaxTries
	}
	c.applyAmbientDefaults()
}

// applyAmbientDefaults fills the logging and telemetry sections only.
func (c *Config) applyAmbientDefaults() {
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "passgen"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks struct tags and the embedded logging configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// PolicySpecials returns the special set the character-class policy should use.
func (c *Config) PolicySpecials() string {
	if c.Policies.Specials != "" {
		return c.Policies.Specials
	}
	return c.Specials
}
