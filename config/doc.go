// Package config loads passgen settings from an optional YAML file, an
// optional .env file and the process environment.
//
// Precedence, highest first: environment, .env file, YAML file, defaults.
// The .env file never overrides variables already set in the environment.
//
// # Environment
//
//	PGEN_SPECIALS              special-character set (default "!@#$%&*/?")
//	PGEN_MINLEN                minimum password length (default 10)
//	PGEN_MAX_TRIES             retry bound per password (default 10000)
//	PGEN_UNIQUE_CHARS          replace repeated characters (default true)
//	PGEN_SHUFFLE               shuffle the final password (default true)
//	PGEN_POLICY_MIN_LENGTH     enable a minimum-length policy (0 = off)
//	PGEN_POLICY_NO_SEQUENTIAL  forbid ascending runs of this length (0 = off)
//	PGEN_LOG_LEVEL, PGEN_LOG_FORMAT
//	PGEN_TELEMETRY_ENDPOINT    OTLP HTTP endpoint; telemetry is off when empty
//
// # Usage
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
package config
