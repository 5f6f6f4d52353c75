// Package errors provides the structured error type returned by passgen.
// Every failure carries a machine-readable code so callers can tell a bad
// configuration apart from a request the policies cannot satisfy.
package errors
