// Package random provides the randomness used to draw and order password
// characters.
//
// Every Source in this package is cryptographically strong. Crypto reads the
// operating system entropy source and is the default. Stream expands a seed
// with the ChaCha20 keystream, giving reproducible output for audits and
// tests without falling back to a non-cryptographic generator.
//
// # Usage
//
//	src := random.NewCrypto()
//	c := src.Choice([]rune("abc"))
//	src.Shuffle(buf)
package random
