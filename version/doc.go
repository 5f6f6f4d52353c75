// Package version reports build metadata for the passgen binary.
//
// Values are injected at link time and fall back to the VCS stamp the Go
// toolchain records in the binary:
//
//	go build -ldflags "-X github.com/kbukum/passgen/version.Version=1.2.0" ./cmd/passgen
package version
