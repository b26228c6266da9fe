package project

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

// hashLength is the number of hex characters kept from the directory hash.
// Six characters give 16.7M distinct values, plenty for the handful of
// checkouts on one machine while keeping DNS names short.
const hashLength = 6

// Hash creates a short, deterministic hash from a directory path.
// Two projects with identical service names but different directories get
// different DNS names through this hash.
func Hash(dir string) string {
	cleaned := filepath.Clean(dir)

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		// Fall back to the cleaned path; the hash stays deterministic for
		// the same input either way.
		abs = cleaned
	}

	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:])[:hashLength]
}

// DNSName builds the DNS name for a service.
// With hashing enabled the form is "<service>-<hash>.<domain>", e.g.
// "web-a1b2c3.space.local"; without it, "<service>.<domain>".
func DNSName(service, dir, domain string, hashed bool) string {
	if !hashed {
		return service + "." + domain
	}
	return service + "-" + Hash(dir) + "." + domain
}
