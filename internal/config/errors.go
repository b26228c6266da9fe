package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrEmptyServiceName is returned when a service entry has an empty key.
	// An unnamed service cannot be given a DNS name or environment prefix.
	ErrEmptyServiceName = errors.New("invalid service: name must not be empty")

	// ErrInvalidServicePort is returned when a configured port is outside
	// the valid TCP range.
	ErrInvalidServicePort = errors.New("invalid service port: must be between 0 and 65535")

	// ErrInvalidHealthTimeout is returned when a health check timeout is
	// negative. Use 0 for the default timeout.
	ErrInvalidHealthTimeout = errors.New("invalid health check timeout: must be non-negative")

	// ErrConfigNotFound is returned when an explicitly specified
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
