package model

import "errors"

// Context decoding and validation errors.
//
// Design decision: We use package-level sentinel errors wrapped with
// fmt.Errorf("%w: ...") at the point of detection. This lets callers match
// the error class with errors.Is() while the message still names the exact
// field or parse problem.
var (
	// ErrMalformedInput is returned when the input stream is not valid JSON
	// or the top-level value is not a JSON object. Nothing is recoverable
	// from this condition; the caller should abort before producing output.
	ErrMalformedInput = errors.New("malformed project context: input is not a valid JSON object")

	// ErrMissingField is returned when a required field is absent from the
	// context document. Required top-level fields are project_name, hash,
	// and base_domain; each service entry requires dns_name, internal_port,
	// and url. The wrapped message names the missing field.
	ErrMissingField = errors.New("missing required field")
)
