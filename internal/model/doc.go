// Package model defines the core data structures for space.
//
// The central type is ProjectContext: the JSON document that describes a
// project's identity (name, directory hash, base domain) and its configured
// services. The context is built from project configuration by the CLI and
// handed to custom commands on stdin, and it is the input of every report
// writer.
//
// Design decision: We keep data structures separate from the report package
// to follow the single responsibility principle. The model package knows how
// to decode and validate a context; it knows nothing about output formats.
package model
