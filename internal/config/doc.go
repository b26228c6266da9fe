// Package config provides configuration management for space.
//
// Configuration comes from three layers, lowest priority first:
//  1. Built-in defaults
//  2. Global config file (~/.config/space/config.yaml, per XDG)
//  3. Project config file (.space.yaml or space.yaml in the work directory)
//
// Both files are optional; the Loader merges whatever exists. Validation
// uses package-level sentinel errors so callers can match error classes
// with errors.Is().
package config
