// Package project derives a project's identity and service topology from
// its configuration and work directory.
//
// The identity has three parts: the project name (configured or taken from
// the directory), a short directory hash that keeps two checkouts of the
// same project from colliding, and the base domain under which services
// resolve. Builder assembles these into a model.ProjectContext.
package project
