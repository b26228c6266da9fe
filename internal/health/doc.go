// Package health probes the configured services over HTTP.
//
// Each service is probed concurrently at its configured health endpoint, or
// at a fallback list of common endpoints when none is configured. Any
// response with a status code below 400 counts as healthy.
package health
