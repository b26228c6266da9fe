package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// ProjectContext describes a project's identity and its configured services.
// It is the document passed to custom commands as JSON on stdin and the
// input of every report writer.
//
// A context is built once (from configuration, or decoded from a stream),
// read, and discarded. Nothing mutates it after construction.
type ProjectContext struct {
	// WorkDir is the absolute project directory. Informational; the report
	// writers never print it.
	WorkDir string `json:"work_dir,omitempty"`

	// ProjectName identifies the project. Required.
	ProjectName string `json:"project_name"`

	// Hash is the short directory hash that disambiguates projects with the
	// same service names. Required.
	Hash string `json:"hash"`

	// BaseDomain is the DNS suffix under which services are reachable.
	// Required.
	BaseDomain string `json:"base_domain"`

	// Command is the custom command being dispatched, if any.
	Command string `json:"command,omitempty"`

	// Args are the arguments passed to the custom command.
	Args []string `json:"args,omitempty"`

	// Services maps service name to its resolved network identity.
	// May be empty.
	Services map[string]ServiceInfo `json:"services"`
}

// ServiceInfo is the resolved network identity of a single service.
type ServiceInfo struct {
	// Name echoes the service's key in the Services map.
	Name string `json:"name"`

	// DNSName is the hashed DNS name, e.g. "web-a1b2c3.space.local".
	DNSName string `json:"dns_name"`

	// InternalPort is the port the service listens on inside its network.
	InternalPort int `json:"internal_port"`

	// URL is the full URL the service is reachable at.
	URL string `json:"url"`
}

// SortedServiceNames returns the service names in ascending lexicographic
// (byte) order. Report output must not depend on map iteration order, so
// every consumer iterates via this accessor.
func (c *ProjectContext) SortedServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// contextDocument mirrors ProjectContext with pointer fields so that absent
// keys are distinguishable from zero values during decoding.
type contextDocument struct {
	WorkDir     *string                    `json:"work_dir"`
	ProjectName *string                    `json:"project_name"`
	Hash        *string                    `json:"hash"`
	BaseDomain  *string                    `json:"base_domain"`
	Command     *string                    `json:"command"`
	Args        []string                   `json:"args"`
	Services    map[string]serviceDocument `json:"services"`
}

type serviceDocument struct {
	Name         *string `json:"name"`
	DNSName      *string `json:"dns_name"`
	InternalPort *int    `json:"internal_port"`
	URL          *string `json:"url"`
}

// DecodeContext reads exactly one JSON object from r and returns the
// validated ProjectContext.
//
// It returns an error wrapping ErrMalformedInput when the stream is not
// valid JSON (or the top-level value is not an object), and an error
// wrapping ErrMissingField when a required field is absent. A missing
// sub-field on any single service entry fails the whole decode: a report
// with silent gaps would present misleading data, so no partial result is
// ever returned.
func DecodeContext(r io.Reader) (*ProjectContext, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	// The contract is a single document; trailing data means the stream was
	// not one JSON object.
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedInput)
	}

	// A bare null, array, or scalar decodes cleanly into RawMessage, so the
	// object check has to be explicit.
	if trimmed := bytes.TrimLeft(raw, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformedInput)
	}

	var doc contextDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if doc.ProjectName == nil {
		return nil, fmt.Errorf("%w: project_name", ErrMissingField)
	}
	if doc.Hash == nil {
		return nil, fmt.Errorf("%w: hash", ErrMissingField)
	}
	if doc.BaseDomain == nil {
		return nil, fmt.Errorf("%w: base_domain", ErrMissingField)
	}

	ctx := &ProjectContext{
		ProjectName: *doc.ProjectName,
		Hash:        *doc.Hash,
		BaseDomain:  *doc.BaseDomain,
		Services:    make(map[string]ServiceInfo, len(doc.Services)),
	}
	if doc.WorkDir != nil {
		ctx.WorkDir = *doc.WorkDir
	}
	if doc.Command != nil {
		ctx.Command = *doc.Command
	}
	ctx.Args = doc.Args

	for name, svc := range doc.Services {
		if svc.DNSName == nil {
			return nil, fmt.Errorf("%w: services.%s.dns_name", ErrMissingField, name)
		}
		if svc.InternalPort == nil {
			return nil, fmt.Errorf("%w: services.%s.internal_port", ErrMissingField, name)
		}
		if svc.URL == nil {
			return nil, fmt.Errorf("%w: services.%s.url", ErrMissingField, name)
		}

		info := ServiceInfo{
			Name:         name,
			DNSName:      *svc.DNSName,
			InternalPort: *svc.InternalPort,
			URL:          *svc.URL,
		}
		// An explicit name in the document wins over the map key.
		if svc.Name != nil {
			info.Name = *svc.Name
		}
		ctx.Services[name] = info
	}

	return ctx, nil
}
