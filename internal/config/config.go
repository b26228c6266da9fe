package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBaseDomain is the DNS suffix services resolve under.
	// Every service gets a name like "web-a1b2c3.space.local".
	DefaultBaseDomain = "space.local"

	// DefaultURLTemplate builds the service URL from its DNS name and port.
	// Supported variables: {host}, {port}, {service}, {project}.
	DefaultURLTemplate = "http://{host}:{port}"

	// DefaultHealthTimeout bounds a single health probe request.
	// Local services answer fast; 5 seconds already covers cold starts.
	DefaultHealthTimeout = 5 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "space"

	// ConfigFileName is the primary project config file name.
	ConfigFileName = ".space.yaml"

	// AlternateConfigFileName is accepted when ConfigFileName is absent.
	AlternateConfigFileName = "space.yaml"
)

// Config is the merged configuration for a project.
// It is assembled by the Loader from defaults, the global file, and the
// project file, then passed through the application by value rather than
// via global state.
type Config struct {
	// Project holds project-level settings.
	Project ProjectConfig `yaml:"project,omitempty"`

	// Services maps service name to its configuration.
	Services map[string]ServiceConfig `yaml:"services,omitempty"`

	// Network holds DNS naming settings.
	Network NetworkConfig `yaml:"network,omitempty"`

	// Commands holds custom command templates.
	Commands CommandsConfig `yaml:"commands,omitempty"`

	// Databases lists databases provided by services. Credentials in these
	// entries must never reach logs in clear; see the log package.
	Databases []DatabaseConfig `yaml:"databases,omitempty"`
}

// ProjectConfig defines project-level settings.
type ProjectConfig struct {
	// Name overrides the project name (default: work directory base name).
	Name string `yaml:"name,omitempty"`

	// WorkDir overrides the work directory (default: current directory).
	WorkDir string `yaml:"work_dir,omitempty"`
}

// ServiceConfig defines configuration for a single service.
type ServiceConfig struct {
	// Port is the internal port the service listens on.
	Port int `yaml:"port,omitempty"`

	// URLTemplate overrides DefaultURLTemplate for this service.
	URLTemplate string `yaml:"url_template,omitempty"`

	// HealthCheck configures health probing for this service.
	HealthCheck *HealthCheckConfig `yaml:"health_check,omitempty"`
}

// HealthCheckConfig defines health check settings for a service.
type HealthCheckConfig struct {
	// Enabled turns probing on for this service.
	Enabled bool `yaml:"enabled"`

	// Endpoint is the path to probe (e.g. "/health"). When empty, the
	// health checker tries a fallback list of common endpoints.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Timeout bounds a single probe request.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// NetworkConfig defines DNS naming settings.
type NetworkConfig struct {
	// BaseDomain is the DNS suffix for service names.
	BaseDomain string `yaml:"base_domain,omitempty"`

	// DNSHashing appends the directory hash to service DNS names so that
	// two checkouts of the same project do not collide. Nil means the
	// default (enabled).
	DNSHashing *bool `yaml:"dns_hashing,omitempty"`
}

// DNSHashingEnabled reports whether hashed DNS names are in effect.
func (n NetworkConfig) DNSHashingEnabled() bool {
	return n.DNSHashing == nil || *n.DNSHashing
}

// CommandsConfig defines custom command templates.
type CommandsConfig struct {
	// Custom maps command name to a shell command template.
	Custom map[string]string `yaml:"custom,omitempty"`
}

// DatabaseConfig defines a database provided by one of the services.
type DatabaseConfig struct {
	// Name of the database.
	Name string `yaml:"name"`

	// Service that provides this database.
	Service string `yaml:"service"`

	// User for database access.
	User string `yaml:"user,omitempty"`

	// Password for database access. Prefer environment variables; when set
	// here it is masked before any log output.
	Password string `yaml:"password,omitempty"`

	// Port override (default: from the service config).
	Port int `yaml:"port,omitempty"`
}

// Defaults returns a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero values
// because several defaults are non-zero (base domain, hashing on). This
// also serves as documentation of what the defaults are.
func Defaults() *Config {
	hashing := true
	return &Config{
		Services: make(map[string]ServiceConfig),
		Network: NetworkConfig{
			BaseDomain: DefaultBaseDomain,
			DNSHashing: &hashing,
		},
	}
}

// Merge merges other into c and returns the result; other takes precedence.
// Field-wise: non-empty values win, service maps merge key-by-key.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c

	if other.Project.Name != "" {
		merged.Project.Name = other.Project.Name
	}
	if other.Project.WorkDir != "" {
		merged.Project.WorkDir = other.Project.WorkDir
	}

	if len(other.Services) > 0 {
		if merged.Services == nil {
			merged.Services = make(map[string]ServiceConfig)
		}
		for name, svc := range other.Services {
			merged.Services[name] = svc
		}
	}

	if other.Network.BaseDomain != "" {
		merged.Network.BaseDomain = other.Network.BaseDomain
	}
	if other.Network.DNSHashing != nil {
		merged.Network.DNSHashing = other.Network.DNSHashing
	}

	if len(other.Commands.Custom) > 0 {
		if merged.Commands.Custom == nil {
			merged.Commands.Custom = make(map[string]string)
		}
		for name, tmpl := range other.Commands.Custom {
			merged.Commands.Custom[name] = tmpl
		}
	}

	if len(other.Databases) > 0 {
		merged.Databases = other.Databases
	}

	return &merged
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes others
// irrelevant.
func (c *Config) Validate() error {
	for name, svc := range c.Services {
		if name == "" {
			return ErrEmptyServiceName
		}
		if svc.Port < 0 || svc.Port > 65535 {
			return ErrInvalidServicePort
		}
		if svc.HealthCheck != nil && svc.HealthCheck.Timeout < 0 {
			return ErrInvalidHealthTimeout
		}
	}
	return nil
}

// XDGDataDir returns the XDG data directory for space.
// On Linux: ~/.local/share/space
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for space.
// On Linux: ~/.config/space
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
