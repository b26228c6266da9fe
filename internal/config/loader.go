package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader loads and merges configuration from all sources for one project.
type Loader struct {
	workDir string
}

// NewLoader creates a Loader rooted at workDir.
func NewLoader(workDir string) (*Loader, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve work directory: %w", err)
	}

	return &Loader{workDir: absWorkDir}, nil
}

// WorkDir returns the absolute work directory the loader is rooted at.
func (l *Loader) WorkDir() string {
	return l.workDir
}

// Load loads and merges configuration from all sources.
// Priority (highest to lowest):
//  1. Project config (.space.yaml or space.yaml in the work directory)
//  2. Global config (~/.config/space/config.yaml)
//  3. Defaults
//
// Both files are optional; a project with no config at all yields the
// defaults with an empty service map.
func (l *Loader) Load() (*Config, error) {
	cfg := Defaults()

	globalPath := filepath.Join(XDGConfigDir(), "config.yaml")
	global, err := l.loadOptional(globalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load global config %s: %w", globalPath, err)
	}
	cfg = cfg.Merge(global)

	projectPath := l.FindProjectConfig()
	if projectPath != "" {
		project, err := LoadFromFile(projectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load project config %s: %w", projectPath, err)
		}
		cfg = cfg.Merge(project)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FindProjectConfig returns the path of the project config file, or an
// empty string when the project has none. ConfigFileName wins over
// AlternateConfigFileName.
func (l *Loader) FindProjectConfig() string {
	for _, name := range []string{ConfigFileName, AlternateConfigFileName} {
		path := filepath.Join(l.workDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFromFile loads configuration from a specific YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Services == nil {
		cfg.Services = make(map[string]ServiceConfig)
	}

	return &cfg, nil
}

// loadOptional loads a config file that may legitimately be absent.
func (l *Loader) loadOptional(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}
