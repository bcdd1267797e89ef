package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/tanekelly/overline-zebar/internal/title"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// ExcludedProcesses are process-name prefixes whose windows show the
	// process name instead of a split title.
	ExcludedProcesses []string `yaml:"excludedProcesses"`

	// SeparatorPattern is the regular expression that splits window
	// titles into segments.
	SeparatorPattern string `yaml:"separatorPattern"`

	// WorkspaceRules name workspaces after the processes running in them,
	// in priority order.
	WorkspaceRules []title.Rule `yaml:"workspaceRules"`

	// Port is the window manager's IPC WebSocket port.
	Port int `yaml:"port"`
}

// Default is the configuration used when no config file is given.
var Default = Config{
	ExcludedProcesses: []string{"Spotify"},
	SeparatorPattern:  `[-—]`,
	Port:              6123,
}

// Load reads a YAML config file layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.ResolverOptions(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolverOptions builds title.Options from the configuration, compiling
// the separator pattern.
func (c Config) ResolverOptions() (title.Options, error) {
	sep, err := regexp.Compile(c.SeparatorPattern)
	if err != nil {
		return title.Options{}, fmt.Errorf("invalid separator pattern %q: %w", c.SeparatorPattern, err)
	}
	return title.Options{
		ExcludedProcesses: c.ExcludedProcesses,
		Separator:         sep,
	}, nil
}
