// Package config loads and validates the homegen configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	PackageDir string         `yaml:"package_dir"`
	Output     OutputConfig   `yaml:"output"`
	Metadata   string         `yaml:"metadata"`
	Engine     EngineConfig   `yaml:"engine"`
	Registry   RegistryConfig `yaml:"registry"`
	Home       HomeConfig     `yaml:"home"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// EngineConfig configures the external rich-markup rendering engine.
type EngineConfig struct {
	Command string `yaml:"command"`
}

// RegistryConfig identifies the package registry consulted for the
// download-link eligibility check.
type RegistryConfig struct {
	Name           string `yaml:"name"`
	PackageIndex   string `yaml:"package_index"`
	PackageURL     string `yaml:"package_url"` // %s is replaced with the package title
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Disabled       bool   `yaml:"disabled,omitempty"` // skip the availability check entirely
}

// HomeConfig holds the user overrides for home-page generation.
type HomeConfig struct {
	Sidebar     string     `yaml:"sidebar,omitempty"` // verbatim HTML, bypasses sidebar generation
	Links       []HomeLink `yaml:"links,omitempty"`
	StripHeader bool       `yaml:"strip_header,omitempty"`
}

// HomeLink is a user-declared extra sidebar link.
type HomeLink struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// Load loads configuration from the specified file. A missing file is not an
// error: defaults apply and the package is built from the current directory.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	config := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyDefaults(config)
	applyEnvOverrides(config)

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyDefaults(config *Config) {
	if config.PackageDir == "" {
		config.PackageDir = "."
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./site"
	}
	if config.Metadata == "" {
		config.Metadata = "package.yaml"
	}
	if config.Engine.Command == "" {
		config.Engine.Command = "quarto"
	}
	if config.Registry.Name == "" {
		config.Registry.Name = "CRAN"
	}
	if config.Registry.PackageIndex == "" {
		config.Registry.PackageIndex = "https://cloud.r-project.org/src/contrib/PACKAGES"
	}
	if config.Registry.PackageURL == "" {
		config.Registry.PackageURL = "https://cloud.r-project.org/package=%s"
	}
	if config.Registry.TimeoutSeconds <= 0 {
		config.Registry.TimeoutSeconds = 5
	}
}

// Validate checks invariants that later stages rely on.
func Validate(config *Config) error {
	if config.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}
	if strings.ContainsAny(config.Engine.Command, "|&;<>$`") {
		return fmt.Errorf("engine.command must be a plain command name or path: %q", config.Engine.Command)
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		PackageDir: ".",
		Output:     OutputConfig{Directory: "./site"},
		Metadata:   "package.yaml",
		Engine:     EngineConfig{Command: "quarto"},
		Home: HomeConfig{
			Links: []HomeLink{
				{Text: "Ask a question", Href: "https://example.org/forum"},
			},
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
