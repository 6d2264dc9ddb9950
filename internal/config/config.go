package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for xmlrpcval
type Config struct {
	From       string       `yaml:"from"`
	To         string       `yaml:"to"`
	Escape     string       `yaml:"escape"`
	MemberCase string       `yaml:"member_case"`
	Output     OutputConfig `yaml:"output"`
	Dev        DevConfig    `yaml:"dev"`
}

// OutputConfig controls output rendering options
type OutputConfig struct {
	Indent bool `yaml:"indent"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		From:       "xml",
		To:         "",
		Escape:     "auto",
		MemberCase: "keep",
		Output: OutputConfig{
			Indent: true,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".xmlrpcval.yml", ".xmlrpcval.yaml", "xmlrpcval.yml", "xmlrpcval.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that every option holds one of its accepted values
func (c *Config) Validate() error {
	switch c.From {
	case "xml", "json":
	default:
		return fmt.Errorf("invalid input representation %q: must be xml or json", c.From)
	}

	switch c.To {
	case "", "json", "xml", "yaml", "cbor", "debug":
	default:
		return fmt.Errorf("invalid output representation %q: must be json, xml, yaml, cbor or debug", c.To)
	}

	switch c.Escape {
	case "auto", "identity", "substitute":
	default:
		return fmt.Errorf("invalid escape policy %q: must be auto, identity or substitute", c.Escape)
	}

	switch c.MemberCase {
	case "keep", "camel", "snake":
	default:
		return fmt.Errorf("invalid member case %q: must be keep, camel or snake", c.MemberCase)
	}

	return nil
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// String flags override the config file only when they differ from their
// defaults, so file settings survive a plain invocation; boolean flags
// override unconditionally since an unset flag is indistinguishable from an
// explicit default.
func LoadConfigWithCLI(configPath, cliFrom, cliTo, cliEscape, cliMemberCase string, cliIndent bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFrom != "" && cliFrom != "xml" {
		cfg.From = cliFrom
	}
	if cliTo != "" {
		cfg.To = cliTo
	}
	if cliEscape != "" && cliEscape != "auto" {
		cfg.Escape = cliEscape
	}
	if cliMemberCase != "" && cliMemberCase != "keep" {
		cfg.MemberCase = cliMemberCase
	}
	cfg.Output.Indent = cliIndent

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
