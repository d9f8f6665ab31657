package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonflat/internal/errors"
)

// Output formats understood by the formatter.
const (
	FormatJSON  = "json"
	FormatLines = "lines"
	FormatEnv   = "env"
)

// Config represents the complete configuration for jsonflat
type Config struct {
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how the flattened document is rendered
type OutputConfig struct {
	Format    string `yaml:"format"`
	EnvPrefix string `yaml:"env_prefix"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatJSON,
			EnvPrefix: "",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonflat.yml", ".jsonflat.yaml", "jsonflat.yml", "jsonflat.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that the output format is one the formatter knows
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatLines, FormatEnv:
		return nil
	default:
		return errors.NewConfigError(
			fmt.Sprintf("output format '%s' is not one of json, lines, env", c.Output.Format),
			errors.ErrUnknownFormat,
		)
	}
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// Empty CLI values leave the file values in place.
func LoadConfigWithCLI(configPath, cliFormat, cliEnvPrefix string, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFormat != "" {
		cfg.Output.Format = cliFormat
	}
	if cliEnvPrefix != "" {
		cfg.Output.EnvPrefix = cliEnvPrefix
	}
	if cliDebug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
