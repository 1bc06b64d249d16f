package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
type Config struct {
	Find FindConfig `mapstructure:"find" yaml:"find"`
	Log  LogConfig  `mapstructure:"log"  yaml:"log"`
}

// FindConfig holds defaults for offset searches.
type FindConfig struct {
	Unit           string `mapstructure:"unit"            yaml:"unit"`            // byte, rune or grapheme
	Boundary       string `mapstructure:"boundary"        yaml:"boundary"`        // rune or grapheme
	MaxConcurrency int    `mapstructure:"max_concurrency" yaml:"max_concurrency"` // Parallel searches in a batch
	Output         string `mapstructure:"output"          yaml:"output"`          // text, json or yaml
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default values.
const (
	DefaultUnit           = "byte"
	DefaultBoundary       = "rune"
	DefaultMaxConcurrency = 4
	DefaultOutput         = "text"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
)

// SetDefaults registers the default configuration values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("find.unit", DefaultUnit)
	v.SetDefault("find.boundary", DefaultBoundary)
	v.SetDefault("find.max_concurrency", DefaultMaxConcurrency)
	v.SetDefault("find.output", DefaultOutput)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// ParseConfigFromYAML parses configuration from a YAML document, applying defaults
// for anything it leaves out.
func ParseConfigFromYAML(yamlContent string) (*Config, error) {
	var configData map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlContent), &configData); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	for key, value := range configData {
		v.Set(key, value)
	}

	return Load(v)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Find.Unit {
	case "byte", "rune", "grapheme":
	default:
		return fmt.Errorf("find.unit must be byte, rune or grapheme, got %q", c.Find.Unit)
	}

	switch c.Find.Boundary {
	case "rune", "grapheme":
	default:
		return fmt.Errorf("find.boundary must be rune or grapheme, got %q", c.Find.Boundary)
	}

	if c.Find.MaxConcurrency < 1 {
		return errors.New("find.max_concurrency must be at least 1")
	}

	switch c.Find.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("find.output must be text, json or yaml, got %q", c.Find.Output)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
